package friend

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"socialcore/internal/common"
)

// Summary is one row of a user's friend list: the edge data plus the
// denormalized profile fields looked up from the user collaborator.
type Summary struct {
	UserID          uint64    `json:"user_id"`
	Nickname        string    `json:"nickname,omitempty"` // per-edge override set by the owner
	ProfileNickname string    `json:"profile_nickname"`
	Avatar          string    `json:"avatar,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Service maintains the symmetric friend graph and per-edge nicknames.
type Service interface {
	GetAllFriends(ctx context.Context, ownerID uint64) ([]*Summary, error)
	BuildFriendRelation(ctx context.Context, userA, userB uint64) error
	RemoveFriend(ctx context.Context, ownerID, targetID uint64) error
	CheckIsFriend(ctx context.Context, ownerID, targetID uint64) (bool, error)
	SetFriendNickname(ctx context.Context, ownerID, targetID uint64, nickname string) error
}

type service struct {
	friendRepo FriendRepository
	users      common.UserInfoService
}

func NewService(friendRepo FriendRepository, users common.UserInfoService) Service {
	return &service{friendRepo: friendRepo, users: users}
}

func (s *service) GetAllFriends(ctx context.Context, ownerID uint64) ([]*Summary, error) {
	if err := common.ValidateUserID(ownerID); err != nil {
		return nil, err
	}

	edges, err := s.friendRepo.ListEdges(ctx, ownerID)
	if err != nil {
		return nil, common.Wrap(common.ErrInternal, "list friends: %v", err)
	}

	summaries := make([]*Summary, 0, len(edges))
	for _, edge := range edges {
		summary := &Summary{
			UserID:    edge.FriendUserID,
			Nickname:  edge.Nickname,
			CreatedAt: edge.CreatedAt,
		}

		info, err := s.users.GetUserInfo(ctx, edge.FriendUserID)
		if err != nil {
			return nil, common.Wrap(common.ErrInternal, "lookup user %d: %v", edge.FriendUserID, err)
		}
		if info != nil {
			summary.ProfileNickname = info.Nickname
			summary.Avatar = info.Avatar
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// BuildFriendRelation creates both directional edges transactionally.
// Calling it again for an already-friended pair is a no-op success.
func (s *service) BuildFriendRelation(ctx context.Context, userA, userB uint64) error {
	if err := common.ValidateUserID(userA); err != nil {
		return err
	}
	if err := common.ValidateUserID(userB); err != nil {
		return err
	}
	if userA == userB {
		return common.Wrap(common.ErrValidation, "cannot friend yourself")
	}

	if err := s.friendRepo.CreateEdgePair(ctx, userA, userB); err != nil {
		return common.Wrap(common.ErrInternal, "create friend edges %d<->%d: %v", userA, userB, err)
	}

	zap.L().Info("friend relation built",
		zap.Uint64("user_a", userA), zap.Uint64("user_b", userB))
	return nil
}

// RemoveFriend deletes both directions. It succeeds even when no edge
// existed, so callers cannot probe relationship existence through error
// responses.
func (s *service) RemoveFriend(ctx context.Context, ownerID, targetID uint64) error {
	if err := common.ValidateUserID(ownerID); err != nil {
		return err
	}
	if err := common.ValidateUserID(targetID); err != nil {
		return err
	}

	if err := s.friendRepo.DeleteEdgePair(ctx, ownerID, targetID); err != nil {
		return common.Wrap(common.ErrInternal, "remove friend: %v", err)
	}
	return nil
}

func (s *service) CheckIsFriend(ctx context.Context, ownerID, targetID uint64) (bool, error) {
	exists, err := s.friendRepo.EdgeExists(ctx, ownerID, targetID)
	if err != nil {
		return false, common.Wrap(common.ErrInternal, "check friendship: %v", err)
	}
	return exists, nil
}

// SetFriendNickname updates the nickname on the ownerID->targetID edge only.
// The reverse edge keeps its own nickname.
func (s *service) SetFriendNickname(ctx context.Context, ownerID, targetID uint64, nickname string) error {
	if err := common.ValidateNickname(nickname); err != nil {
		return err
	}

	edge, err := s.friendRepo.GetEdge(ctx, ownerID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.Wrap(common.ErrNotFound, "friend %d not found", targetID)
		}
		return common.Wrap(common.ErrInternal, "get friend edge: %v", err)
	}

	edge.Nickname = nickname
	if err := s.friendRepo.UpdateEdge(ctx, edge); err != nil {
		return common.Wrap(common.ErrInternal, "update nickname: %v", err)
	}
	return nil
}
