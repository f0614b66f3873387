package friend

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"socialcore/internal/common"
	"socialcore/internal/dbmysql"
)

// RequestService mediates the handshake that precedes a friend edge. A
// request has a single pending state; accept, deny and cancel all end in
// deletion of the record.
type RequestService interface {
	Add(ctx context.Context, senderID, recipientID uint64, message string) (*dbmysql.FriendRequest, error)
	AllRelated(ctx context.Context, userID uint64) ([]*dbmysql.FriendRequest, error)
	Accept(ctx context.Context, requestID, actingUserID uint64) error
	Deny(ctx context.Context, requestID, actingUserID uint64) error
	Cancel(ctx context.Context, requestID, actingUserID uint64) error
}

type requestService struct {
	requestRepo RequestRepository
	friends     Service
}

func NewRequestService(requestRepo RequestRepository, friends Service) RequestService {
	return &requestService{requestRepo: requestRepo, friends: friends}
}

func (s *requestService) Add(ctx context.Context, senderID, recipientID uint64, message string) (*dbmysql.FriendRequest, error) {
	if err := common.ValidateUserID(senderID); err != nil {
		return nil, err
	}
	if err := common.ValidateUserID(recipientID); err != nil {
		return nil, err
	}
	if senderID == recipientID {
		return nil, common.Wrap(common.ErrValidation, "cannot send request to yourself")
	}
	if err := common.ValidateRequestMessage(message); err != nil {
		return nil, err
	}

	alreadyFriends, err := s.friends.CheckIsFriend(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if alreadyFriends {
		return nil, common.Wrap(common.ErrConflict, "users are already friends")
	}

	pending, err := s.requestRepo.ExistsForPair(ctx, senderID, recipientID)
	if err != nil {
		return nil, common.Wrap(common.ErrInternal, "check pending request: %v", err)
	}
	if pending {
		return nil, common.Wrap(common.ErrConflict, "a request between these users is already pending")
	}

	req := &dbmysql.FriendRequest{
		FromID:  senderID,
		ToID:    recipientID,
		Message: message,
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		// the unique pair_key index closes the race two concurrent adds
		// would otherwise win together
		if dbmysql.IsDuplicateKey(err) {
			return nil, common.Wrap(common.ErrConflict, "a request between these users is already pending")
		}
		return nil, common.Wrap(common.ErrInternal, "create friend request: %v", err)
	}

	zap.L().Info("friend request created",
		zap.Uint64("request_id", req.ID),
		zap.Uint64("from", senderID), zap.Uint64("to", recipientID))
	return req, nil
}

func (s *requestService) AllRelated(ctx context.Context, userID uint64) ([]*dbmysql.FriendRequest, error) {
	if err := common.ValidateUserID(userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListRelated(ctx, userID)
	if err != nil {
		return nil, common.Wrap(common.ErrInternal, "list requests: %v", err)
	}
	return requests, nil
}

// Accept builds the friend relation first and deletes the request second. If
// relation-building fails the request stays pending, which is the safer
// partial state to leave behind.
func (s *requestService) Accept(ctx context.Context, requestID, actingUserID uint64) error {
	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.ToID != actingUserID {
		return common.Wrap(common.ErrForbidden, "only the recipient can accept a request")
	}

	if err := s.friends.BuildFriendRelation(ctx, req.FromID, req.ToID); err != nil {
		return err
	}

	if err := s.requestRepo.Delete(ctx, requestID); err != nil {
		return common.Wrap(common.ErrInternal, "delete accepted request: %v", err)
	}

	zap.L().Info("friend request accepted", zap.Uint64("request_id", requestID))
	return nil
}

func (s *requestService) Deny(ctx context.Context, requestID, actingUserID uint64) error {
	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.ToID != actingUserID {
		return common.Wrap(common.ErrForbidden, "only the recipient can deny a request")
	}

	if err := s.requestRepo.Delete(ctx, requestID); err != nil {
		return common.Wrap(common.ErrInternal, "delete denied request: %v", err)
	}
	return nil
}

func (s *requestService) Cancel(ctx context.Context, requestID, actingUserID uint64) error {
	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.FromID != actingUserID {
		return common.Wrap(common.ErrForbidden, "only the sender can cancel a request")
	}

	if err := s.requestRepo.Delete(ctx, requestID); err != nil {
		return common.Wrap(common.ErrInternal, "delete cancelled request: %v", err)
	}
	return nil
}

func (s *requestService) getRequest(ctx context.Context, requestID uint64) (*dbmysql.FriendRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.Wrap(common.ErrNotFound, "request %d not found", requestID)
		}
		return nil, common.Wrap(common.ErrInternal, "get request: %v", err)
	}
	return req, nil
}
