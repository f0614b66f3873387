package invite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"socialcore/internal/common"
	"socialcore/internal/config"
	"socialcore/internal/dbmongo"
	"socialcore/internal/dbmysql"
)

const (
	defaultUsageRecords = 20
	maxUsageRecords     = 100
)

// UsageRecorder persists the denormalized trail left when a code is redeemed
// and serves it back for owner-facing views. *dbmongo.InviteUsageStore
// satisfies it in production.
type UsageRecorder interface {
	Record(ctx context.Context, rec *dbmongo.InviteUsageRecord) error
	ByGroup(ctx context.Context, groupID uint64, limit int64) ([]*dbmongo.InviteUsageRecord, error)
}

// Service owns the invite-code lifecycle for groups.
type Service interface {
	CreateGroupInvite(ctx context.Context, groupID uint64, inviteType string, actingUserID uint64) (*dbmysql.GroupInvite, error)
	GetAllGroupInviteCode(ctx context.Context, groupID, actingUserID uint64) ([]*dbmysql.GroupInvite, error)
	FindInviteByCode(ctx context.Context, code string) (*dbmysql.GroupInvite, error)
	EditGroupInvite(ctx context.Context, code string, groupID uint64, expiredAt time.Time, actingUserID uint64) (bool, error)
	DeleteInvite(ctx context.Context, groupID, inviteID, actingUserID uint64) error
	ApplyGroupInvite(ctx context.Context, code string, actingUserID uint64) (*dbmysql.GroupInvite, error)
	GetInviteUsage(ctx context.Context, groupID, actingUserID uint64, limit int64) ([]*dbmongo.InviteUsageRecord, error)
}

type service struct {
	repo     InviteRepository
	cache    *Cache
	perms    common.PermissionService
	users    common.UserInfoService
	groups   common.GroupService
	messages common.MessageService
	usage    UsageRecorder
	cfg      config.InviteConfig
}

func NewService(
	repo InviteRepository,
	cache *Cache,
	perms common.PermissionService,
	users common.UserInfoService,
	groups common.GroupService,
	messages common.MessageService,
	usage UsageRecorder,
	cfg config.InviteConfig,
) Service {
	return &service{
		repo:     repo,
		cache:    cache,
		perms:    perms,
		users:    users,
		groups:   groups,
		messages: messages,
		usage:    usage,
		cfg:      cfg,
	}
}

func (s *service) CreateGroupInvite(ctx context.Context, groupID uint64, inviteType string, actingUserID uint64) (*dbmysql.GroupInvite, error) {
	if err := common.ValidateGroupID(groupID); err != nil {
		return nil, err
	}
	if inviteType != dbmysql.InviteTypeNormal && inviteType != dbmysql.InviteTypePermanent {
		return nil, common.Wrap(common.ErrValidation, "unknown invite type %q", inviteType)
	}
	if err := s.requirePermission(ctx, groupID, actingUserID, common.PermissionOwner); err != nil {
		return nil, err
	}

	invite := &dbmysql.GroupInvite{
		GroupID:    groupID,
		InviteType: inviteType,
		CreatorID:  actingUserID,
	}
	if inviteType == dbmysql.InviteTypeNormal {
		expiredAt := time.Now().Add(time.Duration(s.cfg.ExpireDays) * 24 * time.Hour)
		invite.ExpiredAt = &expiredAt
	}

	// codes can collide; regenerate a bounded number of times and let the
	// unique index arbitrate
	attempts := s.cfg.MaxCodeAttempts
	if attempts <= 0 {
		attempts = 5
	}
	var err error
	for i := 0; i < attempts; i++ {
		invite.Code = s.generateCode()
		err = s.repo.Create(ctx, invite)
		if err == nil {
			zap.L().Info("group invite created",
				zap.Uint64("group_id", groupID),
				zap.String("code", invite.Code),
				zap.String("type", inviteType))
			return invite, nil
		}
		if !dbmysql.IsDuplicateKey(err) {
			return nil, common.Wrap(common.ErrInternal, "create invite: %v", err)
		}
	}
	return nil, common.Wrap(common.ErrInternal, "invite code generation exhausted after %d attempts", attempts)
}

func (s *service) GetAllGroupInviteCode(ctx context.Context, groupID, actingUserID uint64) ([]*dbmysql.GroupInvite, error) {
	if err := common.ValidateGroupID(groupID); err != nil {
		return nil, err
	}
	if err := s.requirePermission(ctx, groupID, actingUserID, common.PermissionBase); err != nil {
		return nil, err
	}

	invites, err := s.repo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, common.Wrap(common.ErrInternal, "list invites: %v", err)
	}
	return invites, nil
}

// FindInviteByCode is an unauthenticated lookup used by join flows that only
// hold a code. A missing code yields (nil, nil), not an error, and expiry is
// not checked here - redemption enforces it.
func (s *service) FindInviteByCode(ctx context.Context, code string) (*dbmysql.GroupInvite, error) {
	if code == "" {
		return nil, common.Wrap(common.ErrValidation, "code is required")
	}

	if invite, ok := s.cache.Get(ctx, code); ok {
		return invite, nil
	}

	invite, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, common.Wrap(common.ErrInternal, "find invite: %v", err)
	}

	s.cache.Set(ctx, invite)
	return invite, nil
}

// EditGroupInvite mutates the expiry field only and reports whether anything
// matched. Permanent invites are off limits: attaching an expiry to one would
// turn it into a code that suddenly stops redeeming.
func (s *service) EditGroupInvite(ctx context.Context, code string, groupID uint64, expiredAt time.Time, actingUserID uint64) (bool, error) {
	if code == "" {
		return false, common.Wrap(common.ErrValidation, "code is required")
	}
	if err := common.ValidateGroupID(groupID); err != nil {
		return false, err
	}
	if err := s.requirePermission(ctx, groupID, actingUserID, common.PermissionOwner); err != nil {
		return false, err
	}

	invite, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, common.Wrap(common.ErrInternal, "get invite: %v", err)
	}
	if invite.GroupID != groupID {
		return false, nil
	}
	if invite.InviteType == dbmysql.InviteTypePermanent {
		return false, common.Wrap(common.ErrValidation, "permanent invites do not carry an expiry")
	}

	rows, err := s.repo.UpdateExpiry(ctx, code, groupID, expiredAt)
	if err != nil {
		return false, common.Wrap(common.ErrInternal, "edit invite: %v", err)
	}
	if rows == 0 {
		return false, nil
	}

	s.cache.Invalidate(ctx, code)
	return true, nil
}

func (s *service) DeleteInvite(ctx context.Context, groupID, inviteID, actingUserID uint64) error {
	if err := common.ValidateGroupID(groupID); err != nil {
		return err
	}
	if err := s.requirePermission(ctx, groupID, actingUserID, common.PermissionOwner); err != nil {
		return err
	}

	invite, err := s.repo.GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.Wrap(common.ErrNotFound, "invite %d not found", inviteID)
		}
		return common.Wrap(common.ErrInternal, "get invite: %v", err)
	}
	if invite.GroupID != groupID {
		return common.Wrap(common.ErrNotFound, "invite %d not found in group %d", inviteID, groupID)
	}

	rows, err := s.repo.Delete(ctx, groupID, inviteID)
	if err != nil {
		return common.Wrap(common.ErrInternal, "delete invite: %v", err)
	}
	if rows == 0 {
		return common.Wrap(common.ErrNotFound, "invite %d not found", inviteID)
	}

	s.cache.Invalidate(ctx, invite.Code)
	return nil
}

// ApplyGroupInvite redeems a code for the acting user: expiry check, the
// group-join collaborator call, then best-effort notification and usage
// bookkeeping that never fail the join.
func (s *service) ApplyGroupInvite(ctx context.Context, code string, actingUserID uint64) (*dbmysql.GroupInvite, error) {
	invite, err := s.FindInviteByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, common.Wrap(common.ErrNotFound, "invite code %q not found", code)
	}
	if invite.Expired(time.Now()) {
		return nil, common.Wrap(common.ErrExpired, "invite code %q has expired", code)
	}

	ok, err := s.groups.JoinGroup(ctx, invite.GroupID, actingUserID)
	if err != nil {
		return nil, common.Wrap(common.ErrInternal, "join group: %v", err)
	}
	if !ok {
		return nil, common.Wrap(common.ErrInternal, "group %d refused the join", invite.GroupID)
	}

	s.afterJoin(ctx, invite, actingUserID)
	return invite, nil
}

// afterJoin posts the system message and writes the usage record. Both are
// fire-and-forget.
func (s *service) afterJoin(ctx context.Context, invite *dbmysql.GroupInvite, joinedUserID uint64) {
	joinedName := s.lookupNickname(ctx, joinedUserID)
	creatorName := s.lookupNickname(ctx, invite.CreatorID)

	content := fmt.Sprintf("%s joined the group via %s's invite", joinedName, creatorName)
	if err := s.messages.AddGroupSystemMessage(ctx, invite.GroupID, content); err != nil {
		zap.L().Warn("group system message failed",
			zap.Uint64("group_id", invite.GroupID), zap.Error(err))
	}

	if s.usage != nil {
		rec := &dbmongo.InviteUsageRecord{
			GroupID:         invite.GroupID,
			Code:            invite.Code,
			JoinedUserID:    joinedUserID,
			JoinedNickname:  joinedName,
			CreatorUserID:   invite.CreatorID,
			CreatorNickname: creatorName,
			JoinedAt:        time.Now(),
		}
		if err := s.usage.Record(ctx, rec); err != nil {
			zap.L().Warn("invite usage record failed",
				zap.String("code", invite.Code), zap.Error(err))
		}
	}
}

// GetInviteUsage returns the newest redemption records for a group, for the
// owner's invite management view. Deployments running without MongoDB simply
// have no history.
func (s *service) GetInviteUsage(ctx context.Context, groupID, actingUserID uint64, limit int64) ([]*dbmongo.InviteUsageRecord, error) {
	if err := common.ValidateGroupID(groupID); err != nil {
		return nil, err
	}
	if err := s.requirePermission(ctx, groupID, actingUserID, common.PermissionOwner); err != nil {
		return nil, err
	}

	if s.usage == nil {
		return []*dbmongo.InviteUsageRecord{}, nil
	}

	if limit <= 0 || limit > maxUsageRecords {
		limit = defaultUsageRecords
	}
	records, err := s.usage.ByGroup(ctx, groupID, limit)
	if err != nil {
		return nil, common.Wrap(common.ErrInternal, "list invite usage: %v", err)
	}
	return records, nil
}

func (s *service) lookupNickname(ctx context.Context, userID uint64) string {
	info, err := s.users.GetUserInfo(ctx, userID)
	if err != nil || info == nil {
		zap.L().Warn("user info lookup failed", zap.Uint64("user_id", userID), zap.Error(err))
		return fmt.Sprintf("user-%d", userID)
	}
	return info.Nickname
}

func (s *service) requirePermission(ctx context.Context, groupID, userID uint64, flag string) error {
	perms, err := s.perms.GetUserAllPermissions(ctx, groupID, userID)
	if err != nil {
		return common.Wrap(common.ErrInternal, "resolve permissions: %v", err)
	}
	if !common.HasPermission(perms, flag) {
		return common.Wrap(common.ErrForbidden, "user %d lacks %s in group %d", userID, flag, groupID)
	}
	return nil
}

func (s *service) generateCode() string {
	length := s.cfg.CodeLength
	if length <= 0 || length > 32 {
		length = 8
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:length]
}
