package invite

import (
	"context"
	"time"

	"gorm.io/gorm"

	"socialcore/internal/dbmysql"
)

type InviteRepository interface {
	Create(ctx context.Context, invite *dbmysql.GroupInvite) error
	GetByCode(ctx context.Context, code string) (*dbmysql.GroupInvite, error)
	GetByID(ctx context.Context, id uint64) (*dbmysql.GroupInvite, error)
	ListByGroup(ctx context.Context, groupID uint64) ([]*dbmysql.GroupInvite, error)
	UpdateExpiry(ctx context.Context, code string, groupID uint64, expiredAt time.Time) (int64, error)
	Delete(ctx context.Context, groupID, inviteID uint64) (int64, error)
}

type inviteRepository struct {
	db *gorm.DB
}

func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) Create(ctx context.Context, invite *dbmysql.GroupInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *inviteRepository) GetByCode(ctx context.Context, code string) (*dbmysql.GroupInvite, error) {
	var invite dbmysql.GroupInvite
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&invite).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *inviteRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.GroupInvite, error) {
	var invite dbmysql.GroupInvite
	err := r.db.WithContext(ctx).First(&invite, id).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListByGroup returns every invite for the group, expired ones included.
// Expiry is a redemption concern, not a listing concern.
func (r *inviteRepository) ListByGroup(ctx context.Context, groupID uint64) ([]*dbmysql.GroupInvite, error) {
	var invites []*dbmysql.GroupInvite
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&invites).Error
	return invites, err
}

// UpdateExpiry mutates the expiry field only. The returned row count tells
// the service whether anything matched. The invite_type predicate keeps
// permanent invites untouchable even when the service-level check raced a
// concurrent type change.
func (r *inviteRepository) UpdateExpiry(ctx context.Context, code string, groupID uint64, expiredAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.GroupInvite{}).
		Where("code = ? AND group_id = ? AND invite_type = ?", code, groupID, dbmysql.InviteTypeNormal).
		Update("expired_at", expiredAt)
	return result.RowsAffected, result.Error
}

func (r *inviteRepository) Delete(ctx context.Context, groupID, inviteID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND group_id = ?", inviteID, groupID).
		Delete(&dbmysql.GroupInvite{})
	return result.RowsAffected, result.Error
}
