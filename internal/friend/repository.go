package friend

import (
	"context"

	"gorm.io/gorm"

	"socialcore/internal/dbmysql"
)

type FriendRepository interface {
	CreateEdgePair(ctx context.Context, userA, userB uint64) error
	GetEdge(ctx context.Context, ownerID, targetID uint64) (*dbmysql.Friend, error)
	UpdateEdge(ctx context.Context, edge *dbmysql.Friend) error
	DeleteEdgePair(ctx context.Context, userA, userB uint64) error
	ListEdges(ctx context.Context, ownerID uint64) ([]*dbmysql.Friend, error)
	EdgeExists(ctx context.Context, ownerID, targetID uint64) (bool, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// CreateEdgePair inserts both directional edges in one transaction, so the
// end state is both rows or neither. An edge that already exists is skipped,
// which makes rebuilding an existing friendship a no-op.
func (r *friendRepository) CreateEdgePair(ctx context.Context, userA, userB uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, pair := range [][2]uint64{{userA, userB}, {userB, userA}} {
			err := tx.Create(&dbmysql.Friend{
				UserID:       pair[0],
				FriendUserID: pair[1],
			}).Error
			if err != nil && !dbmysql.IsDuplicateKey(err) {
				return err
			}
		}
		return nil
	})
}

func (r *friendRepository) GetEdge(ctx context.Context, ownerID, targetID uint64) (*dbmysql.Friend, error) {
	var edge dbmysql.Friend
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_user_id = ?", ownerID, targetID).
		First(&edge).Error
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

func (r *friendRepository) UpdateEdge(ctx context.Context, edge *dbmysql.Friend) error {
	return r.db.WithContext(ctx).Save(edge).Error
}

// DeleteEdgePair removes both directions in one statement. Deleting zero
// rows is not an error so redundant removals stay idempotent.
func (r *friendRepository) DeleteEdgePair(ctx context.Context, userA, userB uint64) error {
	return r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_user_id = ?) OR (user_id = ? AND friend_user_id = ?)",
			userA, userB, userB, userA).
		Delete(&dbmysql.Friend{}).Error
}

func (r *friendRepository) ListEdges(ctx context.Context, ownerID uint64) ([]*dbmysql.Friend, error) {
	var edges []*dbmysql.Friend
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&edges).Error
	return edges, err
}

func (r *friendRepository) EdgeExists(ctx context.Context, ownerID, targetID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Friend{}).
		Where("user_id = ? AND friend_user_id = ?", ownerID, targetID).
		Count(&count).Error
	return count > 0, err
}
