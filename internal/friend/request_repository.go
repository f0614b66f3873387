package friend

import (
	"context"

	"gorm.io/gorm"

	"socialcore/internal/dbmysql"
)

type RequestRepository interface {
	Create(ctx context.Context, req *dbmysql.FriendRequest) error
	GetByID(ctx context.Context, id uint64) (*dbmysql.FriendRequest, error)
	ListRelated(ctx context.Context, userID uint64) ([]*dbmysql.FriendRequest, error)
	ExistsForPair(ctx context.Context, userA, userB uint64) (bool, error)
	Delete(ctx context.Context, id uint64) error
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *dbmysql.FriendRequest) error {
	req.PairKey = dbmysql.RequestPairKey(req.FromID, req.ToID)
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.FriendRequest, error) {
	var req dbmysql.FriendRequest
	err := r.db.WithContext(ctx).First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListRelated returns every pending request the user is part of, sender or
// recipient, in insertion order.
func (r *requestRepository) ListRelated(ctx context.Context, userID uint64) ([]*dbmysql.FriendRequest, error) {
	var requests []*dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("from_id = ? OR to_id = ?", userID, userID).
		Order("id ASC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) ExistsForPair(ctx context.Context, userA, userB uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.FriendRequest{}).
		Where("pair_key = ?", dbmysql.RequestPairKey(userA, userB)).
		Count(&count).Error
	return count > 0, err
}

func (r *requestRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.FriendRequest{}, id).Error
}
