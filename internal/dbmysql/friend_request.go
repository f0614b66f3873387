package dbmysql

import (
	"fmt"
	"time"
)

// FriendRequest is a pending handshake between two users. A request's only
// state is its existence: accept/deny/cancel all delete the row. The unique
// pair_key column enforces at most one pending request per unordered pair,
// whichever direction it was sent in.
type FriendRequest struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FromID    uint64    `gorm:"column:from_id;not null;index" json:"from_id"`
	ToID      uint64    `gorm:"column:to_id;not null;index" json:"to_id"`
	Message   string    `gorm:"column:message;size:200" json:"message,omitempty"`
	PairKey   string    `gorm:"column:pair_key;size:48;not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FriendRequest) TableName() string { return "friend_requests" }

// RequestPairKey builds the order-independent key for a sender/recipient
// pair.
func RequestPairKey(a, b uint64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
