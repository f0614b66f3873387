package dbmysql

import (
	"time"
)

// Friend is one directional edge of the friend graph: "UserID counts
// FriendUserID as a friend". A friendship is always two rows, one per
// direction; the unique index keeps a direction from being written twice.
type Friend struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint64    `gorm:"column:user_id;not null;index:idx_user_friend,unique" json:"user_id"`
	FriendUserID uint64    `gorm:"column:friend_user_id;not null;index:idx_user_friend,unique" json:"friend_user_id"`
	Nickname     string    `gorm:"column:nickname;size:64" json:"nickname,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Friend) TableName() string { return "friends" }
