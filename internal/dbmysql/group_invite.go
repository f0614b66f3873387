package dbmysql

import (
	"time"
)

const (
	InviteTypeNormal    = "normal"
	InviteTypePermanent = "permanent"
)

// GroupInvite is a redeemable join code scoped to one group. Normal invites
// carry an expiry, permanent invites have a NULL ExpiredAt - the absence of
// the field is the signal, not a zero value. Codes are generated unique so
// lookup by code alone is unambiguous.
type GroupInvite struct {
	ID         uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID    uint64     `gorm:"column:group_id;not null;index" json:"group_id"`
	Code       string     `gorm:"column:code;size:32;not null;uniqueIndex" json:"code"`
	InviteType string     `gorm:"column:invite_type;type:enum('normal','permanent');default:'normal'" json:"invite_type"`
	CreatorID  uint64     `gorm:"column:creator_id;not null" json:"creator_id"`
	ExpiredAt  *time.Time `gorm:"column:expired_at" json:"expired_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GroupInvite) TableName() string { return "group_invites" }

// Expired reports whether the invite can no longer be redeemed at now.
// Permanent invites never expire.
func (gi *GroupInvite) Expired(now time.Time) bool {
	if gi.ExpiredAt == nil {
		return false
	}
	return !now.Before(*gi.ExpiredAt)
}
