package common

import (
	"context"
)

// Collaborator interfaces consumed by the core services. Implementations
// live with the owning platform services; wiring injects remote clients in
// production and no-op stubs in development.

// PermissionService resolves the permission flags a user holds in a group.
type PermissionService interface {
	GetUserAllPermissions(ctx context.Context, groupID, userID uint64) ([]string, error)
}

// UserInfoService looks up profile data used only for denormalized display
// fields (friend lists, invite creator names).
type UserInfoService interface {
	GetUserInfo(ctx context.Context, userID uint64) (*UserInfo, error)
}

// GroupService performs the actual group membership change when an invite
// code is redeemed.
type GroupService interface {
	JoinGroup(ctx context.Context, groupID, userID uint64) (bool, error)
}

// MessageService posts system messages into a group. Calls are
// fire-and-forget: a failure must never fail the parent operation.
type MessageService interface {
	AddGroupSystemMessage(ctx context.Context, groupID uint64, content string) error
}

// UserInfo is the subset of profile data the services denormalize.
type UserInfo struct {
	UserID   uint64 `json:"user_id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar,omitempty"`
}
