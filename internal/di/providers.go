package di

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"socialcore/internal/common"
	"socialcore/internal/config"
	"socialcore/internal/dbmongo"
	"socialcore/internal/friend"
	"socialcore/internal/invite"
)

// Application bundles everything main needs after wiring.
type Application struct {
	Config        *config.Config
	DB            *gorm.DB
	FriendHandler *friend.Handler
	InviteHandler *invite.Handler
}

func ProvideInviteConfig(cfg *config.Config) config.InviteConfig {
	return cfg.Invite
}

// ProvideRedisClient returns nil when Redis is disabled; the invite cache
// treats a nil client as cache-off.
func ProvideRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Println("Redis disabled, invite cache off")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// ProvideUsageStore connects MongoDB for invite usage records. Connection
// failure downgrades to no recording rather than refusing to start.
func ProvideUsageStore(cfg *config.Config) invite.UsageRecorder {
	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Printf("MongoDB unavailable, invite usage records disabled: %v", err)
		return nil
	}
	return dbmongo.NewInviteUsageStore(mc)
}

// Development stand-ins for the platform collaborators. Deployments replace
// these with real remote clients.

func ProvidePermissionService() common.PermissionService {
	return &devPermissionService{}
}

func ProvideUserInfoService() common.UserInfoService {
	return &devUserInfoService{}
}

func ProvideGroupService() common.GroupService {
	return &devGroupService{}
}

func ProvideMessageService() common.MessageService {
	return &devMessageService{}
}

type devPermissionService struct{}

func (s *devPermissionService) GetUserAllPermissions(ctx context.Context, groupID, userID uint64) ([]string, error) {
	return []string{common.PermissionBase, common.PermissionOwner}, nil
}

type devUserInfoService struct{}

func (s *devUserInfoService) GetUserInfo(ctx context.Context, userID uint64) (*common.UserInfo, error) {
	return &common.UserInfo{UserID: userID, Nickname: fmt.Sprintf("user-%d", userID)}, nil
}

type devGroupService struct{}

func (s *devGroupService) JoinGroup(ctx context.Context, groupID, userID uint64) (bool, error) {
	log.Printf("Dev JoinGroup - group: %d, user: %d", groupID, userID)
	return true, nil
}

type devMessageService struct{}

func (s *devMessageService) AddGroupSystemMessage(ctx context.Context, groupID uint64, content string) error {
	log.Printf("Dev system message - group: %d, content: %s", groupID, content)
	return nil
}
