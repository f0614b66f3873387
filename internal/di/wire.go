//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"socialcore/internal/config"
	"socialcore/internal/dbmysql"
	"socialcore/internal/friend"
	"socialcore/internal/invite"
)

// This is just a declaration — wire will generate the real body
func InitializeApplication(cfg *config.Config) (*Application, error) {
	wire.Build(
		dbmysql.NewMySQL,
		ProvideInviteConfig,
		ProvideRedisClient,
		ProvideUsageStore,
		ProvidePermissionService,
		ProvideUserInfoService,
		ProvideGroupService,
		ProvideMessageService,
		friend.NewFriendRepository,
		friend.NewService,
		friend.NewRequestRepository,
		friend.NewRequestService,
		friend.NewHandler,
		invite.NewInviteRepository,
		invite.NewCache,
		invite.NewService,
		invite.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil // dummy for compilation
}
