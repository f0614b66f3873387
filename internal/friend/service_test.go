package friend

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"socialcore/internal/common"
	"socialcore/internal/dbmysql"
)

func dupKeyErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
}

func TestService_GetAllFriends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockFriendRepository(ctrl)
	mockUsers := common.NewMockUserInfoService(ctrl)
	svc := NewService(mockRepo, mockUsers)
	ctx := context.Background()

	tests := []struct {
		name    string
		ownerID uint64
		setup   func()
		want    int
		wantErr bool
		errKind error
	}{
		{
			name:    "empty list",
			ownerID: 1,
			setup: func() {
				mockRepo.EXPECT().ListEdges(ctx, uint64(1)).Return([]*dbmysql.Friend{}, nil)
			},
			want: 0,
		},
		{
			name:    "with friends and nickname override",
			ownerID: 1,
			setup: func() {
				mockRepo.EXPECT().ListEdges(ctx, uint64(1)).Return([]*dbmysql.Friend{
					{UserID: 1, FriendUserID: 2, Nickname: "BestFriend"},
					{UserID: 1, FriendUserID: 3},
				}, nil)
				mockUsers.EXPECT().GetUserInfo(ctx, uint64(2)).Return(&common.UserInfo{UserID: 2, Nickname: "bob"}, nil)
				mockUsers.EXPECT().GetUserInfo(ctx, uint64(3)).Return(&common.UserInfo{UserID: 3, Nickname: "carol"}, nil)
			},
			want: 2,
		},
		{
			name:    "missing owner id",
			ownerID: 0,
			setup:   func() {},
			wantErr: true,
			errKind: common.ErrValidation,
		},
		{
			name:    "repo failure",
			ownerID: 1,
			setup: func() {
				mockRepo.EXPECT().ListEdges(ctx, uint64(1)).Return(nil, errors.New("db is down"))
			},
			wantErr: true,
			errKind: common.ErrInternal,
		},
		{
			name:    "user lookup failure",
			ownerID: 1,
			setup: func() {
				mockRepo.EXPECT().ListEdges(ctx, uint64(1)).Return([]*dbmysql.Friend{
					{UserID: 1, FriendUserID: 2},
				}, nil)
				mockUsers.EXPECT().GetUserInfo(ctx, uint64(2)).Return(nil, errors.New("user svc down"))
			},
			wantErr: true,
			errKind: common.ErrInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			friends, err := svc.GetAllFriends(ctx, tc.ownerID)
			if tc.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.errKind)
				return
			}
			require.NoError(t, err)
			require.Len(t, friends, tc.want)
		})
	}
}

func TestService_GetAllFriends_Denormalization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockFriendRepository(ctrl)
	mockUsers := common.NewMockUserInfoService(ctrl)
	svc := NewService(mockRepo, mockUsers)
	ctx := context.Background()

	mockRepo.EXPECT().ListEdges(ctx, uint64(1)).Return([]*dbmysql.Friend{
		{UserID: 1, FriendUserID: 2, Nickname: "BestFriend"},
	}, nil)
	mockUsers.EXPECT().GetUserInfo(ctx, uint64(2)).Return(&common.UserInfo{UserID: 2, Nickname: "bob", Avatar: "b.png"}, nil)

	friends, err := svc.GetAllFriends(ctx, 1)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	require.Equal(t, uint64(2), friends[0].UserID)
	require.Equal(t, "BestFriend", friends[0].Nickname)
	require.Equal(t, "bob", friends[0].ProfileNickname)
	require.Equal(t, "b.png", friends[0].Avatar)
}

func TestService_BuildFriendRelation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockFriendRepository(ctrl)
	mockUsers := common.NewMockUserInfoService(ctrl)
	svc := NewService(mockRepo, mockUsers)
	ctx := context.Background()

	tests := []struct {
		name    string
		userA   uint64
		userB   uint64
		setup   func()
		wantErr bool
		errKind error
	}{
		{
			name:  "creates the edge pair",
			userA: 1, userB: 2,
			setup: func() {
				mockRepo.EXPECT().CreateEdgePair(ctx, uint64(1), uint64(2)).Return(nil)
			},
		},
		{
			name:  "idempotent for an existing pair",
			userA: 1, userB: 2,
			setup: func() {
				// repo treats duplicate edges as already present
				mockRepo.EXPECT().CreateEdgePair(ctx, uint64(1), uint64(2)).Return(nil)
			},
		},
		{
			name:  "self relation rejected",
			userA: 5, userB: 5,
			setup:   func() {},
			wantErr: true,
			errKind: common.ErrValidation,
		},
		{
			name:  "persistence failure",
			userA: 1, userB: 2,
			setup: func() {
				mockRepo.EXPECT().CreateEdgePair(ctx, uint64(1), uint64(2)).Return(errors.New("db is down"))
			},
			wantErr: true,
			errKind: common.ErrInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			err := svc.BuildFriendRelation(ctx, tc.userA, tc.userB)
			if tc.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.errKind)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_RemoveFriend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockFriendRepository(ctrl)
	mockUsers := common.NewMockUserInfoService(ctrl)
	svc := NewService(mockRepo, mockUsers)
	ctx := context.Background()

	// removal is idempotent, a pair that never existed still succeeds
	mockRepo.EXPECT().DeleteEdgePair(ctx, uint64(1), uint64(2)).Return(nil).Times(2)
	require.NoError(t, svc.RemoveFriend(ctx, 1, 2))
	require.NoError(t, svc.RemoveFriend(ctx, 1, 2))

	mockRepo.EXPECT().DeleteEdgePair(ctx, uint64(1), uint64(3)).Return(errors.New("db is down"))
	err := svc.RemoveFriend(ctx, 1, 3)
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrInternal)
}

func TestService_CheckIsFriend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockFriendRepository(ctrl)
	mockUsers := common.NewMockUserInfoService(ctrl)
	svc := NewService(mockRepo, mockUsers)
	ctx := context.Background()

	mockRepo.EXPECT().EdgeExists(ctx, uint64(1), uint64(2)).Return(true, nil)
	isFriend, err := svc.CheckIsFriend(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, isFriend)

	mockRepo.EXPECT().EdgeExists(ctx, uint64(1), uint64(9)).Return(false, nil)
	isFriend, err = svc.CheckIsFriend(ctx, 1, 9)
	require.NoError(t, err)
	require.False(t, isFriend)
}

func TestService_SetFriendNickname(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockFriendRepository(ctrl)
	mockUsers := common.NewMockUserInfoService(ctrl)
	svc := NewService(mockRepo, mockUsers)
	ctx := context.Background()

	tests := []struct {
		name     string
		nickname string
		setup    func()
		wantErr  bool
		errKind  error
	}{
		{
			name:     "success",
			nickname: "BestFriend",
			setup: func() {
				mockRepo.EXPECT().GetEdge(ctx, uint64(1), uint64(2)).
					Return(&dbmysql.Friend{ID: 10, UserID: 1, FriendUserID: 2}, nil)
				mockRepo.EXPECT().UpdateEdge(ctx, gomock.AssignableToTypeOf(&dbmysql.Friend{})).
					DoAndReturn(func(_ context.Context, e *dbmysql.Friend) error {
						require.Equal(t, "BestFriend", e.Nickname)
						return nil
					})
			},
		},
		{
			name:     "edge not found",
			nickname: "BestFriend",
			setup: func() {
				mockRepo.EXPECT().GetEdge(ctx, uint64(1), uint64(2)).
					Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: true,
			errKind: common.ErrNotFound,
		},
		{
			name:     "empty nickname",
			nickname: "  ",
			setup:    func() {},
			wantErr:  true,
			errKind:  common.ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			err := svc.SetFriendNickname(ctx, 1, 2, tc.nickname)
			if tc.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.errKind)
				return
			}
			require.NoError(t, err)
		})
	}
}
