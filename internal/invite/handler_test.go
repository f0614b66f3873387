package invite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"socialcore/internal/common"
	"socialcore/internal/dbmongo"
	"socialcore/internal/dbmysql"
)

func newHandlerTestRouter(t *testing.T) (*mux.Router, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := NewMockService(ctrl)
	router := mux.NewRouter()
	NewHandler(mockSvc).RegisterRoutes(router)
	return router, mockSvc
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}, userID uint64) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if userID != 0 {
		req = req.WithContext(common.ContextWithUserID(req.Context(), userID))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateGroupInvite(t *testing.T) {
	router, mockSvc := newHandlerTestRouter(t)

	tests := []struct {
		name       string
		setup      func()
		wantStatus int
	}{
		{
			name: "created",
			setup: func() {
				mockSvc.EXPECT().CreateGroupInvite(gomock.Any(), uint64(10), dbmysql.InviteTypeNormal, uint64(1)).
					Return(&dbmysql.GroupInvite{ID: 1, GroupID: 10, Code: "abcd1234"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "non-owner forbidden",
			setup: func() {
				mockSvc.EXPECT().CreateGroupInvite(gomock.Any(), uint64(10), dbmysql.InviteTypeNormal, uint64(1)).
					Return(nil, common.Wrap(common.ErrForbidden, "user 1 lacks core.owner in group 10"))
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			rec := doRequest(t, router, http.MethodPost, "/api/invite/createGroupInvite",
				map[string]interface{}{"group_id": 10, "invite_type": dbmysql.InviteTypeNormal}, 1)
			require.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandler_GetAllGroupInviteCode(t *testing.T) {
	router, mockSvc := newHandlerTestRouter(t)

	mockSvc.EXPECT().GetAllGroupInviteCode(gomock.Any(), uint64(10), uint64(1)).
		Return([]*dbmysql.GroupInvite{{ID: 1, GroupID: 10, Code: "abcd1234"}}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/invite/getAllGroupInviteCode?group_id=10", nil, 1)
	require.Equal(t, http.StatusOK, rec.Code)

	// group_id is mandatory
	rec = doRequest(t, router, http.MethodGet, "/api/invite/getAllGroupInviteCode", nil, 1)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_FindInviteByCode(t *testing.T) {
	router, mockSvc := newHandlerTestRouter(t)

	mockSvc.EXPECT().FindInviteByCode(gomock.Any(), "abcd1234").
		Return(&dbmysql.GroupInvite{ID: 1, GroupID: 10, Code: "abcd1234"}, nil)

	// the route works without any user in context
	rec := doRequest(t, router, http.MethodGet, "/api/invite/findInviteByCode?code=abcd1234", nil, 0)
	require.Equal(t, http.StatusOK, rec.Code)

	// unknown code is 200 with null data
	mockSvc.EXPECT().FindInviteByCode(gomock.Any(), "missing1").Return(nil, nil)
	rec = doRequest(t, router, http.MethodGet, "/api/invite/findInviteByCode?code=missing1", nil, 0)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Nil(t, resp.Data)
}

func TestHandler_EditGroupInvite(t *testing.T) {
	router, mockSvc := newHandlerTestRouter(t)

	newExpiry := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	mockSvc.EXPECT().EditGroupInvite(gomock.Any(), "abcd1234", uint64(10), newExpiry, uint64(1)).
		Return(true, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/invite/editGroupInvite",
		map[string]interface{}{"code": "abcd1234", "group_id": 10, "expired_at": newExpiry}, 1)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    map[string]bool `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Data["updated"])
}

func TestHandler_DeleteInvite(t *testing.T) {
	router, mockSvc := newHandlerTestRouter(t)

	mockSvc.EXPECT().DeleteInvite(gomock.Any(), uint64(10), uint64(5), uint64(1)).Return(nil)
	rec := doRequest(t, router, http.MethodPost, "/api/invite/deleteInvite",
		map[string]uint64{"group_id": 10, "invite_id": 5}, 1)
	require.Equal(t, http.StatusOK, rec.Code)

	mockSvc.EXPECT().DeleteInvite(gomock.Any(), uint64(10), uint64(6), uint64(1)).
		Return(common.Wrap(common.ErrNotFound, "invite 6 not found"))
	rec = doRequest(t, router, http.MethodPost, "/api/invite/deleteInvite",
		map[string]uint64{"group_id": 10, "invite_id": 6}, 1)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_GetInviteUsage(t *testing.T) {
	router, mockSvc := newHandlerTestRouter(t)

	mockSvc.EXPECT().GetInviteUsage(gomock.Any(), uint64(10), uint64(1), int64(5)).
		Return([]*dbmongo.InviteUsageRecord{{GroupID: 10, Code: "abcd1234", JoinedUserID: 5}}, nil)
	rec := doRequest(t, router, http.MethodGet, "/api/invite/getInviteUsage?group_id=10&limit=5", nil, 1)
	require.Equal(t, http.StatusOK, rec.Code)

	// limit is optional
	mockSvc.EXPECT().GetInviteUsage(gomock.Any(), uint64(10), uint64(1), int64(0)).
		Return([]*dbmongo.InviteUsageRecord{}, nil)
	rec = doRequest(t, router, http.MethodGet, "/api/invite/getInviteUsage?group_id=10", nil, 1)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/invite/getInviteUsage?group_id=10&limit=soon", nil, 1)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ApplyGroupInvite(t *testing.T) {
	router, mockSvc := newHandlerTestRouter(t)

	mockSvc.EXPECT().ApplyGroupInvite(gomock.Any(), "abcd1234", uint64(5)).
		Return(&dbmysql.GroupInvite{ID: 1, GroupID: 10, Code: "abcd1234"}, nil)
	rec := doRequest(t, router, http.MethodPost, "/api/invite/applyGroupInvite",
		map[string]string{"code": "abcd1234"}, 5)
	require.Equal(t, http.StatusOK, rec.Code)

	// expired codes surface as 410
	mockSvc.EXPECT().ApplyGroupInvite(gomock.Any(), "dead1234", uint64(5)).
		Return(nil, common.Wrap(common.ErrExpired, "invite code expired"))
	rec = doRequest(t, router, http.MethodPost, "/api/invite/applyGroupInvite",
		map[string]string{"code": "dead1234"}, 5)
	require.Equal(t, http.StatusGone, rec.Code)
}
