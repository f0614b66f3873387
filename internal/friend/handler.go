package friend

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"socialcore/internal/common"
)

// Handler wires the friend and friend-request services onto HTTP routes.
// buildFriendRelation is deliberately not exposed: it is only reachable
// through request acceptance or system-initiated calls.
type Handler struct {
	friends  Service
	requests RequestService
}

func NewHandler(friends Service, requests RequestService) *Handler {
	return &Handler{friends: friends, requests: requests}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/friend/getAllFriends", h.GetAllFriends).Methods(http.MethodGet)
	r.HandleFunc("/api/friend/removeFriend", h.RemoveFriend).Methods(http.MethodPost)
	r.HandleFunc("/api/friend/checkIsFriend", h.CheckIsFriend).Methods(http.MethodGet)
	r.HandleFunc("/api/friend/setFriendNickname", h.SetFriendNickname).Methods(http.MethodPost)
	r.HandleFunc("/api/friend/request/add", h.AddRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/friend/request/allRelated", h.AllRelatedRequests).Methods(http.MethodGet)
	r.HandleFunc("/api/friend/request/accept", h.AcceptRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/friend/request/deny", h.DenyRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/friend/request/cancel", h.CancelRequest).Methods(http.MethodPost)
}

func (h *Handler) GetAllFriends(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	friends, err := h.friends.GetAllFriends(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friends)
}

func (h *Handler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	var body struct {
		FriendUserID uint64 `json:"friend_user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Wrap(common.ErrValidation, "invalid request body"))
		return
	}

	if err := h.friends.RemoveFriend(r.Context(), userID, body.FriendUserID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, nil)
}

func (h *Handler) CheckIsFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	targetID, err := strconv.ParseUint(r.URL.Query().Get("target_id"), 10, 64)
	if err != nil {
		common.WriteError(w, common.Wrap(common.ErrValidation, "target_id is required"))
		return
	}

	isFriend, err := h.friends.CheckIsFriend(r.Context(), userID, targetID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]bool{"is_friend": isFriend})
}

func (h *Handler) SetFriendNickname(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	var body struct {
		TargetID uint64 `json:"target_id"`
		Nickname string `json:"nickname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Wrap(common.ErrValidation, "invalid request body"))
		return
	}

	if err := h.friends.SetFriendNickname(r.Context(), userID, body.TargetID, body.Nickname); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, nil)
}

func (h *Handler) AddRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	var body struct {
		To      uint64 `json:"to"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Wrap(common.ErrValidation, "invalid request body"))
		return
	}

	req, err := h.requests.Add(r.Context(), userID, body.To, body.Message)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) AllRelatedRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	requests, err := h.requests.AllRelated(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	h.resolveRequest(w, r, h.requests.Accept)
}

func (h *Handler) DenyRequest(w http.ResponseWriter, r *http.Request) {
	h.resolveRequest(w, r, h.requests.Deny)
}

func (h *Handler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	h.resolveRequest(w, r, h.requests.Cancel)
}

// accept, deny and cancel all share the same shape: a request id plus the
// acting user, with the service deciding who is allowed to do what.
func (h *Handler) resolveRequest(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, requestID, actingUserID uint64) error) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	var body struct {
		RequestID uint64 `json:"request_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Wrap(common.ErrValidation, "invalid request body"))
		return
	}

	if err := fn(r.Context(), body.RequestID, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, nil)
}
