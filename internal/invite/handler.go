package invite

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"socialcore/internal/common"
)

// Handler exposes the invite lifecycle over HTTP. findInviteByCode is the
// only route the auth middleware leaves public.
type Handler struct {
	invites Service
}

func NewHandler(invites Service) *Handler {
	return &Handler{invites: invites}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/invite/createGroupInvite", h.CreateGroupInvite).Methods(http.MethodPost)
	r.HandleFunc("/api/invite/getAllGroupInviteCode", h.GetAllGroupInviteCode).Methods(http.MethodGet)
	r.HandleFunc("/api/invite/findInviteByCode", h.FindInviteByCode).Methods(http.MethodGet)
	r.HandleFunc("/api/invite/editGroupInvite", h.EditGroupInvite).Methods(http.MethodPost)
	r.HandleFunc("/api/invite/deleteInvite", h.DeleteInvite).Methods(http.MethodPost)
	r.HandleFunc("/api/invite/applyGroupInvite", h.ApplyGroupInvite).Methods(http.MethodPost)
	r.HandleFunc("/api/invite/getInviteUsage", h.GetInviteUsage).Methods(http.MethodGet)
}

func (h *Handler) CreateGroupInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	var body struct {
		GroupID    uint64 `json:"group_id"`
		InviteType string `json:"invite_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Wrap(common.ErrValidation, "invalid request body"))
		return
	}

	invite, err := h.invites.CreateGroupInvite(r.Context(), body.GroupID, body.InviteType, userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, invite)
}

func (h *Handler) GetAllGroupInviteCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	groupID, err := parseUintParam(r, "group_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	invites, err := h.invites.GetAllGroupInviteCode(r.Context(), groupID, userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, invites)
}

func (h *Handler) FindInviteByCode(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	invite, err := h.invites.FindInviteByCode(r.Context(), code)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	// missing code is a null payload, not an error
	common.WriteJSON(w, http.StatusOK, invite)
}

func (h *Handler) EditGroupInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	var body struct {
		Code      string    `json:"code"`
		GroupID   uint64    `json:"group_id"`
		ExpiredAt time.Time `json:"expired_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Wrap(common.ErrValidation, "invalid request body"))
		return
	}

	updated, err := h.invites.EditGroupInvite(r.Context(), body.Code, body.GroupID, body.ExpiredAt, userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]bool{"updated": updated})
}

func (h *Handler) DeleteInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	var body struct {
		GroupID  uint64 `json:"group_id"`
		InviteID uint64 `json:"invite_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Wrap(common.ErrValidation, "invalid request body"))
		return
	}

	if err := h.invites.DeleteInvite(r.Context(), body.GroupID, body.InviteID, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, nil)
}

func (h *Handler) ApplyGroupInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Wrap(common.ErrValidation, "invalid request body"))
		return
	}

	invite, err := h.invites.ApplyGroupInvite(r.Context(), body.Code, userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, invite)
}

func (h *Handler) GetInviteUsage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Wrap(common.ErrForbidden, "user not authenticated"))
		return
	}

	groupID, err := parseUintParam(r, "group_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	// limit is optional, the service applies the default
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			common.WriteError(w, common.Wrap(common.ErrValidation, "limit must be a number"))
			return
		}
	}

	records, err := h.invites.GetInviteUsage(r.Context(), groupID, userID, limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, records)
}

func parseUintParam(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, common.Wrap(common.ErrValidation, "%s is required", name)
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, common.Wrap(common.ErrValidation, "%s must be a number", name)
	}
	return v, nil
}
