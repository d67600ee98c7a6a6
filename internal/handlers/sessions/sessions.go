package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/kioskhub/internal/dto"
	"github.com/GlebRadaev/kioskhub/internal/service/gateway"
	"github.com/GlebRadaev/kioskhub/internal/service/workflow"
	"github.com/GlebRadaev/kioskhub/pkg/auth"
	"github.com/GlebRadaev/kioskhub/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=sessions.go -destination=mock_sessions.go -package=sessions

type Service interface {
	Open(ctx context.Context, kioskID string, user *workflow.User) (workflow.View, error)
	Reload(ctx context.Context, id string) (workflow.View, error)
	Get(id string) (workflow.View, error)
	Select(id, chargerID string) (workflow.View, error)
	Cancel(id string) (workflow.View, error)
	Close(id string) error
	Confirm(ctx context.Context, id string) (string, error)
}

type SessionHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// Open godoc
//
//	@Summary		Open a kiosk session
//	@Description	Loads the kiosk and its chargers. Unknown or unreachable kiosks come back in demo mode with synthetic chargers.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kioskID	path		string	true	"Kiosk ID"
//	@Success		201		{object}	dto.SessionDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/kiosks/{kioskID}/sessions [post]
func (h *SessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionService.Open(r.Context(), chi.URLParam(r, "kioskID"), userFromRequest(r))
	if err != nil {
		zap.L().Error("can't open session", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSessionDTO(view))
}

// Get godoc
//
//	@Summary	Get session state
//	@Tags		Sessions
//	@Produce	json
//	@Param		sessionID	path		string	true	"Session ID"
//	@Success	200			{object}	dto.SessionDTO
//	@Failure	404			{object}	utils.Response	"Session not found"
//	@Router		/api/sessions/{sessionID} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionService.Get(chi.URLParam(r, "sessionID"))
	h.respondWithView(w, view, err)
}

// Reload godoc
//
//	@Summary	Reload kiosk and chargers
//	@Tags		Sessions
//	@Produce	json
//	@Param		sessionID	path		string	true	"Session ID"
//	@Success	200			{object}	dto.SessionDTO
//	@Failure	404			{object}	utils.Response	"Session not found"
//	@Failure	409			{object}	utils.Response	"Confirmation in progress"
//	@Router		/api/sessions/{sessionID}/reload [post]
func (h *SessionHandler) Reload(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionService.Reload(r.Context(), chi.URLParam(r, "sessionID"))
	h.respondWithView(w, view, err)
}

// Select godoc
//
//	@Summary		Select a charger
//	@Description	Selecting a charger that is not available leaves the session unchanged.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string					true	"Session ID"
//	@Param			request		body		dto.SelectRequestDTO	true	"Charger to select"
//	@Success		200			{object}	dto.SessionDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Session not found"
//	@Failure		409			{object}	utils.Response	"Session not ready"
//	@Router			/api/sessions/{sessionID}/select [post]
func (h *SessionHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	view, err := h.sessionService.Select(chi.URLParam(r, "sessionID"), req.ChargerID)
	h.respondWithView(w, view, err)
}

// Cancel godoc
//
//	@Summary	Clear the selected charger
//	@Tags		Sessions
//	@Produce	json
//	@Param		sessionID	path		string	true	"Session ID"
//	@Success	200			{object}	dto.SessionDTO
//	@Failure	404			{object}	utils.Response	"Session not found"
//	@Router		/api/sessions/{sessionID}/cancel [post]
func (h *SessionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionService.Cancel(chi.URLParam(r, "sessionID"))
	h.respondWithView(w, view, err)
}

// Confirm godoc
//
//	@Summary		Confirm the selected charger
//	@Description	Reserves the charger, records the withdrawal and returns the payment page to redirect to.
//	@Tags			Sessions
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Success		200			{object}	dto.ConfirmResponseDTO
//	@Failure		400			{object}	utils.Response	"No charger selected"
//	@Failure		404			{object}	utils.Response	"Session not found"
//	@Failure		409			{object}	utils.Response	"Charger already taken"
//	@Failure		503			{object}	utils.Response	"Checkout failed"
//	@Router			/api/sessions/{sessionID}/confirm [post]
func (h *SessionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	redirect, err := h.sessionService.Confirm(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrSessionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		case errors.Is(err, workflow.ErrNothingSelected):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, workflow.ErrConfirmInProgress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, gateway.ErrChargerTaken):
			utils.RespondWithError(w, http.StatusConflict, workflow.BannerChargerTaken)
		case errors.Is(err, gateway.ErrNotFound):
			utils.RespondWithError(w, http.StatusConflict, workflow.BannerChargerGone)
		case errors.Is(err, context.Canceled):
			utils.RespondWithError(w, http.StatusGone, "Session closed")
		default:
			utils.RespondWithError(w, http.StatusServiceUnavailable, workflow.BannerCheckout)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmResponseDTO{Redirect: redirect})
}

// Close godoc
//
//	@Summary	Close a session
//	@Tags		Sessions
//	@Param		sessionID	path	string	true	"Session ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Session not found"
//	@Router		/api/sessions/{sessionID} [delete]
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Close(chi.URLParam(r, "sessionID")); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) respondWithView(w http.ResponseWriter, view workflow.View, err error) {
	switch {
	case err == nil, errors.Is(err, workflow.ErrNotSelectable):
		utils.RespondWithJSON(w, http.StatusOK, dto.NewSessionDTO(view))
	case errors.Is(err, workflow.ErrSessionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, workflow.ErrConfirmInProgress), errors.Is(err, workflow.ErrNotReady):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		zap.L().Error("session request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func userFromRequest(r *http.Request) *workflow.User {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		return nil
	}
	return &workflow.User{
		ID:    identity.UserID,
		Name:  identity.Name,
		Email: identity.Email,
	}
}
