package withdrawals

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/dto"
	"github.com/GlebRadaev/kioskhub/internal/service/gateway"
	"github.com/GlebRadaev/kioskhub/pkg/auth"
	"github.com/GlebRadaev/kioskhub/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=withdrawals.go -destination=mock_withdrawals.go -package=withdrawals

type Service interface {
	Withdrawals(ctx context.Context, userID string) ([]domain.Withdrawal, error)
	GetCharger(ctx context.Context, id string) (*domain.Charger, error)
	Release(ctx context.Context, chargerID string) error
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Charger withdrawals of the authenticated user, newest first
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response		"Withdrawals not found"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	withdrawals, err := h.withdrawalService.Withdrawals(r.Context(), identity.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.WithdrawalDTO{
			ID:        wd.ID,
			ChargerID: wd.ChargerID,
			KioskID:   wd.KioskID,
			Timestamp: wd.Timestamp,
			Status:    wd.Status,
			CreatedAt: wd.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ReleaseCharger godoc
//
//	@Summary		Return a charger
//	@Description	Frees a charger held by the authenticated user
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			chargerID	path		string	true	"Charger ID"
//	@Success		200			{object}	utils.Response
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Charger held by someone else"
//	@Failure		404			{object}	utils.Response	"Charger not found"
//	@Failure		503			{object}	utils.Response	"Data unavailable"
//	@Router			/api/chargers/{chargerID}/release [post]
func (h *WithdrawalHandler) ReleaseCharger(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	chargerID := chi.URLParam(r, "chargerID")

	charger, err := h.withdrawalService.GetCharger(r.Context(), chargerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Data unavailable, try again later")
		return
	}
	if charger == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Charger not found")
		return
	}
	if charger.HeldBy != identity.UserID {
		utils.RespondWithError(w, http.StatusForbidden, "Charger is not held by this user")
		return
	}

	if err := h.withdrawalService.Release(r.Context(), chargerID); err != nil {
		switch {
		case errors.Is(err, gateway.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Charger not found")
		default:
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Data unavailable, try again later")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Charger released"})
}
