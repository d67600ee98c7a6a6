package kiosks

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/kioskhub/internal/directory"
	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/dto"
	"github.com/GlebRadaev/kioskhub/internal/service/gateway"
	"github.com/GlebRadaev/kioskhub/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=kiosks.go -destination=mock_kiosks.go -package=kiosks

type Service interface {
	ListKiosks(ctx context.Context) ([]domain.Kiosk, error)
	ListAvailableKiosks(ctx context.Context) ([]domain.Kiosk, error)
	GetKiosk(ctx context.Context, id string) (*domain.Kiosk, error)
	ListChargersForKiosk(ctx context.Context, kioskID string) []domain.Charger
}

type KioskHandler struct {
	kioskService Service
}

func New(kioskService Service) *KioskHandler {
	return &KioskHandler{
		kioskService: kioskService,
	}
}

// ListKiosks godoc
//
//	@Summary		List kiosks
//	@Description	List every kiosk with directory statistics. Statistics always cover the full list; search and status only narrow the returned kiosks.
//	@Tags			Kiosks
//	@Produce		json
//	@Param			search	query		string	false	"Case-insensitive match on name or location"
//	@Param			status	query		string	false	"all, available or maintenance"
//	@Success		200		{object}	dto.KioskListResponseDTO
//	@Failure		503		{object}	utils.Response	"Data unavailable"
//	@Router			/api/kiosks [get]
func (h *KioskHandler) ListKiosks(w http.ResponseWriter, r *http.Request) {
	kiosks, err := h.kioskService.ListKiosks(r.Context())
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	query := r.URL.Query()
	filtered := directory.FilterKiosks(kiosks, query.Get("search"), directory.ParseStatusFilter(query.Get("status")))

	utils.RespondWithJSON(w, http.StatusOK, dto.KioskListResponseDTO{
		Stats:  directory.ComputeKioskStats(kiosks),
		Kiosks: dto.NewKioskDTOs(filtered),
	})
}

// ListAvailableKiosks godoc
//
//	@Summary		List kiosks with free chargers
//	@Tags			Kiosks
//	@Produce		json
//	@Success		200	{array}		dto.KioskDTO
//	@Failure		503	{object}	utils.Response	"Data unavailable"
//	@Router			/api/kiosks/available [get]
func (h *KioskHandler) ListAvailableKiosks(w http.ResponseWriter, r *http.Request) {
	kiosks, err := h.kioskService.ListAvailableKiosks(r.Context())
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewKioskDTOs(kiosks))
}

// GetKiosk godoc
//
//	@Summary		Get kiosk details
//	@Description	Kiosk with its chargers ordered by slot and the charger statistics.
//	@Tags			Kiosks
//	@Produce		json
//	@Param			kioskID	path		string	true	"Kiosk ID"
//	@Success		200		{object}	dto.KioskDetailResponseDTO
//	@Failure		404		{object}	utils.Response	"Kiosk not found"
//	@Failure		503		{object}	utils.Response	"Data unavailable"
//	@Router			/api/kiosks/{kioskID} [get]
func (h *KioskHandler) GetKiosk(w http.ResponseWriter, r *http.Request) {
	kioskID := chi.URLParam(r, "kioskID")

	kiosk, err := h.kioskService.GetKiosk(r.Context(), kioskID)
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}
	if kiosk == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Kiosk not found")
		return
	}

	chargers := h.kioskService.ListChargersForKiosk(r.Context(), kioskID)
	utils.RespondWithJSON(w, http.StatusOK, dto.KioskDetailResponseDTO{
		Kiosk:    dto.NewKioskDTO(*kiosk),
		Chargers: dto.NewChargerDTOs(chargers),
		Stats:    directory.ComputeChargerStats(chargers),
	})
}

func respondWithGatewayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gateway.ErrDataUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Data unavailable, try again later")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
