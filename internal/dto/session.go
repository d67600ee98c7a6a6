package dto

import (
	"github.com/GlebRadaev/kioskhub/internal/directory"
	"github.com/GlebRadaev/kioskhub/internal/routes"
	"github.com/GlebRadaev/kioskhub/internal/service/workflow"
)

type SessionDTO struct {
	ID                string                 `json:"id" example:"3f6c1f0e-8f0c-4a55-9d43-1d0c2a9d7b11"`
	Phase             string                 `json:"phase" example:"ready"`
	Kiosk             *KioskDTO              `json:"kiosk,omitempty"`
	Chargers          []ChargerDTO           `json:"chargers"`
	Stats             directory.ChargerStats `json:"stats"`
	MockMode          bool                   `json:"mockMode"`
	SelectedChargerID string                 `json:"selectedChargerId,omitempty"`
	Confirming        bool                   `json:"confirming"`
	Banner            string                 `json:"banner,omitempty"`
	Error             string                 `json:"error,omitempty"`
	BackPath          string                 `json:"backPath" example:"/dashboard"`
}

type SelectRequestDTO struct {
	ChargerID string `json:"chargerId" example:"charger-1"`
}

type ConfirmResponseDTO struct {
	Redirect string `json:"redirect" example:"/payment/charger-1"`
}

func NewSessionDTO(v workflow.View) SessionDTO {
	response := SessionDTO{
		ID:                v.ID,
		Phase:             string(v.Phase),
		Chargers:          NewChargerDTOs(v.Chargers),
		Stats:             v.Stats,
		MockMode:          v.MockMode,
		SelectedChargerID: v.SelectedID,
		Confirming:        v.Confirming,
		Banner:            v.Banner,
		BackPath:          routes.DashboardPath,
	}
	if v.Kiosk != nil {
		kiosk := NewKioskDTO(*v.Kiosk)
		response.Kiosk = &kiosk
	}
	if v.Err != nil {
		response.Error = v.Err.Error()
	}
	return response
}
