package dto

import (
	"github.com/GlebRadaev/kioskhub/internal/directory"
	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/routes"
)

type KioskDTO struct {
	ID                string `json:"id" example:"kiosk-1"`
	Name              string `json:"name" example:"Totem Shopping Center"`
	Location          string `json:"location" example:"Piso 2"`
	Address           string `json:"address" example:"Av. Paulista, 1000"`
	City              string `json:"city" example:"São Paulo"`
	State             string `json:"state" example:"SP"`
	AvailableChargers int    `json:"availableChargers" example:"3"`
	TotalChargers     int    `json:"totalChargers" example:"6"`
	Status            string `json:"status" example:"available"`
	CreatedAt         string `json:"createdAt" example:"2025-01-01T00:00:00Z"`
	UpdatedAt         string `json:"updatedAt" example:"2025-01-01T00:00:00Z"`
	Path              string `json:"path" example:"/kiosk/kiosk-1"`
}

type ChargerDTO struct {
	ID           string `json:"id" example:"charger-1"`
	KioskID      string `json:"kioskId" example:"kiosk-1"`
	SlotNumber   int    `json:"slotNumber" example:"1"`
	Status       string `json:"status" example:"available"`
	BatteryLevel *int   `json:"batteryLevel,omitempty" example:"85"`
	Model        string `json:"model,omitempty" example:"PowerBank 10.000mAh"`
	HeldBy       string `json:"heldBy,omitempty"`
	LastUpdate   string `json:"lastUpdate,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type KioskListResponseDTO struct {
	Stats  directory.KioskStats `json:"stats"`
	Kiosks []KioskDTO           `json:"kiosks"`
}

type KioskDetailResponseDTO struct {
	Kiosk    KioskDTO               `json:"kiosk"`
	Chargers []ChargerDTO           `json:"chargers"`
	Stats    directory.ChargerStats `json:"stats"`
}

func NewKioskDTO(k domain.Kiosk) KioskDTO {
	return KioskDTO{
		ID:                k.ID,
		Name:              k.Name,
		Location:          k.Location,
		Address:           k.Address,
		City:              k.City,
		State:             k.Region,
		AvailableChargers: k.Available,
		TotalChargers:     k.Total,
		Status:            string(k.Status),
		CreatedAt:         k.CreatedAt,
		UpdatedAt:         k.UpdatedAt,
		Path:              routes.KioskPath(k.ID),
	}
}

func NewKioskDTOs(kiosks []domain.Kiosk) []KioskDTO {
	response := make([]KioskDTO, len(kiosks))
	for i, k := range kiosks {
		response[i] = NewKioskDTO(k)
	}
	return response
}

func NewChargerDTOs(chargers []domain.Charger) []ChargerDTO {
	response := make([]ChargerDTO, len(chargers))
	for i, c := range chargers {
		response[i] = ChargerDTO{
			ID:           c.ID,
			KioskID:      c.KioskID,
			SlotNumber:   c.SlotNumber,
			Status:       string(c.Status),
			BatteryLevel: c.BatteryLevel,
			Model:        c.Model,
			HeldBy:       c.HeldBy,
			LastUpdate:   c.LastUpdate,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		}
	}
	return response
}
