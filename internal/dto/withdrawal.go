package dto

import "time"

type WithdrawalDTO struct {
	ID        string    `json:"id" example:"5b0e8a52-0f7b-4a61-9b7e-2a1f3c4d5e6f"`
	ChargerID string    `json:"chargerId" example:"charger-1"`
	KioskID   string    `json:"kioskId" example:"kiosk-1"`
	Timestamp string    `json:"timestamp" example:"2025-01-01T10:00:00Z"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T10:00:00Z"`
}
