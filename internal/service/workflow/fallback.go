package workflow

import (
	"strconv"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/domain"
)

const (
	fallbackCreatedAt = "2025-01-01"
	fallbackModel     = "PowerBank 10.000mAh"
	fallbackHolder    = "user123"
)

type fallbackSlot struct {
	status  domain.ChargerStatus
	battery int
	holder  string
}

// Fixed demo layout shown when the stores can't supply chargers.
var fallbackLayout = []fallbackSlot{
	{status: domain.ChargerAvailable, battery: 85},
	{status: domain.ChargerAvailable, battery: 92},
	{status: domain.ChargerOccupied, battery: 45, holder: fallbackHolder},
	{status: domain.ChargerAvailable, battery: 100},
	{status: domain.ChargerMaintenance, battery: 0},
	{status: domain.ChargerReserved, battery: 78, holder: fallbackHolder},
}

func fallbackKiosk(kioskID string, now time.Time) *domain.Kiosk {
	available := 0
	for _, slot := range fallbackLayout {
		if slot.status == domain.ChargerAvailable {
			available++
		}
	}
	return &domain.Kiosk{
		ID:        kioskID,
		Name:      "Totem 1",
		Location:  "Location 1",
		Address:   "Address 1",
		City:      "City 1",
		Region:    "State 1",
		Available: available,
		Total:     len(fallbackLayout),
		Status:    domain.KioskAvailable,
		CreatedAt: fallbackCreatedAt,
		UpdatedAt: now.UTC().Format(time.RFC3339),
	}
}

func fallbackChargers(kioskID string, now time.Time) []domain.Charger {
	stamp := now.UTC().Format(time.RFC3339)
	chargers := make([]domain.Charger, 0, len(fallbackLayout))
	for i, slot := range fallbackLayout {
		battery := slot.battery
		chargers = append(chargers, domain.Charger{
			ID:           "charger-" + strconv.Itoa(i+1),
			KioskID:      kioskID,
			SlotNumber:   i + 1,
			Status:       slot.status,
			BatteryLevel: &battery,
			Model:        fallbackModel,
			HeldBy:       slot.holder,
			LastUpdate:   stamp,
			CreatedAt:    fallbackCreatedAt,
			UpdatedAt:    stamp,
		})
	}
	return chargers
}
