// Package directory derives summary statistics and filtered views over
// already-loaded kiosk and charger lists. Nothing here touches storage.
package directory

import (
	"strings"

	"github.com/GlebRadaev/kioskhub/internal/domain"
)

type StatusFilter string

const (
	FilterAll         StatusFilter = "all"
	FilterAvailable   StatusFilter = "available"
	FilterMaintenance StatusFilter = "maintenance"
)

type KioskStats struct {
	TotalKiosks            int `json:"totalKiosks"`
	KiosksWithAvailability int `json:"kiosksWithAvailability"`
	TotalChargerCapacity   int `json:"totalChargerCapacity"`
	TotalChargersAvailable int `json:"totalChargersAvailable"`
}

func ComputeKioskStats(kiosks []domain.Kiosk) KioskStats {
	var stats KioskStats
	for _, k := range kiosks {
		stats.TotalKiosks++
		if k.Available > 0 {
			stats.KiosksWithAvailability++
		}
		stats.TotalChargerCapacity += k.Total
		stats.TotalChargersAvailable += k.Available
	}
	return stats
}

// ParseStatusFilter accepts the current filter names and the legacy ones
// ("todos", "disponiveis", "manutencao"). Anything else means all.
func ParseStatusFilter(s string) StatusFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available", "disponiveis":
		return FilterAvailable
	case "maintenance", "manutencao":
		return FilterMaintenance
	default:
		return FilterAll
	}
}

// FilterKiosks keeps the kiosks whose name or location contains searchTerm
// (case-insensitive) and which satisfy the status filter. Order is preserved.
func FilterKiosks(kiosks []domain.Kiosk, searchTerm string, filter StatusFilter) []domain.Kiosk {
	term := strings.ToLower(searchTerm)
	result := make([]domain.Kiosk, 0, len(kiosks))
	for _, k := range kiosks {
		if matchesSearch(k, term) && matchesStatus(k, filter) {
			result = append(result, k)
		}
	}
	return result
}

// AvailableKiosks returns the kiosks with at least one free charger.
func AvailableKiosks(kiosks []domain.Kiosk) []domain.Kiosk {
	return FilterKiosks(kiosks, "", FilterAvailable)
}

func matchesSearch(k domain.Kiosk, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(k.Name), term) ||
		strings.Contains(strings.ToLower(k.Location), term)
}

func matchesStatus(k domain.Kiosk, filter StatusFilter) bool {
	switch filter {
	case FilterAll:
		return true
	case FilterAvailable:
		return k.Available > 0
	case FilterMaintenance:
		return k.Status == domain.KioskMaintenance
	default:
		return false
	}
}
