package directory

import "github.com/GlebRadaev/kioskhub/internal/domain"

type ChargerStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
	Reserved    int `json:"reserved"`
}

func ComputeChargerStats(chargers []domain.Charger) ChargerStats {
	stats := ChargerStats{Total: len(chargers)}
	for _, c := range chargers {
		switch c.Status {
		case domain.ChargerAvailable:
			stats.Available++
		case domain.ChargerOccupied:
			stats.Occupied++
		case domain.ChargerMaintenance:
			stats.Maintenance++
		case domain.ChargerReserved:
			stats.Reserved++
		}
	}
	return stats
}

func IsAvailable(c domain.Charger) bool {
	return c.Status == domain.ChargerAvailable
}

// FindCharger returns the charger with the given id, or false.
func FindCharger(chargers []domain.Charger, id string) (domain.Charger, bool) {
	for _, c := range chargers {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Charger{}, false
}
