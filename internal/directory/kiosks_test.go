package directory

import (
	"testing"

	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleKiosks() []domain.Kiosk {
	return []domain.Kiosk{
		{ID: "1", Name: "Totem 1", Location: "Shopping Center", Available: 0, Total: 6, Status: domain.KioskAvailable},
		{ID: "2", Name: "Airport Hall", Location: "Terminal 2", Available: 3, Total: 8, Status: domain.KioskAvailable},
		{ID: "3", Name: "Library", Location: "Downtown", Available: 0, Total: 4, Status: domain.KioskMaintenance},
		{ID: "4", Name: "Station", Location: "shopping street", Available: 5, Total: 5, Status: domain.KioskMaintenance},
	}
}

func TestComputeKioskStats(t *testing.T) {
	tests := []struct {
		name     string
		kiosks   []domain.Kiosk
		expected KioskStats
	}{
		{
			name:     "Empty list",
			kiosks:   nil,
			expected: KioskStats{},
		},
		{
			name:   "Mixed list",
			kiosks: sampleKiosks(),
			expected: KioskStats{
				TotalKiosks:            4,
				KiosksWithAvailability: 2,
				TotalChargerCapacity:   23,
				TotalChargersAvailable: 8,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeKioskStats(tt.kiosks)
			assert.Equal(t, tt.expected, stats)
			assert.Equal(t, len(tt.kiosks), stats.TotalKiosks)
		})
	}
}

func TestFilterKiosks(t *testing.T) {
	kiosks := sampleKiosks()

	tests := []struct {
		name        string
		searchTerm  string
		filter      StatusFilter
		expectedIDs []string
	}{
		{name: "Everything", searchTerm: "", filter: FilterAll, expectedIDs: []string{"1", "2", "3", "4"}},
		{name: "Search by name is case-insensitive", searchTerm: "AIRPORT", filter: FilterAll, expectedIDs: []string{"2"}},
		{name: "Search matches location", searchTerm: "shopping", filter: FilterAll, expectedIDs: []string{"1", "4"}},
		{name: "Only with availability", searchTerm: "", filter: FilterAvailable, expectedIDs: []string{"2", "4"}},
		{name: "Only maintenance", searchTerm: "", filter: FilterMaintenance, expectedIDs: []string{"3", "4"}},
		{name: "Search and status combined", searchTerm: "shopping", filter: FilterAvailable, expectedIDs: []string{"4"}},
		{name: "Name matches but no availability", searchTerm: "Totem 1", filter: FilterAvailable, expectedIDs: []string{}},
		{name: "Unknown filter matches nothing", searchTerm: "", filter: StatusFilter("broken"), expectedIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterKiosks(kiosks, tt.searchTerm, tt.filter)
			ids := make([]string, 0, len(result))
			for _, k := range result {
				ids = append(ids, k.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilterKiosks_Properties(t *testing.T) {
	kiosks := sampleKiosks()

	assert.Empty(t, FilterKiosks(nil, "x", FilterAvailable))
	assert.Equal(t, kiosks, FilterKiosks(kiosks, "", FilterAll))

	for _, f := range []StatusFilter{FilterAll, FilterAvailable, FilterMaintenance} {
		for _, term := range []string{"", "o", "shopping", "zzz"} {
			once := FilterKiosks(kiosks, term, f)
			twice := FilterKiosks(once, term, f)
			assert.Equal(t, once, twice, "filter %q/%q must be idempotent", term, f)
		}
	}
}

func TestFilterKiosks_DoesNotMutateInput(t *testing.T) {
	kiosks := sampleKiosks()
	before := sampleKiosks()

	_ = FilterKiosks(kiosks, "library", FilterMaintenance)

	assert.Equal(t, before, kiosks)
}

func TestParseStatusFilter(t *testing.T) {
	tests := map[string]StatusFilter{
		"":            FilterAll,
		"all":         FilterAll,
		"todos":       FilterAll,
		"available":   FilterAvailable,
		"disponiveis": FilterAvailable,
		"Maintenance": FilterMaintenance,
		"manutencao":  FilterMaintenance,
		"garbage":     FilterAll,
	}
	for in, expected := range tests {
		assert.Equal(t, expected, ParseStatusFilter(in), in)
	}
}

func TestAvailableKiosks(t *testing.T) {
	result := AvailableKiosks(sampleKiosks())

	assert.Len(t, result, 2)
	for _, k := range result {
		assert.Greater(t, k.Available, 0)
	}
}
