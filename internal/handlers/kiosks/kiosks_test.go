package kiosks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/kioskhub/internal/directory"
	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/dto"
	"github.com/GlebRadaev/kioskhub/internal/service/gateway"
	"github.com/GlebRadaev/kioskhub/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*KioskHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withKioskID(r *http.Request, kioskID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("kioskID", kioskID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testKiosks() []domain.Kiosk {
	return []domain.Kiosk{
		{ID: "k1", Name: "Shopping Norte", Location: "Piso 1", Available: 2, Total: 4, Status: domain.KioskAvailable},
		{ID: "k2", Name: "Aeroporto", Location: "Terminal 2", Available: 0, Total: 6, Status: domain.KioskMaintenance},
		{ID: "k3", Name: "Shopping Sul", Location: "Piso 3", Available: 1, Total: 2, Status: domain.KioskAvailable},
	}
}

func TestListKiosksHandler(t *testing.T) {
	handler, service := NewMock(t)
	fullStats := directory.KioskStats{
		TotalKiosks:            3,
		KiosksWithAvailability: 2,
		TotalChargerCapacity:   12,
		TotalChargersAvailable: 3,
	}

	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedIDs   []string
		expectedError string
	}{
		{
			name:  "All kiosks",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListKiosks(gomock.Any()).Return(testKiosks(), nil)
			},
			expectedCode: http.StatusOK,
			expectedIDs:  []string{"k1", "k2", "k3"},
		},
		{
			name:  "Search narrows list but not stats",
			query: "?search=shopping&status=available",
			prepareMock: func() {
				service.EXPECT().ListKiosks(gomock.Any()).Return(testKiosks(), nil)
			},
			expectedCode: http.StatusOK,
			expectedIDs:  []string{"k1", "k3"},
		},
		{
			name:  "Legacy maintenance filter",
			query: "?status=manutencao",
			prepareMock: func() {
				service.EXPECT().ListKiosks(gomock.Any()).Return(testKiosks(), nil)
			},
			expectedCode: http.StatusOK,
			expectedIDs:  []string{"k2"},
		},
		{
			name:  "No match",
			query: "?search=xyz",
			prepareMock: func() {
				service.EXPECT().ListKiosks(gomock.Any()).Return(testKiosks(), nil)
			},
			expectedCode: http.StatusOK,
			expectedIDs:  []string{},
		},
		{
			name:  "Backend unavailable",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListKiosks(gomock.Any()).Return(nil, fmt.Errorf("%w: %w", gateway.ErrDataUnavailable, errors.New("conn refused")))
			},
			expectedCode:  http.StatusServiceUnavailable,
			expectedError: "Data unavailable, try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/kiosks"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ListKiosks(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var body dto.KioskListResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, fullStats, body.Stats)
			ids := make([]string, 0, len(body.Kiosks))
			for _, k := range body.Kiosks {
				ids = append(ids, k.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestListAvailableKiosksHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListAvailableKiosks(gomock.Any()).Return([]domain.Kiosk{testKiosks()[0]}, nil)
	r := httptest.NewRequest(http.MethodGet, "/api/kiosks/available", nil)
	w := httptest.NewRecorder()
	handler.ListAvailableKiosks(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.KioskDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "k1", body[0].ID)
	assert.Equal(t, 2, body[0].AvailableChargers)

	service.EXPECT().ListAvailableKiosks(gomock.Any()).Return(nil, errors.New("boom"))
	w = httptest.NewRecorder()
	handler.ListAvailableKiosks(w, r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetKioskHandler(t *testing.T) {
	handler, service := NewMock(t)
	battery := 85
	kiosk := testKiosks()[0]
	chargers := []domain.Charger{
		{ID: "c1", KioskID: "k1", SlotNumber: 1, Status: domain.ChargerAvailable, BatteryLevel: &battery},
		{ID: "c2", KioskID: "k1", SlotNumber: 2, Status: domain.ChargerOccupied, HeldBy: "u1"},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Kiosk with chargers",
			prepareMock: func() {
				service.EXPECT().GetKiosk(gomock.Any(), "k1").Return(&kiosk, nil)
				service.EXPECT().ListChargersForKiosk(gomock.Any(), "k1").Return(chargers)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Kiosk not found",
			prepareMock: func() {
				service.EXPECT().GetKiosk(gomock.Any(), "k1").Return(nil, nil)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Kiosk not found",
		},
		{
			name: "Backend unavailable",
			prepareMock: func() {
				service.EXPECT().GetKiosk(gomock.Any(), "k1").Return(nil, gateway.ErrDataUnavailable)
			},
			expectedCode:  http.StatusServiceUnavailable,
			expectedError: "Data unavailable, try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withKioskID(httptest.NewRequest(http.MethodGet, "/api/kiosks/k1", nil), "k1")
			w := httptest.NewRecorder()

			handler.GetKiosk(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var body dto.KioskDetailResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, "k1", body.Kiosk.ID)
			require.Len(t, body.Chargers, 2)
			assert.Equal(t, 85, *body.Chargers[0].BatteryLevel)
			assert.Nil(t, body.Chargers[1].BatteryLevel)
			assert.Equal(t, directory.ChargerStats{Total: 2, Available: 1, Occupied: 1}, body.Stats)
		})
	}
}
