// Package schema adapts stored kiosk and charger documents to the domain
// model. Two generations of field names exist in the stores:
//
//	v2 (current): name, location, availableChargers, kioskId, heldBy, ...
//	v1 (legacy):  nome, localizacao, carregadoresDisponiveis, totemId, ocupadoPor, ...
//
// For every field the v2 key is read first and the v1 key is the fallback.
// Documents are always written back with v2 keys.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/domain"
)

const (
	DefaultKioskName     = "Kiosk"
	DefaultKioskLocation = "Location not provided"
)

var ErrInvalidSlot = errors.New("charger slot number must be positive")

// field lists the keys of one logical field in precedence order.
type field []string

var (
	kioskName      = field{"name", "nome"}
	kioskLocation  = field{"location", "localizacao"}
	kioskAddress   = field{"address", "endereco"}
	kioskCity      = field{"city", "cidade"}
	kioskRegion    = field{"state", "estado"}
	kioskAvailable = field{"availableChargers", "carregadoresDisponiveis"}
	kioskTotal     = field{"totalChargers", "carregadoresTotal"}
	status         = field{"status"}
	createdAt      = field{"createdAt"}
	updatedAt      = field{"updatedAt"}

	chargerKiosk      = field{"kioskId", "totemId"}
	chargerSlot       = field{"slotNumber"}
	chargerBattery    = field{"batteryLevel"}
	chargerModel      = field{"model", "modelo"}
	chargerHeldBy     = field{"heldBy", "ocupadoPor"}
	chargerLastUpdate = field{"lastUpdate", "ultimaAtualizacao"}
)

var legacyKioskStatus = map[string]domain.KioskStatus{
	"disponivel":   domain.KioskAvailable,
	"manutencao":   domain.KioskMaintenance,
	"indisponivel": domain.KioskUnavailable,
}

var legacyChargerStatus = map[string]domain.ChargerStatus{
	"disponivel": domain.ChargerAvailable,
	"ocupado":    domain.ChargerOccupied,
	"manutencao": domain.ChargerMaintenance,
	"reservado":  domain.ChargerReserved,
}

func (f field) lookup(doc map[string]any) (any, bool) {
	for _, key := range f {
		if v, ok := doc[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (f field) str(doc map[string]any) (string, bool) {
	v, ok := f.lookup(doc)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (f field) integer(doc map[string]any) (int, bool) {
	v, ok := f.lookup(doc)
	if !ok {
		return 0, false
	}
	return toInt(v)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(math.Round(n)), true
	case float32:
		return int(math.Round(float64(n))), true
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0, false
			}
			return int(math.Round(f)), true
		}
		return int(i), true
	default:
		return 0, false
	}
}

func timestamp(f field, doc map[string]any, now time.Time) string {
	if s, ok := f.str(doc); ok && s != "" {
		return s
	}
	return now.UTC().Format(time.RFC3339)
}

// KioskStatus maps a stored kiosk status value; ok is false for unknown values.
func KioskStatus(raw string) (domain.KioskStatus, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch domain.KioskStatus(s) {
	case domain.KioskAvailable, domain.KioskMaintenance, domain.KioskUnavailable:
		return domain.KioskStatus(s), true
	}
	st, ok := legacyKioskStatus[s]
	return st, ok
}

// ChargerStatus maps a stored charger status value; ok is false for unknown values.
func ChargerStatus(raw string) (domain.ChargerStatus, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch domain.ChargerStatus(s) {
	case domain.ChargerAvailable, domain.ChargerOccupied, domain.ChargerMaintenance, domain.ChargerReserved:
		return domain.ChargerStatus(s), true
	}
	st, ok := legacyChargerStatus[s]
	return st, ok
}

// Anomaly describes a value that was repaired during decoding.
type Anomaly struct {
	Field  string
	Detail string
}

func (a Anomaly) String() string { return a.Field + ": " + a.Detail }

// DecodeKiosk builds a kiosk from a stored document, filling defaults and
// clamping the capacity counters so that 0 <= Available <= Total.
func DecodeKiosk(id string, doc map[string]any, now time.Time) (domain.Kiosk, []Anomaly) {
	var anomalies []Anomaly

	k := domain.Kiosk{
		ID:        id,
		Name:      DefaultKioskName,
		Location:  DefaultKioskLocation,
		Status:    domain.KioskAvailable,
		CreatedAt: timestamp(createdAt, doc, now),
		UpdatedAt: timestamp(updatedAt, doc, now),
	}
	if s, ok := kioskName.str(doc); ok {
		k.Name = s
	}
	if s, ok := kioskLocation.str(doc); ok {
		k.Location = s
	}
	k.Address, _ = kioskAddress.str(doc)
	k.City, _ = kioskCity.str(doc)
	k.Region, _ = kioskRegion.str(doc)

	if raw, ok := status.str(doc); ok {
		st, known := KioskStatus(raw)
		if !known {
			anomalies = append(anomalies, Anomaly{Field: "status", Detail: fmt.Sprintf("unknown value %q", raw)})
			st = domain.KioskUnavailable
		}
		k.Status = st
	}

	k.Available, _ = kioskAvailable.integer(doc)
	total, hasTotal := kioskTotal.integer(doc)
	if !hasTotal {
		total = k.Available
	}
	k.Total = total

	if k.Total < 0 {
		anomalies = append(anomalies, Anomaly{Field: "totalChargers", Detail: fmt.Sprintf("negative value %d", k.Total)})
		k.Total = 0
	}
	if k.Available < 0 {
		anomalies = append(anomalies, Anomaly{Field: "availableChargers", Detail: fmt.Sprintf("negative value %d", k.Available)})
		k.Available = 0
	}
	if k.Available > k.Total {
		anomalies = append(anomalies, Anomaly{Field: "availableChargers", Detail: fmt.Sprintf("%d exceeds total %d", k.Available, k.Total)})
		k.Available = k.Total
	}

	return k, anomalies
}

// DecodeCharger builds a charger from a stored document. Documents without a
// positive slot number are rejected with ErrInvalidSlot.
func DecodeCharger(id string, doc map[string]any, now time.Time) (domain.Charger, []Anomaly, error) {
	var anomalies []Anomaly

	slot, ok := chargerSlot.integer(doc)
	if !ok || slot <= 0 {
		return domain.Charger{}, nil, fmt.Errorf("charger %s: %w", id, ErrInvalidSlot)
	}

	c := domain.Charger{
		ID:         id,
		SlotNumber: slot,
		Status:     domain.ChargerAvailable,
		CreatedAt:  timestamp(createdAt, doc, now),
		UpdatedAt:  timestamp(updatedAt, doc, now),
	}
	c.KioskID, _ = chargerKiosk.str(doc)
	c.Model, _ = chargerModel.str(doc)
	c.HeldBy, _ = chargerHeldBy.str(doc)
	c.LastUpdate, _ = chargerLastUpdate.str(doc)
	if c.LastUpdate == "" {
		c.LastUpdate = c.UpdatedAt
	}

	if raw, ok := status.str(doc); ok {
		st, known := ChargerStatus(raw)
		if !known {
			anomalies = append(anomalies, Anomaly{Field: "status", Detail: fmt.Sprintf("unknown value %q", raw)})
			st = domain.ChargerMaintenance
		}
		c.Status = st
	}

	if level, ok := chargerBattery.integer(doc); ok {
		if level < 0 || level > 100 {
			anomalies = append(anomalies, Anomaly{Field: "batteryLevel", Detail: fmt.Sprintf("out of range %d", level)})
			level = min(max(level, 0), 100)
		}
		c.BatteryLevel = &level
	}

	return c, anomalies, nil
}

// ReservePatch is merged into a charger document when it gets reserved.
func ReservePatch(userID string, now time.Time) map[string]any {
	return map[string]any{
		"status":    string(domain.ChargerReserved),
		"heldBy":    userID,
		"updatedAt": now.UTC().Format(time.RFC3339),
	}
}

func OccupyPatch(userID string, now time.Time) map[string]any {
	return map[string]any{
		"status":    string(domain.ChargerOccupied),
		"heldBy":    userID,
		"updatedAt": now.UTC().Format(time.RFC3339),
	}
}

func ReleasePatch(now time.Time) map[string]any {
	return map[string]any{
		"status":    string(domain.ChargerAvailable),
		"heldBy":    nil,
		"updatedAt": now.UTC().Format(time.RFC3339),
	}
}

type withdrawalDoc struct {
	ChargerID string `json:"chargerId"`
	UserID    string `json:"userId"`
	KioskID   string `json:"kioskId"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

func EncodeWithdrawal(w *domain.Withdrawal) ([]byte, error) {
	return json.Marshal(withdrawalDoc{
		ChargerID: w.ChargerID,
		UserID:    w.UserID,
		KioskID:   w.KioskID,
		Timestamp: w.Timestamp,
		Status:    w.Status,
	})
}

// DecodeWithdrawal reads a withdrawal document; legacy "pendente" reads as pending.
func DecodeWithdrawal(id string, raw []byte, createdAt time.Time) (domain.Withdrawal, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Withdrawal{}, fmt.Errorf("withdrawal %s: %w", id, err)
	}
	w := domain.Withdrawal{ID: id, CreatedAt: createdAt}
	w.ChargerID, _ = field{"chargerId"}.str(doc)
	w.UserID, _ = field{"userId"}.str(doc)
	w.KioskID, _ = field{"kioskId", "totemId"}.str(doc)
	w.Timestamp, _ = field{"timestamp"}.str(doc)
	w.Status, _ = status.str(doc)
	if w.Status == "pendente" {
		w.Status = domain.WithdrawalPending
	}
	return w, nil
}
