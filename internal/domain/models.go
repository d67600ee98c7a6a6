package domain

import "time"

type KioskStatus string

const (
	KioskAvailable   KioskStatus = "available"
	KioskMaintenance KioskStatus = "maintenance"
	KioskUnavailable KioskStatus = "unavailable"
)

type ChargerStatus string

const (
	ChargerAvailable   ChargerStatus = "available"
	ChargerOccupied    ChargerStatus = "occupied"
	ChargerMaintenance ChargerStatus = "maintenance"
	ChargerReserved    ChargerStatus = "reserved"
)

// WithdrawalPending is the only status this service ever writes.
const WithdrawalPending = "pending"

type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Kiosk is a physical charging station ("totem") housing charger slots.
type Kiosk struct {
	ID        string
	Name      string
	Location  string
	Address   string
	City      string
	Region    string
	Available int
	Total     int
	Status    KioskStatus
	CreatedAt string
	UpdatedAt string
}

// Charger is one slot of a kiosk.
type Charger struct {
	ID           string
	KioskID      string
	SlotNumber   int
	Status       ChargerStatus
	BatteryLevel *int
	Model        string
	HeldBy       string
	LastUpdate   string
	CreatedAt    string
	UpdatedAt    string
}

type Withdrawal struct {
	ID        string
	ChargerID string
	UserID    string
	KioskID   string
	Timestamp string
	Status    string
	CreatedAt time.Time
}

// Reservation is a reserved charger together with the moment it was reserved.
type Reservation struct {
	Charger Charger
	Since   time.Time
}
