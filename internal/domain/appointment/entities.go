package appointment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

var (
	ErrNotFound      = errors.New("appointment not found")
	ErrSlotFull      = errors.New("time slot is fully booked")
	ErrInvalidDate   = errors.New("date is not available at this location")
	ErrInvalidSlot   = errors.New("invalid time slot")
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// TimeSlots is the fixed daily schedule every location books against.
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00",
}

func ValidSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Counted reports whether an appointment in this status occupies capacity.
func (s Status) Counted() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

type Appointment struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex); confirmation codes are
	// derived from its last 8 characters.
	AppointmentID string    `gorm:"size:32;uniqueIndex:ux_appointments_appt_id" json:"appointment_id"`
	Date          time.Time `gorm:"type:date;index:idx_appointments_slot" json:"date"`
	TimeSlot      string    `gorm:"size:5;index:idx_appointments_slot" json:"time_slot"`
	LocationID    uint64    `gorm:"not null;index:idx_appointments_slot" json:"location_id"`
	Status        Status    `gorm:"type:enum('SCHEDULED','CONFIRMED','COMPLETED','CANCELLED','NO_SHOW');default:'SCHEDULED'" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Appointment) TableName() string { return "appointments" }

// SlotAvailability is one row of the availability query result.
type SlotAvailability struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
}
