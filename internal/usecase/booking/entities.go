package booking

import (
	"time"

	apptDomain "idcard-backend/internal/domain/appointment"
	locDomain "idcard-backend/internal/domain/location"
)

type BookInput struct {
	ApplicationID string
	LocationID    uint64
	Date          time.Time
	TimeSlot      string
}

type BookingDTO struct {
	AppointmentID      string              `json:"appointment_id"`
	ConfirmationNumber string              `json:"confirmation_number"`
	Date               time.Time           `json:"date"`
	TimeSlot           string              `json:"time_slot"`
	Status             string              `json:"status"`
	Location           *locDomain.Location `json:"location,omitempty"`
}

type AvailabilityDTO struct {
	Date           time.Time                     `json:"date"`
	Location       *locDomain.Location           `json:"location"`
	AvailableSlots []apptDomain.SlotAvailability `json:"available_slots"`
	Message        string                        `json:"message,omitempty"`
}

type ConfirmationDTO struct {
	ConfirmationNumber string              `json:"confirmation_number"`
	Date               time.Time           `json:"date"`
	TimeSlot           string              `json:"time_slot"`
	Status             string              `json:"status"`
	Location           *locDomain.Location `json:"location,omitempty"`
	Applications       []LinkedApplication `json:"applications"`
}

type LinkedApplication struct {
	ApplicationID string `json:"application_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	Status        string `json:"status"`
}
