package application

import (
	"time"

	appDomain "idcard-backend/internal/domain/application"
	docDomain "idcard-backend/internal/domain/document"
	locDomain "idcard-backend/internal/domain/location"
)

type CreateInput struct {
	IDType           appDomain.IDType
	FirstName        string
	LastName         string
	DateOfBirth      time.Time
	PlaceOfBirth     string
	Nationality      string
	Gender           string
	MaritalStatus    string
	Profession       string
	Address          string
	PhoneNumber      string
	Email            string
	EmergencyContact string
	EmergencyPhone   string
	FatherName       string
	FatherProfession string
	MotherName       string
	MotherProfession string
	PreviousIDNumber string
	ExpiryDate       *time.Time
}

type AppointmentView struct {
	AppointmentID string              `json:"appointment_id"`
	Date          time.Time           `json:"date"`
	TimeSlot      string              `json:"time_slot"`
	Status        string              `json:"status"`
	Location      *locDomain.Location `json:"location,omitempty"`
}

type DetailDTO struct {
	Application *appDomain.Application `json:"application"`
	Documents   []docDomain.Document   `json:"documents"`
	Appointment *AppointmentView       `json:"appointment,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type ListDTO struct {
	Applications []appDomain.Application `json:"applications"`
	Pagination   Pagination              `json:"pagination"`
}
