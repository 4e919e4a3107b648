package application

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPendingReview        Status = "PENDING_REVIEW"
	StatusDocumentReview       Status = "DOCUMENT_REVIEW"
	StatusPaymentPending       Status = "PAYMENT_PENDING"
	StatusPaymentCompleted     Status = "PAYMENT_COMPLETED"
	StatusAppointmentScheduled Status = "APPOINTMENT_SCHEDULED"
	StatusBiometricCompleted   Status = "BIOMETRIC_COMPLETED"
	StatusApproved             Status = "APPROVED"
	StatusRejected             Status = "REJECTED"
	StatusCompleted            Status = "COMPLETED"
)

type IDType string

const (
	TypeFirst   IDType = "FIRST"
	TypeRenewal IDType = "RENEWAL"
	TypeLost    IDType = "LOST"
	TypeDamaged IDType = "DAMAGED"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentProcessing PaymentStatus = "PROCESSING"
)

var (
	ErrNotFound           = errors.New("application not found")
	ErrPaymentRequired    = errors.New("payment must be completed before booking appointment")
	ErrAlreadyBooked      = errors.New("application already has an appointment")
	ErrRejectReasonNeeded = errors.New("rejection requires a reason")
	ErrInvalidStatus      = errors.New("invalid application status")
	ErrInvalidIDType      = errors.New("invalid id type")
)

// Fees fixes the application fee (FCFA) per id type at intake. The stored
// amount never changes afterwards, even if this table does.
var Fees = map[IDType]float64{
	TypeFirst:   10000,
	TypeRenewal: 5000,
	TypeLost:    10000,
	TypeDamaged: 7500,
}

const Currency = "FCFA"

func ValidIDType(t IDType) bool {
	_, ok := Fees[t]
	return ok
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPendingReview, StatusDocumentReview, StatusPaymentPending,
		StatusPaymentCompleted, StatusAppointmentScheduled, StatusBiometricCompleted,
		StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Finalized reports whether the application reached a state in which its
// documents can no longer be edited.
func (s Status) Finalized() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCompleted
}

type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_app_id" json:"application_id"`
	IDType        IDType `gorm:"type:enum('FIRST','RENEWAL','LOST','DAMAGED');column:id_type" json:"id_type"`

	FirstName        string     `gorm:"size:100" json:"first_name"`
	LastName         string     `gorm:"size:100" json:"last_name"`
	DateOfBirth      time.Time  `gorm:"type:date" json:"date_of_birth"`
	PlaceOfBirth     string     `gorm:"size:255" json:"place_of_birth"`
	Nationality      string     `gorm:"size:100" json:"nationality"`
	Gender           string     `gorm:"type:enum('MALE','FEMALE')" json:"gender"`
	MaritalStatus    string     `gorm:"type:enum('SINGLE','MARRIED','DIVORCED','WIDOWED')" json:"marital_status"`
	Profession       string     `gorm:"size:255" json:"profession,omitempty"`
	Address          string     `gorm:"type:text" json:"address"`
	PhoneNumber      string     `gorm:"size:32" json:"phone_number"`
	Email            string     `gorm:"size:255;index" json:"email"`
	EmergencyContact string     `gorm:"size:255" json:"emergency_contact,omitempty"`
	EmergencyPhone   string     `gorm:"size:32" json:"emergency_phone,omitempty"`
	FatherName       string     `gorm:"size:255" json:"father_name,omitempty"`
	FatherProfession string     `gorm:"size:255" json:"father_profession,omitempty"`
	MotherName       string     `gorm:"size:255" json:"mother_name,omitempty"`
	MotherProfession string     `gorm:"size:255" json:"mother_profession,omitempty"`
	PreviousIDNumber string     `gorm:"size:64" json:"previous_id_number,omitempty"`
	ExpiryDate       *time.Time `gorm:"type:date" json:"expiry_date,omitempty"`

	PaymentAmount    float64       `gorm:"type:decimal(18,2)" json:"payment_amount"`
	PaymentStatus    PaymentStatus `gorm:"type:enum('PENDING','COMPLETED','FAILED','PROCESSING');default:'PENDING'" json:"payment_status"`
	PaymentMethod    string        `gorm:"size:32" json:"payment_method,omitempty"`
	PaymentReference string        `gorm:"size:64" json:"payment_reference,omitempty"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`

	Status          Status     `gorm:"type:enum('PENDING_REVIEW','DOCUMENT_REVIEW','PAYMENT_PENDING','PAYMENT_COMPLETED','APPOINTMENT_SCHEDULED','BIOMETRIC_COMPLETED','APPROVED','REJECTED','COMPLETED');default:'PENDING_REVIEW'" json:"status"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	ReviewedBy      string     `gorm:"size:32" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`

	// FK to appointments.id; multiple applications may share one appointment,
	// though booking always creates a fresh 1:1 link.
	AppointmentID *uint64 `gorm:"index:idx_applications_appointment" json:"-"`

	SubmittedAt time.Time      `json:"submitted_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "applications" }
