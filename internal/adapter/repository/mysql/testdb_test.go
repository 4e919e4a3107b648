package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type applicationSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	ApplicationID    string         `gorm:"size:32;column:application_id"`
	IDType           string         `gorm:"type:text;column:id_type"` // ← no enum
	FirstName        string         `gorm:"column:first_name"`
	LastName         string         `gorm:"column:last_name"`
	DateOfBirth      time.Time      `gorm:"column:date_of_birth"`
	PlaceOfBirth     string         `gorm:"column:place_of_birth"`
	Nationality      string         `gorm:"column:nationality"`
	Gender           string         `gorm:"type:text;column:gender"`
	MaritalStatus    string         `gorm:"type:text;column:marital_status"`
	Profession       string         `gorm:"column:profession"`
	Address          string         `gorm:"column:address"`
	PhoneNumber      string         `gorm:"column:phone_number"`
	Email            string         `gorm:"column:email"`
	EmergencyContact string         `gorm:"column:emergency_contact"`
	EmergencyPhone   string         `gorm:"column:emergency_phone"`
	FatherName       string         `gorm:"column:father_name"`
	FatherProfession string         `gorm:"column:father_profession"`
	MotherName       string         `gorm:"column:mother_name"`
	MotherProfession string         `gorm:"column:mother_profession"`
	PreviousIDNumber string         `gorm:"column:previous_id_number"`
	ExpiryDate       *time.Time     `gorm:"column:expiry_date"`
	PaymentAmount    float64        `gorm:"column:payment_amount"`
	PaymentStatus    string         `gorm:"type:text;column:payment_status"`
	PaymentMethod    string         `gorm:"column:payment_method"`
	PaymentReference string         `gorm:"column:payment_reference"`
	PaidAt           *time.Time     `gorm:"column:paid_at"`
	Status           string         `gorm:"type:text;column:status"`
	RejectionReason  string         `gorm:"column:rejection_reason"`
	ReviewedBy       string         `gorm:"column:reviewed_by"`
	ReviewedAt       *time.Time     `gorm:"column:reviewed_at"`
	AppointmentID    *uint64        `gorm:"column:appointment_id"`
	SubmittedAt      time.Time      `gorm:"column:submitted_at"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "applications" }

type appointmentSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	AppointmentID string         `gorm:"size:32;column:appointment_id"`
	Date          time.Time      `gorm:"column:date"`
	TimeSlot      string         `gorm:"column:time_slot"`
	LocationID    uint64         `gorm:"column:location_id"`
	Status        string         `gorm:"type:text;column:status"` // ← no enum
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (appointmentSQLite) TableName() string { return "appointments" }

type locationSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	Name          string         `gorm:"column:name"`
	Address       string         `gorm:"column:address"`
	District      string         `gorm:"column:district"`
	WorkingHours  string         `gorm:"column:working_hours"`
	AvailableDays string         `gorm:"type:text;column:available_days"` // JSON as text
	Capacity      int            `gorm:"column:capacity"`
	IsActive      bool           `gorm:"column:is_active"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (locationSQLite) TableName() string { return "locations" }

type documentSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	DocumentID    string         `gorm:"size:32;column:document_id"`
	ApplicationID uint64         `gorm:"column:application_id"`
	Type          string         `gorm:"type:text;column:type"` // ← no enum
	Filename      string         `gorm:"column:filename"`
	MimeType      string         `gorm:"column:mime_type"`
	Size          int64          `gorm:"column:size"`
	URL           string         `gorm:"column:url"`
	StorageID     string         `gorm:"column:storage_id"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (documentSQLite) TableName() string { return "documents" }

type paymentSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	TransactionID string         `gorm:"column:transaction_id"`
	ApplicationID uint64         `gorm:"column:application_id"`
	Amount        float64        `gorm:"column:amount"`
	Currency      string         `gorm:"column:currency"`
	Method        string         `gorm:"type:text;column:method"` // ← no enum
	Status        string         `gorm:"type:text;column:status"`
	ProviderRef   string         `gorm:"column:provider_ref"`
	ProviderMsg   string         `gorm:"column:provider_msg"`
	Description   string         `gorm:"column:description"`
	PaidAt        *time.Time     `gorm:"column:paid_at"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

type userSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	UserID       string         `gorm:"size:32;column:user_id"`
	Email        string         `gorm:"column:email"`
	PasswordHash string         `gorm:"column:password_hash"`
	FirstName    string         `gorm:"column:first_name"`
	LastName     string         `gorm:"column:last_name"`
	Role         string         `gorm:"type:text;column:role"` // ← no enum
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type sessionSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	Token     string    `gorm:"size:32;column:token"`
	UserID    uint64    `gorm:"column:user_id"`
	ExpiresAt time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (sessionSQLite) TableName() string { return "sessions" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&applicationSQLite{}, &appointmentSQLite{}, &locationSQLite{},
		&documentSQLite{}, &paymentSQLite{}, &userSQLite{}, &sessionSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
