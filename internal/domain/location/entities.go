package location

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("location not found")
	ErrNotAvailable        = errors.New("location is not available")
	ErrHasAppointments     = errors.New("location has future appointments")
	ErrInvalidCapacity     = errors.New("capacity must be at least 1")
	ErrNoAvailableDays     = errors.New("at least one available day is required")
	ErrInvalidAvailableDay = errors.New("available days must be weekdays 0-6")
)

// Days is the weekly availability set, weekdays 0 (Sunday) through 6,
// persisted as a JSON array column.
type Days []int

func (d Days) Value() (driver.Value, error) {
	return json.Marshal([]int(d))
}

func (d *Days) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*d = nil
		return nil
	default:
		return fmt.Errorf("unsupported available_days column type %T", value)
	}
	return json.Unmarshal(raw, (*[]int)(d))
}

func (d Days) Contains(weekday time.Weekday) bool {
	for _, day := range d {
		if day == int(weekday) {
			return true
		}
	}
	return false
}

func (d Days) Valid() bool {
	if len(d) == 0 {
		return false
	}
	for _, day := range d {
		if day < 0 || day > 6 {
			return false
		}
	}
	return true
}

type Location struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name          string `gorm:"size:255;not null" json:"name"`
	Address       string `gorm:"type:text;not null" json:"address"`
	District      string `gorm:"size:100" json:"district"`
	WorkingHours  string `gorm:"size:64" json:"working_hours"`
	AvailableDays Days   `gorm:"type:json" json:"available_days"`
	Capacity      int    `gorm:"not null;default:20" json:"capacity"`
	IsActive      bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Location) TableName() string { return "locations" }
