package location

import locDomain "idcard-backend/internal/domain/location"

type CreateInput struct {
	Name          string
	Address       string
	District      string
	WorkingHours  string
	AvailableDays locDomain.Days
	Capacity      int
}

type UpdateInput struct {
	Name          *string
	Address       *string
	District      *string
	WorkingHours  *string
	AvailableDays *locDomain.Days
	Capacity      *int
	IsActive      *bool
}

type StatsDTO struct {
	LocationID        uint64 `json:"location_id"`
	Name              string `json:"name"`
	TotalAppointments int64  `json:"total_appointments"`
	Upcoming          int64  `json:"upcoming"`
	Today             int64  `json:"today"`
	Capacity          int    `json:"capacity"`
	IsActive          bool   `json:"is_active"`
}
