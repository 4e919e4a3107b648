package review

import (
	appDomain "idcard-backend/internal/domain/application"
	apptDomain "idcard-backend/internal/domain/appointment"
)

type UpdateStatusInput struct {
	ApplicationID   string
	Status          appDomain.Status
	RejectionReason string
	ReviewerID      string
}

type BulkApproveInput struct {
	ApplicationIDs []string
	ReviewerID     string
}

type BulkApproveDTO struct {
	ApprovedCount int64 `json:"approved_count"`
}

type UpdateAppointmentInput struct {
	AppointmentID string
	Status        apptDomain.Status
}

type AppointmentStatusDTO struct {
	AppointmentID       string `json:"appointment_id"`
	Status              string `json:"status"`
	CascadedApplications int64 `json:"cascaded_applications,omitempty"`
}
