package document

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"idcard-backend/internal/domain/application"
)

type Type string

const (
	TypePhoto          Type = "PHOTO"
	TypeBirthCert      Type = "BIRTH_CERTIFICATE"
	TypeProofOfAddress Type = "PROOF_OF_ADDRESS"
	TypePreviousID     Type = "PREVIOUS_ID"
	TypePoliceReport   Type = "POLICE_REPORT"
	TypePassport       Type = "PASSPORT"
)

var (
	ErrNotFound             = errors.New("document not found")
	ErrInvalidType          = errors.New("document type not supported")
	ErrApplicationFinalized = errors.New("cannot edit documents of a finalized application")
)

func ValidType(t Type) bool {
	switch t {
	case TypePhoto, TypeBirthCert, TypeProofOfAddress, TypePreviousID, TypePoliceReport, TypePassport:
		return true
	}
	return false
}

var baseRequired = []Type{TypePhoto, TypeBirthCert, TypeProofOfAddress}

// RequiredFor returns the document set an application of the given id type
// must upload before it can advance to DOCUMENT_REVIEW.
func RequiredFor(idType application.IDType) []Type {
	switch idType {
	case application.TypeRenewal, application.TypeDamaged:
		return append(append([]Type{}, baseRequired...), TypePreviousID)
	case application.TypeLost:
		return append(append([]Type{}, baseRequired...), TypePoliceReport)
	default:
		return append([]Type{}, baseRequired...)
	}
}

// Complete reports whether uploaded covers every type in required.
func Complete(required []Type, uploaded []Type) bool {
	have := make(map[Type]bool, len(uploaded))
	for _, t := range uploaded {
		have[t] = true
	}
	for _, t := range required {
		if !have[t] {
			return false
		}
	}
	return true
}

type Document struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	DocumentID    string `gorm:"size:32;uniqueIndex:ux_documents_doc_id" json:"document_id"`
	ApplicationID uint64 `gorm:"not null;index:idx_documents_application" json:"-"`
	Type          Type   `gorm:"type:enum('PHOTO','BIRTH_CERTIFICATE','PROOF_OF_ADDRESS','PREVIOUS_ID','POLICE_REPORT','PASSPORT')" json:"type"`
	Filename      string `gorm:"size:255" json:"filename"`
	MimeType      string `gorm:"size:100" json:"mime_type"`
	Size          int64  `json:"size"`
	URL           string `gorm:"type:text" json:"url"`
	StorageID     string `gorm:"size:255" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"uploaded_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Document) TableName() string { return "documents" }
