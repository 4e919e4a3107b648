package document

import (
	docDomain "idcard-backend/internal/domain/document"
)

type UploadInput struct {
	ApplicationID string
	Type          docDomain.Type
	Filename      string
	MimeType      string
	Data          []byte
}

type UploadDTO struct {
	DocumentID string `json:"document_id"`
	Type       string `json:"type"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	URL        string `json:"url"`
	// AllDocumentsUploaded reports whether this upload completed the
	// required set and advanced the application to DOCUMENT_REVIEW.
	AllDocumentsUploaded bool `json:"all_documents_uploaded"`
}
