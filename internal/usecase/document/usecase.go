package document

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	appDomain "idcard-backend/internal/domain/application"
	docDomain "idcard-backend/internal/domain/document"
	"idcard-backend/internal/domain/uow"
	"idcard-backend/internal/infrastructure/storage"
	"idcard-backend/pkg/id"
)

type Usecase struct {
	applications appDomain.Repository
	documents    docDomain.Repository
	store        storage.Store
	uow          uow.UnitOfWork
}

func NewUsecase(applications appDomain.Repository, documents docDomain.Repository, store storage.Store, tx uow.UnitOfWork) *Usecase {
	return &Usecase{applications: applications, documents: documents, store: store, uow: tx}
}

// Upload stores one document for an application. When the upload completes
// the required set for the application's id type and the application is
// still in PENDING_REVIEW, it advances to DOCUMENT_REVIEW.
func (u *Usecase) Upload(ctx context.Context, in UploadInput) (*UploadDTO, error) {
	if !docDomain.ValidType(in.Type) {
		return nil, docDomain.ErrInvalidType
	}

	a, err := u.applications.GetByApplicationID(ctx, in.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	if a.Status.Finalized() {
		return nil, docDomain.ErrApplicationFinalized
	}

	key := fmt.Sprintf("%s/%s_%d%s", a.ApplicationID, strings.ToLower(string(in.Type)), time.Now().UnixMilli(), ext(in.Filename))
	stored, err := u.store.Put(ctx, key, in.MimeType, in.Data)
	if err != nil {
		return nil, err
	}

	var dto *UploadDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d := &docDomain.Document{
			DocumentID:    id.NewID32(),
			ApplicationID: a.ID,
			Type:          in.Type,
			Filename:      in.Filename,
			MimeType:      in.MimeType,
			Size:          int64(len(in.Data)),
			URL:           stored.URL,
			StorageID:     stored.StorageID,
		}
		if err := r.Documents.Create(ctx, d); err != nil {
			return err
		}

		dto = &UploadDTO{
			DocumentID: d.DocumentID,
			Type:       string(d.Type),
			Filename:   d.Filename,
			Size:       d.Size,
			URL:        d.URL,
		}

		uploaded, err := r.Documents.TypesByApplication(ctx, a.ID)
		if err != nil {
			return err
		}
		required := docDomain.RequiredFor(a.IDType)
		if docDomain.Complete(required, uploaded) {
			dto.AllDocumentsUploaded = true
			if a.Status == appDomain.StatusPendingReview {
				a.Status = appDomain.StatusDocumentReview
				if err := r.Applications.Save(ctx, a); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		// orphaned file cleanup is best-effort
		if derr := u.store.Delete(ctx, stored.StorageID); derr != nil {
			log.Printf("orphaned upload %s not removed: %v", stored.StorageID, derr)
		}
		return nil, err
	}
	return dto, nil
}

// Delete removes a document unless its application is finalized.
func (u *Usecase) Delete(ctx context.Context, documentID string) error {
	d, err := u.documents.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return docDomain.ErrNotFound
		}
		return err
	}

	a, err := u.applications.GetByID(ctx, d.ApplicationID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil && a.Status.Finalized() {
		return docDomain.ErrApplicationFinalized
	}

	if d.StorageID != "" {
		if derr := u.store.Delete(ctx, d.StorageID); derr != nil {
			log.Printf("stored file %s not removed: %v", d.StorageID, derr)
		}
	}
	return u.documents.Delete(ctx, documentID)
}

// List returns the documents of an application, newest first.
func (u *Usecase) List(ctx context.Context, applicationID string) ([]docDomain.Document, error) {
	a, err := u.applications.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	docs, err := u.documents.ListByApplication(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []docDomain.Document{}
	}
	return docs, nil
}

func ext(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[i:]
	}
	return ""
}
