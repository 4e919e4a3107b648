package document

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	appDomain "idcard-backend/internal/domain/application"
	docDomain "idcard-backend/internal/domain/document"
	"idcard-backend/internal/domain/uow"
	"idcard-backend/internal/infrastructure/storage"
	"idcard-backend/internal/testutil/applicationmock"
	"idcard-backend/internal/testutil/documentmock"
	"idcard-backend/internal/testutil/uowmock"
)

// mockStore implements storage.Store (only what these tests use).
type mockStore struct {
	PutFn    func(ctx context.Context, key, contentType string, data []byte) (*storage.StoredFile, error)
	DeleteFn func(ctx context.Context, storageID string) error
	deleted  []string
}

func (m *mockStore) Put(ctx context.Context, key, contentType string, data []byte) (*storage.StoredFile, error) {
	if m.PutFn != nil {
		return m.PutFn(ctx, key, contentType, data)
	}
	return &storage.StoredFile{URL: "/uploads/" + key, StorageID: key}, nil
}

func (m *mockStore) Delete(ctx context.Context, storageID string) error {
	m.deleted = append(m.deleted, storageID)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, storageID)
	}
	return nil
}

func renewalApplication() *appDomain.Application {
	return &appDomain.Application{
		ID:            7,
		ApplicationID: "IDC-1735186234567",
		IDType:        appDomain.TypeRenewal,
		Status:        appDomain.StatusPendingReview,
	}
}

func TestUpload_StoresDocument(t *testing.T) {
	a := renewalApplication()

	var created *docDomain.Document
	apps := &applicationmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*appDomain.Application, error) {
			return a, nil
		},
	}
	docs := &documentmock.Repo{
		CreateFn: func(ctx context.Context, d *docDomain.Document) error {
			created = d
			return nil
		},
		TypesByApplicationFn: func(ctx context.Context, applicationID uint64) ([]docDomain.Type, error) {
			return []docDomain.Type{docDomain.TypePhoto}, nil
		},
	}
	store := &mockStore{}
	repos := uow.Repos{Applications: apps, Documents: docs}
	uc := NewUsecase(apps, docs, store, uowmock.Passthrough(repos, a))

	dto, err := uc.Upload(context.Background(), UploadInput{
		ApplicationID: a.ApplicationID,
		Type:          docDomain.TypePhoto,
		Filename:      "portrait.jpg",
		MimeType:      "image/jpeg",
		Data:          []byte("fake-jpeg"),
	})
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if created == nil {
		t.Fatalf("document row not created")
	}
	if len(created.DocumentID) != 32 {
		t.Fatalf("DocumentID length: %d", len(created.DocumentID))
	}
	if !strings.HasPrefix(created.URL, "/uploads/"+a.ApplicationID+"/") {
		t.Fatalf("url=%s", created.URL)
	}
	if dto.AllDocumentsUploaded {
		t.Fatalf("required set is not complete yet")
	}
	if a.Status != appDomain.StatusPendingReview {
		t.Fatalf("status must not advance: %s", a.Status)
	}
}

func TestUpload_CompletingSetAdvancesStatus(t *testing.T) {
	a := renewalApplication()

	var saved bool
	apps := &applicationmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*appDomain.Application, error) {
			return a, nil
		},
		SaveFn: func(ctx context.Context, got *appDomain.Application) error {
			saved = true
			return nil
		},
	}
	docs := &documentmock.Repo{
		TypesByApplicationFn: func(ctx context.Context, applicationID uint64) ([]docDomain.Type, error) {
			// renewal requires photo, birth certificate, proof of address, previous id
			return []docDomain.Type{
				docDomain.TypePhoto, docDomain.TypeBirthCert,
				docDomain.TypeProofOfAddress, docDomain.TypePreviousID,
			}, nil
		},
	}
	repos := uow.Repos{Applications: apps, Documents: docs}
	uc := NewUsecase(apps, docs, &mockStore{}, uowmock.Passthrough(repos, a))

	dto, err := uc.Upload(context.Background(), UploadInput{
		ApplicationID: a.ApplicationID,
		Type:          docDomain.TypePreviousID,
		Filename:      "old-card.pdf",
		MimeType:      "application/pdf",
		Data:          []byte("pdf"),
	})
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if !dto.AllDocumentsUploaded {
		t.Fatalf("required set should be complete")
	}
	if a.Status != appDomain.StatusDocumentReview {
		t.Fatalf("status=%s", a.Status)
	}
	if !saved {
		t.Fatalf("advanced application not saved")
	}
}

func TestUpload_RejectsUnknownType(t *testing.T) {
	uc := NewUsecase(&applicationmock.Repo{}, &documentmock.Repo{}, &mockStore{}, uowmock.New())
	_, err := uc.Upload(context.Background(), UploadInput{
		ApplicationID: "IDC-1", Type: "SELFIE", Filename: "x.jpg", MimeType: "image/jpeg",
	})
	if !errors.Is(err, docDomain.ErrInvalidType) {
		t.Fatalf("want ErrInvalidType, got %v", err)
	}
}

func TestUpload_RejectsFinalizedApplication(t *testing.T) {
	a := renewalApplication()
	a.Status = appDomain.StatusApproved

	apps := &applicationmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*appDomain.Application, error) {
			return a, nil
		},
	}
	uc := NewUsecase(apps, &documentmock.Repo{}, &mockStore{}, uowmock.New())

	_, err := uc.Upload(context.Background(), UploadInput{
		ApplicationID: a.ApplicationID, Type: docDomain.TypePhoto, Filename: "x.jpg", MimeType: "image/jpeg",
	})
	if !errors.Is(err, docDomain.ErrApplicationFinalized) {
		t.Fatalf("want ErrApplicationFinalized, got %v", err)
	}
}

func TestUpload_CleansUpFileWhenTxFails(t *testing.T) {
	a := renewalApplication()
	boom := errors.New("insert failed")

	apps := &applicationmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*appDomain.Application, error) {
			return a, nil
		},
	}
	docs := &documentmock.Repo{
		CreateFn: func(ctx context.Context, d *docDomain.Document) error { return boom },
	}
	store := &mockStore{}
	repos := uow.Repos{Applications: apps, Documents: docs}
	uc := NewUsecase(apps, docs, store, uowmock.Passthrough(repos, a))

	_, err := uc.Upload(context.Background(), UploadInput{
		ApplicationID: a.ApplicationID, Type: docDomain.TypePhoto, Filename: "x.jpg", MimeType: "image/jpeg",
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want insert error, got %v", err)
	}
	if len(store.deleted) != 1 {
		t.Fatalf("orphaned file not cleaned up: %v", store.deleted)
	}
}

func TestDelete_RefusesFinalizedApplication(t *testing.T) {
	a := renewalApplication()
	a.Status = appDomain.StatusCompleted

	docs := &documentmock.Repo{
		GetByDocumentIDFn: func(ctx context.Context, id string) (*docDomain.Document, error) {
			return &docDomain.Document{DocumentID: id, ApplicationID: a.ID, StorageID: "k"}, nil
		},
		DeleteFn: func(ctx context.Context, id string) error {
			t.Fatalf("Delete must not run on a finalized application")
			return nil
		},
	}
	apps := &applicationmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*appDomain.Application, error) {
			return a, nil
		},
	}
	uc := NewUsecase(apps, docs, &mockStore{}, uowmock.New())

	err := uc.Delete(context.Background(), "d-1")
	if !errors.Is(err, docDomain.ErrApplicationFinalized) {
		t.Fatalf("want ErrApplicationFinalized, got %v", err)
	}
}

func TestDelete_RemovesRowAndFile(t *testing.T) {
	a := renewalApplication()

	var removed string
	docs := &documentmock.Repo{
		GetByDocumentIDFn: func(ctx context.Context, id string) (*docDomain.Document, error) {
			return &docDomain.Document{DocumentID: id, ApplicationID: a.ID, StorageID: "IDC-1/photo.jpg"}, nil
		},
		DeleteFn: func(ctx context.Context, id string) error {
			removed = id
			return nil
		},
	}
	apps := &applicationmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*appDomain.Application, error) {
			return a, nil
		},
	}
	store := &mockStore{}
	uc := NewUsecase(apps, docs, store, uowmock.New())

	if err := uc.Delete(context.Background(), "d-1"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if removed != "d-1" {
		t.Fatalf("row not deleted: %q", removed)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "IDC-1/photo.jpg" {
		t.Fatalf("file not deleted: %v", store.deleted)
	}
}

func TestDelete_UnknownDocument(t *testing.T) {
	docs := &documentmock.Repo{
		GetByDocumentIDFn: func(ctx context.Context, id string) (*docDomain.Document, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(&applicationmock.Repo{}, docs, &mockStore{}, uowmock.New())
	if err := uc.Delete(context.Background(), "d-404"); !errors.Is(err, docDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
