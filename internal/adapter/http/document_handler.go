package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	docDomain "idcard-backend/internal/domain/document"
	"idcard-backend/internal/usecase/document"
)

type DocumentHandler struct {
	uc           *document.Usecase
	maxBytes     int64
	allowedMimes map[string]bool
}

func NewDocumentHandler(uc *document.Usecase, maxBytes int64, allowedMimes []string) *DocumentHandler {
	allowed := make(map[string]bool, len(allowedMimes))
	for _, m := range allowedMimes {
		allowed[strings.ToLower(strings.TrimSpace(m))] = true
	}
	return &DocumentHandler{uc: uc, maxBytes: maxBytes, allowedMimes: allowed}
}

// Upload accepts one multipart file under the "file" form field.
func (h *DocumentHandler) Upload(c echo.Context) error {
	applicationID := c.Param("applicationId")
	docType := strings.ToUpper(c.Param("documentType"))

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file form field"})
	}
	if fh.Size > h.maxBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file exceeds the upload size limit"})
	}
	mime := strings.ToLower(fh.Header.Get("Content-Type"))
	if !h.allowedMimes[mime] {
		return c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{Error: "file type not allowed"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, h.maxBytes+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}
	if int64(len(data)) > h.maxBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file exceeds the upload size limit"})
	}

	dto, err := h.uc.Upload(c.Request().Context(), document.UploadInput{
		ApplicationID: applicationID,
		Type:          docDomain.Type(docType),
		Filename:      fh.Filename,
		MimeType:      mime,
		Data:          data,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DocumentHandler) ListByApplication(c echo.Context) error {
	docs, err := h.uc.List(c.Request().Context(), c.Param("applicationId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"documents": docs})
}

func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("documentId")); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
