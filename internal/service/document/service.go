package document

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/hrmslite/hrms-backend-go/internal/domain/document"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/storage"
)

type DocumentServiceImpl struct {
	document.DocumentRepository
	employee.EmployeeRepository
	storage storage.FileStorage
}

func NewDocumentService(
	documentRepo document.DocumentRepository,
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
) *DocumentServiceImpl {
	return &DocumentServiceImpl{
		DocumentRepository: documentRepo,
		EmployeeRepository: employeeRepo,
		storage:            fileStorage,
	}
}

func (s *DocumentServiceImpl) toResponse(ctx context.Context, d *document.Document) *document.DocumentResponse {
	url, err := s.storage.GetURL(ctx, d.FilePath)
	if err != nil {
		url = ""
	}
	return &document.DocumentResponse{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		Category:      d.Category,
		DocumentType:  d.DocumentType,
		EmployeeID:    d.EmployeeID,
		EmployeeName:  d.EmployeeName,
		FileName:      d.FileName,
		FileSize:      d.FileSize,
		FileType:      d.FileType,
		FileURL:       url,
		UploadedBy:    d.UploadedBy,
		DownloadCount: d.DownloadCount,
		CreatedAt:     d.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func (s *DocumentServiceImpl) Upload(ctx context.Context, req *document.UploadDocumentRequest, file io.Reader) (*document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.EmployeeID != "" {
		if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
			return nil, err
		}
	}

	documentType := req.DocumentType
	if documentType == "" {
		documentType = "General"
		if req.EmployeeID != "" {
			documentType = "Employee Specific"
		}
	}

	path := filepath.Join("documents", fmt.Sprintf("%s_%s", uuid.NewString(), req.FileName))
	storedPath, err := s.storage.Upload(ctx, file, path, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	doc := &document.Document{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		DocumentType: documentType,
		EmployeeID:   req.EmployeeID,
		FileName:     req.FileName,
		FileSize:     req.FileSize,
		FileType:     req.ContentType,
		FilePath:     storedPath,
		UploadedBy:   req.UploadedBy,
		IsActive:     true,
	}
	if err := s.DocumentRepository.Create(ctx, doc); err != nil {
		// The row failed, so the stored file is orphaned. Best effort cleanup.
		_ = s.storage.Delete(ctx, storedPath)
		return nil, err
	}

	return s.toResponse(ctx, doc), nil
}

func (s *DocumentServiceImpl) Get(ctx context.Context, id string) (*document.DocumentResponse, error) {
	doc, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, doc), nil
}

func (s *DocumentServiceImpl) Download(ctx context.Context, id string) (io.ReadCloser, *document.Document, error) {
	doc, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.storage.Download(ctx, doc.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read stored file: %w", err)
	}

	if err := s.DocumentRepository.IncrementDownloadCount(ctx, id); err != nil {
		reader.Close()
		return nil, nil, err
	}

	return reader, doc, nil
}

func (s *DocumentServiceImpl) List(ctx context.Context, filter document.DocumentFilter) ([]document.DocumentResponse, error) {
	docs, err := s.DocumentRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]document.DocumentResponse, 0, len(docs))
	for i := range docs {
		responses = append(responses, *s.toResponse(ctx, &docs[i]))
	}
	return responses, nil
}

func (s *DocumentServiceImpl) Delete(ctx context.Context, id string) error {
	doc, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.DocumentRepository.Delete(ctx, id); err != nil {
		return err
	}

	// Soft delete keeps the row; the file itself is removed.
	if err := s.storage.Delete(ctx, doc.FilePath); err != nil {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	return nil
}
