package document

import (
	"context"
	"io"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id string) (*Document, error)
	List(ctx context.Context, filter DocumentFilter) ([]Document, error)
	Delete(ctx context.Context, id string) error
	IncrementDownloadCount(ctx context.Context, id string) error
}

type DocumentService interface {
	Upload(ctx context.Context, req *UploadDocumentRequest, file io.Reader) (*DocumentResponse, error)
	Get(ctx context.Context, id string) (*DocumentResponse, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Document, error)
	List(ctx context.Context, filter DocumentFilter) ([]DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}
