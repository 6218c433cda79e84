package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/document"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type documentRepository struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `
	d.id, d.title, d.description, d.category, d.document_type, d.employee_id,
	d.file_name, d.file_size, d.file_type, d.file_path, d.uploaded_by,
	d.download_count, d.is_active, d.created_at, d.updated_at
`

func scanDocument(row pgx.Row, d *document.Document, extra ...interface{}) error {
	var description, employeeID *string

	dest := []interface{}{
		&d.ID, &d.Title, &description, &d.Category, &d.DocumentType, &employeeID,
		&d.FileName, &d.FileSize, &d.FileType, &d.FilePath, &d.UploadedBy,
		&d.DownloadCount, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}
	if description != nil {
		d.Description = *description
	}
	if employeeID != nil {
		d.EmployeeID = *employeeID
	}
	return nil
}

func (r *documentRepository) Create(ctx context.Context, d *document.Document) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (
			id, title, description, category, document_type, employee_id,
			file_name, file_size, file_type, file_path, uploaded_by, is_active,
			created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		d.Title, nullIfEmpty(d.Description), d.Category, d.DocumentType, nullIfEmpty(d.EmployeeID),
		d.FileName, d.FileSize, d.FileType, d.FilePath, d.UploadedBy, d.IsActive,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM documents d WHERE d.id = $1 AND d.is_active = true`

	var d document.Document
	if err := scanDocument(q.QueryRow(ctx, query, id), &d); err != nil {
		if err == pgx.ErrNoRows {
			return nil, document.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &d, nil
}

func (r *documentRepository) List(ctx context.Context, filter document.DocumentFilter) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"d.is_active = true"}
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("d.category = $%d", argIdx))
		args = append(args, filter.Category)
		argIdx++
	}
	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("d.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}

	query := `
		SELECT ` + documentColumns + `, e.full_name
		FROM documents d
		LEFT JOIN employees e ON e.employee_id = d.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY d.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []document.Document
	for rows.Next() {
		var d document.Document
		var employeeName *string
		if err := scanDocument(rows, &d, &employeeName); err != nil {
			return nil, err
		}
		if employeeName != nil {
			d.EmployeeName = *employeeName
		}
		documents = append(documents, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return documents, nil
}

// Delete soft-deletes so download history stays intact.
func (r *documentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE documents SET is_active = false, updated_at = NOW() WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepository) IncrementDownloadCount(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `UPDATE documents SET download_count = download_count + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to increment download count: %w", err)
	}
	return nil
}
