package document

import (
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type UploadDocumentRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	DocumentType string `json:"documentType"`
	EmployeeID   string `json:"employeeId"`
	UploadedBy   string `json:"uploadedBy"`

	FileName    string `json:"-"`
	FileSize    int64  `json:"-"`
	ContentType string `json:"-"`
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	valid := false
	for _, c := range ValidCategories {
		if r.Category == c {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is not a valid category"})
	}
	if r.DocumentType == "Employee Specific" && validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required for employee specific documents"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DocumentFilter struct {
	Category   string
	EmployeeID string
}

type DocumentResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category"`
	DocumentType  string `json:"documentType"`
	EmployeeID    string `json:"employeeId,omitempty"`
	EmployeeName  string `json:"employeeName,omitempty"`
	FileName      string `json:"fileName"`
	FileSize      int64  `json:"fileSize"`
	FileType      string `json:"fileType"`
	FileURL       string `json:"fileUrl"`
	UploadedBy    string `json:"uploadedBy"`
	DownloadCount int64  `json:"downloadCount"`
	CreatedAt     string `json:"createdAt"`
}
