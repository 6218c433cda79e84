package document

import "time"

var ValidCategories = []string{
	"Company Policy", "Offer Letter", "Appointment Letter", "NDA",
	"Compliance", "Contract", "Certificate", "Other",
}

type Document struct {
	ID            string
	Title         string
	Description   string
	Category      string
	DocumentType  string // "General" or "Employee Specific"
	EmployeeID    string
	FileName      string
	FileSize      int64
	FileType      string
	FilePath      string
	UploadedBy    string
	DownloadCount int64
	IsActive      bool

	// Joined fields.
	EmployeeName string

	CreatedAt time.Time
	UpdatedAt time.Time
}
