package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrFileTooLarge     = errors.New("file exceeds the maximum allowed size")
	ErrInvalidCategory  = errors.New("invalid document category")
)
