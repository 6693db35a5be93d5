package services

import "errors"

// Service-level errors. Handlers map these to HTTP statuses with errors.Is.
var (
	ErrValidation           = errors.New("validation failed")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrTerrainNotFound      = errors.New("terrain record not found")
	ErrAreaAlreadySet       = errors.New("document already has an area")
	ErrComparableNotFound   = errors.New("comparable not found")
	ErrConstructionNotFound = errors.New("construction not found")
)
