package models

import "github.com/pkg/errors"

// Sentinel errors shared by handlers and controllers. Handlers wrap them,
// controllers translate them into status codes with errors.Is.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("already exists")
)
