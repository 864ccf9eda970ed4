package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Member errors
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrSerialInUse    = errors.New("serial number already exists")
	ErrNoPhoto        = errors.New("no photo to delete")
)

// Storage errors
var (
	ErrObjectExists = errors.New("object already exists")
	ErrInvalidURL   = errors.New("url does not match bucket path")
)
