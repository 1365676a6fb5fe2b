package model

import "errors"

// Common errors used across the application
var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game code already exists")
)
