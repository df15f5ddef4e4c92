package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotEligible    = errors.New("identifier is not eligible to play")
	ErrAlreadyPlayed  = errors.New("player has already played")
	ErrPlayerExists   = errors.New("identifier is already registered")

	// Prize errors
	ErrNoPrizeAvailable = errors.New("no prize available")
	ErrCatalogNotLoaded = errors.New("prize catalog not loaded")
)
