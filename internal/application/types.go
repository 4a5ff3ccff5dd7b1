package application

import "accesstrack/internal/domain"

// Re-export domain types for use by adapters
type (
	AccessRecord = domain.AccessRecord
	MarkStats    = domain.MarkStats
)
