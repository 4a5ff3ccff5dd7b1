package domain

import "time"

// AccessRecord is a journaled last-access timestamp for a tracked unit
type AccessRecord struct {
	Path       string    // Absolute path of the tracked unit (primary key)
	LastAccess time.Time // Millisecond precision
}

// MarkStats summarizes a single mark-accessed call
type MarkStats struct {
	Inputs  int // Paths passed in
	Units   int // Distinct tracked units written
	Skipped int // Inputs outside the base directory or too shallow
}
