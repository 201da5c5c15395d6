package leis

import (
	"context"
	"time"
)

// Entry is a LegalRecord persisted in a store.
type Entry struct {
	ID          string    `json:"id"`
	SourcePath  string    `json:"sourcePath"`
	ContentHash string    `json:"contentHash"`
	ImportedAt  time.Time `json:"importedAt"`

	LegalRecord
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.SourcePath == "" {
		return Errorf(EINVALID, "entry source path required")
	}
	return e.LegalRecord.Validate()
}

// EntryService represents a service for managing entries.
type EntryService interface {
	// CreateEntry creates a new entry.
	CreateEntry(ctx context.Context, entry *Entry) error

	// FindEntryByID retrieves an entry by ID.
	// Returns ENOTFOUND if the entry does not exist.
	FindEntryByID(ctx context.Context, id string) (*Entry, error)

	// FindEntries retrieves entries matching the filter.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// FindCategories returns every category with its entry count.
	FindCategories(ctx context.Context) ([]CategoryCount, error)

	// DeleteEntry permanently removes an entry.
	// Returns ENOTFOUND if the entry does not exist.
	DeleteEntry(ctx context.Context, id string) error

	// DeleteEntriesByCategory removes all entries of a category.
	DeleteEntriesByCategory(ctx context.Context, category string) error
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	ID         *string `json:"id"`
	Category   *string `json:"category"`
	SourcePath *string `json:"sourcePath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CategoryCount is the number of entries stored for a category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
