package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/leis"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ leis.EntryService = (*EntryService)(nil)

const entryColumns = "id, source_path, content_hash, title, category, summary, body, document_link, imported_at"

// EntryService implements leis.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// hashContent computes the xxHash of the record text fields as a hex string.
func hashContent(rec *leis.LegalRecord) string {
	d := xxhash.New()
	_, _ = d.WriteString(rec.Title)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(rec.Summary)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(rec.Body)
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, d.Sum64())
	return hex.EncodeToString(b)
}

// CreateEntry creates a new entry.
func (s *EntryService) CreateEntry(ctx context.Context, entry *leis.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.ImportedAt = time.Now().UTC().Truncate(time.Second)
	entry.ContentHash = hashContent(&entry.LegalRecord)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SourcePath, entry.ContentHash, entry.Title, entry.Category,
		entry.Summary, entry.Body, nullString(entry.DocumentLink), entry.ImportedAt.Format(time.RFC3339))

	return err
}

// FindEntryByID retrieves an entry by ID.
func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*leis.Entry, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM entries WHERE id = ?", id)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, leis.Errorf(leis.ENOTFOUND, "entry not found")
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindEntries retrieves entries matching the filter, ordered by category
// then title.
func (s *EntryService) FindEntries(ctx context.Context, filter leis.EntryFilter) ([]*leis.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + entryColumns + " FROM entries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}

	query.WriteString(" ORDER BY category ASC, title ASC, id ASC")

	pageEntries(&query, &args, filter)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*leis.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// FindCategories returns every stored category with its entry count,
// ordered by category.
func (s *EntryService) FindCategories(ctx context.Context) ([]leis.CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*) FROM entries
		GROUP BY category
		ORDER BY category ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []leis.CategoryCount
	for rows.Next() {
		var c leis.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// DeleteEntry permanently removes an entry.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return leis.Errorf(leis.ENOTFOUND, "entry not found")
	}
	return nil
}

// DeleteEntriesByCategory removes all entries of a category.
func (s *EntryService) DeleteEntriesByCategory(ctx context.Context, category string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE category = ?", category)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*leis.Entry, error) {
	var entry leis.Entry
	var link sql.NullString
	var importedAt string

	err := sc.Scan(&entry.ID, &entry.SourcePath, &entry.ContentHash, &entry.Title, &entry.Category,
		&entry.Summary, &entry.Body, &link, &importedAt)
	if err != nil {
		return nil, err
	}

	if link.Valid {
		entry.DocumentLink = &link.String
	}
	entry.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("entry %s: bad imported_at %q: %w", entry.ID, importedAt, err)
	}
	return &entry, nil
}

// pageEntries appends the LIMIT and OFFSET of filter. SQLite accepts
// OFFSET only after a LIMIT, where -1 means no limit.
func pageEntries(query *strings.Builder, args *[]any, filter leis.EntryFilter) {
	if filter.Limit <= 0 && filter.Offset <= 0 {
		return
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = -1
	}
	query.WriteString(" LIMIT ?")
	*args = append(*args, limit)
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, filter.Offset)
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
