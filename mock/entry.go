package mock

import (
	"context"

	"github.com/fwojciec/leis"
)

var _ leis.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of leis.EntryService.
type EntryService struct {
	CreateEntryFn             func(ctx context.Context, entry *leis.Entry) error
	FindEntryByIDFn           func(ctx context.Context, id string) (*leis.Entry, error)
	FindEntriesFn             func(ctx context.Context, filter leis.EntryFilter) ([]*leis.Entry, error)
	FindCategoriesFn          func(ctx context.Context) ([]leis.CategoryCount, error)
	DeleteEntryFn             func(ctx context.Context, id string) error
	DeleteEntriesByCategoryFn func(ctx context.Context, category string) error
}

func (s *EntryService) CreateEntry(ctx context.Context, entry *leis.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*leis.Entry, error) {
	return s.FindEntryByIDFn(ctx, id)
}

func (s *EntryService) FindEntries(ctx context.Context, filter leis.EntryFilter) ([]*leis.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) FindCategories(ctx context.Context) ([]leis.CategoryCount, error) {
	return s.FindCategoriesFn(ctx)
}

func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}

func (s *EntryService) DeleteEntriesByCategory(ctx context.Context, category string) error {
	return s.DeleteEntriesByCategoryFn(ctx, category)
}
