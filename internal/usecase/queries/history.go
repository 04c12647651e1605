package queries

import (
	"context"

	"hotel-reservation/internal/pkg/errs"
)

const (
	DefaultHistoryPageSize = 20
	MaxHistoryPageSize     = 200
)

var ErrInvalidPage = errs.New("page must be >= 0 and size between 1 and 200")

type HistoryQueries interface {
	List(ctx context.Context, page, size int) (*HistoryPage, error)
	Statistics(ctx context.Context) ([]HistoryStatistic, error)
}

type HistoryReadStore interface {
	FindPage(ctx context.Context, limit, offset int32) ([]*HistoryView, error)
	Count(ctx context.Context) (int64, error)
	FindStatistics(ctx context.Context) ([]HistoryStatistic, error)
}

type historyQueriesImpl struct {
	store HistoryReadStore
}

func NewHistoryQueries(store HistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{store: store}
}

// List pages newest-archived first. size 0 selects the default page size.
func (q *historyQueriesImpl) List(ctx context.Context, page, size int) (*HistoryPage, error) {
	if size == 0 {
		size = DefaultHistoryPageSize
	}
	if page < 0 || size < 1 || size > MaxHistoryPageSize {
		return nil, errs.Mark(ErrInvalidPage, errs.ErrInvalidArgument)
	}
	offset := int64(page) * int64(size)
	if offset > int64(^uint32(0)>>1) {
		return nil, errs.Mark(ErrInvalidPage, errs.ErrInvalidArgument)
	}

	items, err := q.store.FindPage(ctx, int32(size), int32(offset)) // #nosec G115 -- bounded above
	if err != nil {
		return nil, err
	}
	total, err := q.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &HistoryPage{Items: items, Total: total, Page: page, Size: size}, nil
}

func (q *historyQueriesImpl) Statistics(ctx context.Context) ([]HistoryStatistic, error) {
	return q.store.FindStatistics(ctx)
}
