package loader

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jeopardize/board-backend/internal/board"
	"github.com/jeopardize/board-backend/internal/sample"
	"github.com/jeopardize/board-backend/internal/trivia"
)

var ErrRemoteUnavailable = errors.New("trivia provider unavailable")
var ErrMalformedData = errors.New("malformed provider data")

// categoryPoolSize is how many categories we ask the provider for before
// sampling down to the board width.
const categoryPoolSize = 100

// Loader assembles a fully populated board from the remote provider.
// A load either succeeds completely or fails; no partial board is ever
// returned.
type Loader struct {
	provider trivia.Provider
	log      *zap.Logger
}

func New(p trivia.Provider, log *zap.Logger) *Loader {
	return &Loader{provider: p, log: log}
}

// LoadCategoryIDs fetches the category pool and samples it down to the
// board's category count.
func (l *Loader) LoadCategoryIDs(ctx context.Context) ([]int, error) {
	refs, err := l.provider.ListCategories(ctx, categoryPoolSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	if len(refs) < board.NumCategories {
		return nil, fmt.Errorf("%w: provider returned %d categories, need %d",
			ErrMalformedData, len(refs), board.NumCategories)
	}

	picked, err := sample.Pick(refs, board.NumCategories)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(picked))
	for i, ref := range picked {
		ids[i] = ref.ID
	}
	return ids, nil
}

// LoadCategoryDetail fetches one category and samples its clues down to the
// board's row count. Every returned clue starts Hidden. Categories with too
// few clues fail with ErrMalformedData rather than being padded.
func (l *Loader) LoadCategoryDetail(ctx context.Context, id int) (board.Category, error) {
	detail, err := l.provider.CategoryDetail(ctx, id)
	if err != nil {
		return board.Category{}, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	if len(detail.Clues) < board.CluesPerCategory {
		return board.Category{}, fmt.Errorf("%w: category %d has %d clues, need %d",
			ErrMalformedData, id, len(detail.Clues), board.CluesPerCategory)
	}

	picked, err := sample.Pick(detail.Clues, board.CluesPerCategory)
	if err != nil {
		return board.Category{}, err
	}

	clues := make([]board.Clue, len(picked))
	for i, c := range picked {
		clues[i] = board.Clue{Question: c.Question, Answer: c.Answer, Showing: board.Hidden}
	}
	return board.Category{Title: detail.Title, Clues: clues}, nil
}

// LoadCategories fetches every category's detail concurrently. Results are
// slotted by index so the output keeps the order of ids no matter which
// fetch finishes first. Any failure aborts the whole batch.
func (l *Loader) LoadCategories(ctx context.Context, ids []int) ([]board.Category, error) {
	categories := make([]board.Category, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			cat, err := l.LoadCategoryDetail(ctx, id)
			if err != nil {
				return err
			}
			categories[i] = cat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return categories, nil
}

// LoadBoard samples the category ids and assembles a full board from their
// details. Either the whole board loads or the caller gets an error.
func (l *Loader) LoadBoard(ctx context.Context) (*board.Board, error) {
	ids, err := l.LoadCategoryIDs(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := l.LoadCategories(ctx, ids)
	if err != nil {
		return nil, err
	}

	l.log.Info("board loaded", zap.Ints("category_ids", ids))
	return &board.Board{Categories: categories}, nil
}
