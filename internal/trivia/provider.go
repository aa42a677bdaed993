package trivia

import "context"

// CategoryRef is one entry of the provider's category listing.
type CategoryRef struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	CluesCount int    `json:"clues_count"`
}

type ClueData struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CategoryDetail is the provider's full record for one category.
type CategoryDetail struct {
	ID    int        `json:"id"`
	Title string     `json:"title"`
	Clues []ClueData `json:"clues"`
}

// Provider is the remote trivia service boundary. Transport, auth and
// pagination are the implementation's concern; callers depend only on
// these two operations.
type Provider interface {
	ListCategories(ctx context.Context, limit int) ([]CategoryRef, error)
	CategoryDetail(ctx context.Context, id int) (CategoryDetail, error)
}
