package trivia

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrQuestionNotFound = fmt.Errorf("question %w", ErrNotFound)
	ErrUnprocessable    = errors.New("unprocessable")
)

type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion carries the caller-supplied fields of an insert. Nothing is
// validated; zero values are stored as-is.
type NewQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionFilter narrows ListQuestions. SearchTerm and CategoryID may be
// combined by stores but the service only ever sets one of them per request.
type QuestionFilter struct {
	// SearchTerm matches question text case-insensitively as a substring.
	SearchTerm string
	// CategoryID 0 matches every category.
	CategoryID int
	ExcludeIDs []int
}

// CatalogRepository is the persistence boundary. Every list method returns
// rows ordered by id ascending.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int) (Category, error)
	EnsureCategory(ctx context.Context, label string) (Category, error)
	ListQuestions(ctx context.Context, filter QuestionFilter) ([]Question, error)
	GetQuestion(ctx context.Context, id int) (Question, error)
	CreateQuestion(ctx context.Context, question NewQuestion) (int, error)
	DeleteQuestion(ctx context.Context, id int) error
}
