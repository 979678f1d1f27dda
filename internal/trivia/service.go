package trivia

import (
	"context"
	"fmt"
)

// QuestionPage is one page of a filtered, id-ordered question listing.
type QuestionPage struct {
	Questions       []Question
	CurrentCategory []int
	TotalQuestions  int
}

type Service struct {
	catalog CatalogRepository
}

func NewService(catalog CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.catalog.ListCategories(ctx)
}

// ListQuestions pages through every question. An empty page is reported as
// ErrNotFound because the listing view has nothing to render.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	result, err := s.pageOf(ctx, QuestionFilter{}, page)
	if err != nil {
		return QuestionPage{}, err
	}
	if len(result.Questions) == 0 {
		return QuestionPage{}, ErrNotFound
	}
	return result, nil
}

func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (QuestionPage, error) {
	return s.pageOf(ctx, QuestionFilter{SearchTerm: term}, page)
}

func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int, page int) (QuestionPage, error) {
	if _, err := s.catalog.GetCategory(ctx, categoryID); err != nil {
		return QuestionPage{}, err
	}
	return s.pageOf(ctx, QuestionFilter{CategoryID: categoryID}, page)
}

func (s *Service) CreateQuestion(ctx context.Context, question NewQuestion) (int, error) {
	return s.catalog.CreateQuestion(ctx, question)
}

// DeleteQuestion folds every failure, a missing row included, into
// ErrUnprocessable. The cause stays reachable through errors.Is.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := s.catalog.GetQuestion(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrUnprocessable, err)
	}
	if err := s.catalog.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrUnprocessable, err)
	}
	return nil
}

// NextQuestion returns the lowest-id question of the category that is not in
// previous. Category 0 draws from every question. ok is false once the pool
// is exhausted.
func (s *Service) NextQuestion(ctx context.Context, categoryID int, previous []int) (Question, bool, error) {
	candidates, err := s.catalog.ListQuestions(ctx, QuestionFilter{
		CategoryID: categoryID,
		ExcludeIDs: previous,
	})
	if err != nil {
		return Question{}, false, err
	}

	question, ok := FirstUnseen(candidates, previous)
	return question, ok, nil
}

func (s *Service) pageOf(ctx context.Context, filter QuestionFilter, page int) (QuestionPage, error) {
	questions, err := s.catalog.ListQuestions(ctx, filter)
	if err != nil {
		return QuestionPage{}, err
	}

	window := Paginate(page, questions)
	return QuestionPage{
		Questions:       window,
		CurrentCategory: CurrentCategories(window),
		TotalQuestions:  len(questions),
	}, nil
}
