// Package memory keeps the catalog in process memory. It backs tests and
// throwaway local runs; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"trivia-app/internal/trivia"
)

type Store struct {
	questions  sync.Map
	categories sync.Map

	categoryMu     sync.Mutex
	nextQuestionID atomic.Int64
	nextCategoryID atomic.Int64
}

func NewStore() *Store {
	return &Store{}
}

// AddCategories stores categories with caller-chosen ids, the way fixture
// data is loaded.
func (s *Store) AddCategories(categories ...trivia.Category) {
	s.categoryMu.Lock()
	defer s.categoryMu.Unlock()

	for _, category := range categories {
		s.categories.Store(category.ID, category)
		bumpTo(&s.nextCategoryID, int64(category.ID))
	}
}

// AddQuestions stores questions with caller-chosen ids.
func (s *Store) AddQuestions(questions ...trivia.Question) {
	for _, question := range questions {
		s.questions.Store(question.ID, question)
		bumpTo(&s.nextQuestionID, int64(question.ID))
	}
}

func (s *Store) ListCategories(_ context.Context) ([]trivia.Category, error) {
	categories := make([]trivia.Category, 0)
	s.categories.Range(func(_, value any) bool {
		categories = append(categories, value.(trivia.Category))
		return true
	})
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *Store) GetCategory(_ context.Context, id int) (trivia.Category, error) {
	stored, ok := s.categories.Load(id)
	if !ok {
		return trivia.Category{}, trivia.ErrCategoryNotFound
	}
	return stored.(trivia.Category), nil
}

func (s *Store) EnsureCategory(ctx context.Context, label string) (trivia.Category, error) {
	s.categoryMu.Lock()
	defer s.categoryMu.Unlock()

	categories, _ := s.ListCategories(ctx)
	for _, category := range categories {
		if category.Type == label {
			return category, nil
		}
	}

	category := trivia.Category{
		ID:   int(s.nextCategoryID.Add(1)),
		Type: label,
	}
	s.categories.Store(category.ID, category)
	return category, nil
}

func (s *Store) ListQuestions(_ context.Context, filter trivia.QuestionFilter) ([]trivia.Question, error) {
	excluded := make(map[int]struct{}, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = struct{}{}
	}
	term := strings.ToLower(filter.SearchTerm)

	questions := make([]trivia.Question, 0)
	s.questions.Range(func(_, value any) bool {
		question := value.(trivia.Question)
		if filter.CategoryID != 0 && question.Category != filter.CategoryID {
			return true
		}
		if term != "" && !strings.Contains(strings.ToLower(question.Question), term) {
			return true
		}
		if _, ok := excluded[question.ID]; ok {
			return true
		}
		questions = append(questions, question)
		return true
	})

	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}

func (s *Store) GetQuestion(_ context.Context, id int) (trivia.Question, error) {
	stored, ok := s.questions.Load(id)
	if !ok {
		return trivia.Question{}, trivia.ErrQuestionNotFound
	}
	return stored.(trivia.Question), nil
}

func (s *Store) CreateQuestion(_ context.Context, question trivia.NewQuestion) (int, error) {
	id := int(s.nextQuestionID.Add(1))
	s.questions.Store(id, trivia.Question{
		ID:         id,
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	})
	return id, nil
}

func (s *Store) DeleteQuestion(_ context.Context, id int) error {
	if _, loaded := s.questions.LoadAndDelete(id); !loaded {
		return trivia.ErrQuestionNotFound
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

// bumpTo raises counter to at least floor so generated ids never collide
// with fixture ids.
func bumpTo(counter *atomic.Int64, floor int64) {
	for {
		current := counter.Load()
		if current >= floor || counter.CompareAndSwap(current, floor) {
			return
		}
	}
}
