package trivia

import (
	"math"
	"reflect"
	"testing"
)

func numberedQuestions(count int) []Question {
	questions := make([]Question, 0, count)
	for id := 1; id <= count; id++ {
		questions = append(questions, Question{
			ID:         id,
			Question:   "Question",
			Answer:     "Answer",
			Category:   (id % 3) + 1,
			Difficulty: 1,
		})
	}
	return questions
}

func TestPaginateMatchesClippedWindow(t *testing.T) {
	items := numberedQuestions(25)

	for page := 1; page <= 5; page++ {
		got := Paginate(page, items)
		if len(got) > PageSize {
			t.Fatalf("page %d has %d items, want at most %d", page, len(got), PageSize)
		}

		start := (page - 1) * PageSize
		end := start + PageSize
		if start > len(items) {
			start = len(items)
		}
		if end > len(items) {
			end = len(items)
		}
		want := items[start:end]
		if len(want) == 0 {
			want = []Question{}
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("page %d = %+v, want %+v", page, got, want)
		}
	}
}

func TestPaginateOutOfRangeIsEmpty(t *testing.T) {
	items := numberedQuestions(15)

	for _, page := range []int{0, -3, 3, 1000, 922337203685477582, math.MaxInt, math.MinInt} {
		got := Paginate(page, items)
		if got == nil || len(got) != 0 {
			t.Fatalf("page %d = %#v, want empty non-nil slice", page, got)
		}
	}
}

func TestPaginateSecondPageOfFifteen(t *testing.T) {
	got := Paginate(2, numberedQuestions(15))
	if len(got) != 5 {
		t.Fatalf("expected 5 questions on page 2, got %d", len(got))
	}
	if got[0].ID != 11 || got[4].ID != 15 {
		t.Fatalf("unexpected page window: first=%d last=%d", got[0].ID, got[4].ID)
	}
}

func TestPaginateDoesNotAliasInput(t *testing.T) {
	items := numberedQuestions(3)
	got := Paginate(1, items)
	got[0].Question = "changed"
	if items[0].Question == "changed" {
		t.Fatalf("page window shares memory with input")
	}
}

func TestCurrentCategoriesFollowsPage(t *testing.T) {
	page := Paginate(2, numberedQuestions(15))
	categories := CurrentCategories(page)
	if len(categories) != len(page) {
		t.Fatalf("current categories length = %d, want %d", len(categories), len(page))
	}
	for idx, question := range page {
		if categories[idx] != question.Category {
			t.Fatalf("category[%d] = %d, want %d", idx, categories[idx], question.Category)
		}
	}

	empty := CurrentCategories(nil)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil categories, got %#v", empty)
	}
}

func TestFirstUnseenSkipsSeenIDs(t *testing.T) {
	candidates := numberedQuestions(4)

	got, ok := FirstUnseen(candidates, []int{1, 2, 4})
	if !ok || got.ID != 3 {
		t.Fatalf("FirstUnseen = (%d, %t), want (3, true)", got.ID, ok)
	}

	if _, ok := FirstUnseen(candidates, []int{4, 3, 2, 1}); ok {
		t.Fatalf("expected exhausted pool")
	}
	if _, ok := FirstUnseen(nil, nil); ok {
		t.Fatalf("expected no question from empty pool")
	}
}

func TestFirstUnseenTerminatesWithinPoolSize(t *testing.T) {
	candidates := numberedQuestions(7)
	var seen []int

	for call := 0; call <= len(candidates); call++ {
		question, ok := FirstUnseen(candidates, seen)
		if !ok {
			if len(seen) != len(candidates) {
				t.Fatalf("pool exhausted after %d questions, want %d", len(seen), len(candidates))
			}
			return
		}
		for _, id := range seen {
			if id == question.ID {
				t.Fatalf("question %d returned twice", id)
			}
		}
		seen = append(seen, question.ID)
	}
	t.Fatalf("selection did not terminate within %d calls", len(candidates)+1)
}
