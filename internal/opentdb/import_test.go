package opentdb

import (
	"context"
	"errors"
	"testing"

	"trivia-app/internal/trivia"
	"trivia-app/internal/trivia/memory"
)

func TestDifficulty(t *testing.T) {
	cases := map[string]int{
		"easy":    1,
		"Medium":  2,
		" hard ":  3,
		"extreme": 0,
		"":        0,
	}
	for name, want := range cases {
		if got := Difficulty(name); got != want {
			t.Fatalf("Difficulty(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestImportUnescapesAndReusesCategories(t *testing.T) {
	store := memory.NewStore()
	store.AddCategories(trivia.Category{ID: 1, Type: "Science"})
	ctx := context.Background()

	raw := []RawQuestion{
		{Category: "Science", Difficulty: "hard", Question: "What does &quot;DNA&quot; stand for?", CorrectAnswer: "Deoxyribonucleic acid"},
		{Category: "Entertainment: Books", Difficulty: "easy", Question: "Who wrote &#039;Dune&#039;?", CorrectAnswer: "Frank Herbert"},
		{Category: "Entertainment: Books", Difficulty: "medium", Question: "Q &amp; A", CorrectAnswer: "R&amp;D"},
	}

	ids, err := Import(ctx, store, raw)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %v", ids)
	}

	first, err := store.GetQuestion(ctx, ids[0])
	if err != nil {
		t.Fatalf("GetQuestion failed: %v", err)
	}
	if first.Question != `What does "DNA" stand for?` || first.Category != 1 || first.Difficulty != 3 {
		t.Fatalf("unexpected imported question: %+v", first)
	}

	second, _ := store.GetQuestion(ctx, ids[1])
	third, _ := store.GetQuestion(ctx, ids[2])
	if second.Question != "Who wrote 'Dune'?" || third.Answer != "R&D" {
		t.Fatalf("entities not unescaped: %+v / %+v", second, third)
	}
	if second.Category != third.Category || second.Category == 1 {
		t.Fatalf("expected one new shared category, got %d and %d", second.Category, third.Category)
	}

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != 2 || categories[1].Type != "Entertainment: Books" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

type failingCatalog struct {
	trivia.CatalogRepository
	err error
}

func (f failingCatalog) EnsureCategory(context.Context, string) (trivia.Category, error) {
	return trivia.Category{}, f.err
}

func TestImportStopsOnCategoryError(t *testing.T) {
	boom := errors.New("store offline")
	ids, err := Import(context.Background(), failingCatalog{err: boom}, []RawQuestion{{Category: "Science"}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no ids, got %v", ids)
	}
}
