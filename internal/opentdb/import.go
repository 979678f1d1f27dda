package opentdb

import (
	"context"
	"fmt"
	"html"
	"strings"

	"trivia-app/internal/trivia"
)

// Difficulty maps the OpenTDB difficulty names onto the 1-5 scale used by the
// catalog. Unknown names map to 0.
func Difficulty(name string) int {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return 1
	case "medium":
		return 2
	case "hard":
		return 3
	default:
		return 0
	}
}

// Import stores raw questions in the catalog, creating a category for every
// OpenTDB category label that does not exist yet. It returns the created ids
// in input order.
func Import(ctx context.Context, catalog trivia.CatalogRepository, raw []RawQuestion) ([]int, error) {
	categoryIDs := make(map[string]int)
	ids := make([]int, 0, len(raw))

	for _, item := range raw {
		label := strings.TrimSpace(html.UnescapeString(item.Category))
		categoryID, ok := categoryIDs[label]
		if !ok {
			category, err := catalog.EnsureCategory(ctx, label)
			if err != nil {
				return ids, fmt.Errorf("ensure category %q: %w", label, err)
			}
			categoryID = category.ID
			categoryIDs[label] = categoryID
		}

		id, err := catalog.CreateQuestion(ctx, trivia.NewQuestion{
			Question:   html.UnescapeString(item.Question),
			Answer:     html.UnescapeString(item.CorrectAnswer),
			Category:   categoryID,
			Difficulty: Difficulty(item.Difficulty),
		})
		if err != nil {
			return ids, fmt.Errorf("create question: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
