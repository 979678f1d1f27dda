package trivia

// PageSize is the fixed number of questions per page.
const PageSize = 10

// Paginate returns the 1-based page window of items. Out-of-range pages,
// including pages below 1, yield an empty slice rather than an error.
func Paginate[T any](page int, items []T) []T {
	// Checked before multiplying so huge pages cannot overflow start.
	if page < 1 || page-1 > len(items)/PageSize {
		return []T{}
	}

	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}

	window := make([]T, end-start)
	copy(window, items[start:end])
	return window
}

// CurrentCategories lists the category of every question on the page, in
// page order. It is derived from the page, not from the full result set.
func CurrentCategories(page []Question) []int {
	categories := make([]int, 0, len(page))
	for _, question := range page {
		categories = append(categories, question.Category)
	}
	return categories
}

// FirstUnseen returns the first candidate whose id is not in seen. Candidates
// must already be ordered by id ascending.
func FirstUnseen(candidates []Question, seen []int) (Question, bool) {
	excluded := make(map[int]struct{}, len(seen))
	for _, id := range seen {
		excluded[id] = struct{}{}
	}

	for _, candidate := range candidates {
		if _, ok := excluded[candidate.ID]; ok {
			continue
		}
		return candidate, true
	}
	return Question{}, false
}
