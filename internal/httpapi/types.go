package httpapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"trivia-app/internal/trivia"
)

// flexInt accepts a JSON number, a numeric string, or null. The web client
// sends category ids as strings because they come from object keys.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = 0
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			*n = 0
			return nil
		}
		parsed, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("invalid integer %q", text)
		}
		*n = flexInt(parsed)
		return nil
	}

	var parsed int
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	*n = flexInt(parsed)
	return nil
}

type createQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   flexInt `json:"category"`
	Difficulty flexInt `json:"difficulty"`
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type quizCategory struct {
	ID   flexInt `json:"id"`
	Type string  `json:"type,omitempty"`
}

type quizRequest struct {
	QuizCategory      quizCategory `json:"quiz_category"`
	PreviousQuestions []int        `json:"previous_questions"`
}

type categoriesResponse struct {
	Success    bool              `json:"success"`
	Categories map[string]string `json:"categories"`
}

type questionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []trivia.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[string]string `json:"categories"`
	CurrentCategory []int             `json:"current_category"`
}

type filteredQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []trivia.Question `json:"questions"`
	CurrentCategory []int             `json:"current_category"`
	TotalQuestions  int               `json:"total_questions"`
}

type deleteQuestionResponse struct {
	Success   bool `json:"success"`
	DeletedID int  `json:"deleted_id"`
}

type createQuestionResponse struct {
	Success   bool `json:"success"`
	CreatedID int  `json:"created_id"`
}

// quizResponse.Question is either a trivia.Question or false once the pool
// is exhausted.
type quizResponse struct {
	Success           bool  `json:"success"`
	Question          any   `json:"question"`
	PreviousQuestions []int `json:"previous_questions"`
}

type healthResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
