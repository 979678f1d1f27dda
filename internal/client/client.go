// Package client talks to the trivia HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"trivia-app/internal/trivia"
)

const DefaultServerURL = "http://127.0.0.1:8080"

var ErrServiceUnavailable = errors.New("trivia service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type categoriesResponse struct {
	Categories map[string]string `json:"categories"`
}

type questionsResponse struct {
	Questions      []trivia.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

type quizCategory struct {
	ID int `json:"id"`
}

type quizRequest struct {
	QuizCategory      quizCategory `json:"quiz_category"`
	PreviousQuestions []int        `json:"previous_questions"`
}

type quizResponse struct {
	// Either a question object or the literal false.
	Question json.RawMessage `json:"question"`
}

type createdResponse struct {
	CreatedID int `json:"created_id"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultServerURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// ListCategories returns the categories ordered by id.
func (c *HTTPClient) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	var payload categoriesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &payload); err != nil {
		return nil, err
	}

	categories := make([]trivia.Category, 0, len(payload.Categories))
	for key, label := range payload.Categories {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %q", key)
		}
		categories = append(categories, trivia.Category{ID: id, Type: label})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (c *HTTPClient) ListQuestions(ctx context.Context, page int) ([]trivia.Question, int, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var payload questionsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/questions?"+query.Encode(), nil, &payload); err != nil {
		return nil, 0, err
	}
	return payload.Questions, payload.TotalQuestions, nil
}

func (c *HTTPClient) CreateQuestion(ctx context.Context, question trivia.NewQuestion) (int, error) {
	var payload createdResponse
	if err := c.doJSON(ctx, http.MethodPost, "/questions", question, &payload); err != nil {
		return 0, err
	}
	return payload.CreatedID, nil
}

func (c *HTTPClient) DeleteQuestion(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/questions/"+strconv.Itoa(id), nil, nil)
}

// NextQuestion asks the quiz endpoint for the next unseen question. ok is
// false once the pool is exhausted.
func (c *HTTPClient) NextQuestion(ctx context.Context, categoryID int, previous []int) (trivia.Question, bool, error) {
	if previous == nil {
		previous = []int{}
	}
	request := quizRequest{
		QuizCategory:      quizCategory{ID: categoryID},
		PreviousQuestions: previous,
	}

	var payload quizResponse
	if err := c.doJSON(ctx, http.MethodPost, "/quizzes", request, &payload); err != nil {
		return trivia.Question{}, false, err
	}

	raw := bytes.TrimSpace(payload.Question)
	if len(raw) == 0 || bytes.Equal(raw, []byte("false")) || bytes.Equal(raw, []byte("null")) {
		return trivia.Question{}, false, nil
	}

	var question trivia.Question
	if err := json.Unmarshal(raw, &question); err != nil {
		return trivia.Question{}, false, fmt.Errorf("decode quiz question: %w", err)
	}
	return question, true, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Message) != "" {
			apiErr.Message = payload.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
