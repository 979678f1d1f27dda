package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-app/internal/httpapi"
	"trivia-app/internal/trivia"
	"trivia-app/internal/trivia/memory"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTriviaServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	store.AddCategories(
		trivia.Category{ID: 1, Type: "Science"},
		trivia.Category{ID: 2, Type: "Art"},
	)
	store.AddQuestions(
		trivia.Question{ID: 1, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 2, Difficulty: 2},
		trivia.Question{ID: 2, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		trivia.Question{ID: 3, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
	)

	router := httpapi.NewRouter(trivia.NewService(store), httpapi.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, store
}

func TestDoJSONReturnsServiceUnavailable(t *testing.T) {
	client := NewHTTPClient("http://example.test", &http.Client{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial error")
		}),
	})

	err := client.doJSON(context.Background(), http.MethodGet, "/health", nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable wrapper, got %v", err)
	}
}

func TestDoJSONReturnsAPIErrorMessageFromBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": 422, "message": "unprocessable"})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, server.Client())
	err := client.doJSON(context.Background(), http.MethodDelete, "/questions/9", nil, nil)
	if err == nil {
		t.Fatalf("expected API error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status code = %d, want %d", apiErr.StatusCode, http.StatusUnprocessableEntity)
	}
	if apiErr.Message != "unprocessable" {
		t.Fatalf("message = %q, want %q", apiErr.Message, "unprocessable")
	}
}

func TestNewHTTPClientDefaults(t *testing.T) {
	client := NewHTTPClient("  http://trivia.local:9000/ ", nil)
	if client.baseURL != "http://trivia.local:9000" {
		t.Fatalf("baseURL = %q", client.baseURL)
	}

	client = NewHTTPClient("", nil)
	if client.baseURL != DefaultServerURL {
		t.Fatalf("baseURL = %q, want %q", client.baseURL, DefaultServerURL)
	}
}

func TestListCategoriesOrdersByID(t *testing.T) {
	server, _ := newTriviaServer(t)
	client := NewHTTPClient(server.URL, server.Client())

	categories, err := client.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != 2 || categories[0].ID != 1 || categories[1].Type != "Art" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestNextQuestionUntilExhausted(t *testing.T) {
	server, _ := newTriviaServer(t)
	client := NewHTTPClient(server.URL, server.Client())
	ctx := context.Background()

	var previous []int
	for {
		question, ok, err := client.NextQuestion(ctx, 1, previous)
		if err != nil {
			t.Fatalf("NextQuestion failed: %v", err)
		}
		if !ok {
			break
		}
		previous = append(previous, question.ID)
	}

	if len(previous) != 2 || previous[0] != 2 || previous[1] != 3 {
		t.Fatalf("served questions = %v, want [2 3]", previous)
	}
}

func TestCreateListDeleteQuestion(t *testing.T) {
	server, _ := newTriviaServer(t)
	client := NewHTTPClient(server.URL, server.Client())
	ctx := context.Background()

	id, err := client.CreateQuestion(ctx, trivia.NewQuestion{Question: "Q?", Answer: "A", Category: 1, Difficulty: 5})
	if err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}

	questions, total, err := client.ListQuestions(ctx, 1)
	if err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}
	if total != 4 || questions[len(questions)-1].ID != id || questions[len(questions)-1].Difficulty != 5 {
		t.Fatalf("created question missing: total=%d questions=%+v", total, questions)
	}

	if err := client.DeleteQuestion(ctx, id); err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}

	var apiErr *APIError
	if err := client.DeleteQuestion(ctx, id); !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 on second delete, got %v", err)
	}

	if _, _, err := client.ListQuestions(ctx, 99); !errors.As(err, &apiErr) || apiErr.Message != "Not found" {
		t.Fatalf("expected not found page, got %v", err)
	}
}
