package httpapi

import (
	"errors"
	"net/http"

	"trivia-app/internal/logger"
	"trivia-app/internal/metrics"
	"trivia-app/internal/trivia"
)

func (a *API) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	categories, err := a.service.ListCategories(r.Context())
	if err != nil {
		a.logFailure(r, "list categories", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesResponse{
		Success:    true,
		Categories: formatCategories(categories),
	})
}

// HandleQuestions serves the paginated listing on GET and creation on POST.
func (a *API) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.listQuestions(w, r)
	case http.MethodPost:
		a.createQuestion(w, r)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (a *API) listQuestions(w http.ResponseWriter, r *http.Request) {
	categories, err := a.service.ListCategories(r.Context())
	if err != nil {
		a.logFailure(r, "list categories", err)
		writeServiceError(w, err)
		return
	}

	page, err := a.service.ListQuestions(r.Context(), parsePage(r))
	if err != nil {
		if !errors.Is(err, trivia.ErrNotFound) {
			a.logFailure(r, "list questions", err)
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, questionsResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.TotalQuestions,
		Categories:      formatCategories(categories),
		CurrentCategory: page.CurrentCategory,
	})
}

// createQuestion stores whatever fields were supplied; missing fields are
// kept as zero values.
func (a *API) createQuestion(w http.ResponseWriter, r *http.Request) {
	var request createQuestionRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusUnprocessableEntity, messageUnprocessable)
		return
	}

	id, err := a.service.CreateQuestion(r.Context(), trivia.NewQuestion{
		Question:   request.Question,
		Answer:     request.Answer,
		Category:   int(request.Category),
		Difficulty: int(request.Difficulty),
	})
	if err != nil {
		a.logFailure(r, "create question", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createQuestionResponse{
		Success:   true,
		CreatedID: id,
	})
}

func (a *API) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w, http.MethodDelete)
		return
	}

	questionID, ok := parsePathID(r, "question_id")
	if !ok {
		writeError(w, http.StatusNotFound, messageNotFound)
		return
	}

	if err := a.service.DeleteQuestion(r.Context(), questionID); err != nil {
		if !errors.Is(err, trivia.ErrNotFound) {
			a.logFailure(r, "delete question", err)
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteQuestionResponse{
		Success:   true,
		DeletedID: questionID,
	})
}

func (a *API) HandleSearchQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var request searchRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusUnprocessableEntity, messageUnprocessable)
		return
	}

	page, err := a.service.SearchQuestions(r.Context(), request.SearchTerm, parsePage(r))
	if err != nil {
		a.logFailure(r, "search questions", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, filteredQuestionsResponse{
		Success:         true,
		Questions:       page.Questions,
		CurrentCategory: page.CurrentCategory,
		TotalQuestions:  page.TotalQuestions,
	})
}

func (a *API) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	categoryID, ok := parsePathID(r, "category_id")
	if !ok {
		writeError(w, http.StatusNotFound, messageNotFound)
		return
	}

	page, err := a.service.QuestionsByCategory(r.Context(), categoryID, parsePage(r))
	if err != nil {
		if !errors.Is(err, trivia.ErrNotFound) {
			a.logFailure(r, "list category questions", err)
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, filteredQuestionsResponse{
		Success:         true,
		Questions:       page.Questions,
		CurrentCategory: page.CurrentCategory,
		TotalQuestions:  page.TotalQuestions,
	})
}

// HandleQuizzes hands out the next unseen question. An exhausted pool is a
// normal response with question set to false.
func (a *API) HandleQuizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var request quizRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusUnprocessableEntity, messageUnprocessable)
		return
	}

	previous := request.PreviousQuestions
	if previous == nil {
		previous = []int{}
	}

	question, ok, err := a.service.NextQuestion(r.Context(), int(request.QuizCategory.ID), previous)
	if err != nil {
		a.logFailure(r, "next quiz question", err)
		writeServiceError(w, err)
		return
	}

	response := quizResponse{
		Success:           true,
		Question:          false,
		PreviousQuestions: previous,
	}
	if ok {
		response.Question = question
		metrics.QuizOutcomes.WithLabelValues("served").Inc()
	} else {
		metrics.QuizOutcomes.WithLabelValues("exhausted").Inc()
	}

	writeJSON(w, http.StatusOK, response)
}

func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Success: true})
}

func (a *API) HandleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, messageNotFound)
}

func (a *API) logFailure(r *http.Request, operation string, err error) {
	logger.FromContext(r.Context(), a.log).Error("request failed",
		"operation", operation,
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
}
