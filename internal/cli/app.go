// Package cli runs an interactive quiz against the trivia HTTP API.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trivia-app/internal/client"
	"trivia-app/internal/trivia"
)

const (
	// DefaultQuestionsPerPlay matches the web client's questionsPerPlay.
	DefaultQuestionsPerPlay = 5
	defaultHTTPTimeout      = 5 * time.Second
)

type Config struct {
	ServerURL string
	// CategoryID 0 plays across all categories.
	CategoryID   int
	MaxQuestions int
	HTTPTimeout  time.Duration
}

type quizClient interface {
	ListCategories(ctx context.Context) ([]trivia.Category, error)
	NextQuestion(ctx context.Context, categoryID int, previous []int) (trivia.Question, bool, error)
}

func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		serverURL = client.DefaultServerURL
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	api := client.NewHTTPClient(serverURL, &http.Client{Timeout: timeout})
	if err := play(ctx, in, out, api, cfg); err != nil {
		return describeClientError(err, serverURL)
	}
	return nil
}

func play(ctx context.Context, in io.Reader, out io.Writer, api quizClient, cfg Config) error {
	maxQuestions := cfg.MaxQuestions
	if maxQuestions <= 0 {
		maxQuestions = DefaultQuestionsPerPlay
	}

	categories, err := api.ListCategories(ctx)
	if err != nil {
		return err
	}
	label, err := categoryLabel(categories, cfg.CategoryID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Playing %s (%d questions)\n", label, maxQuestions)

	reader := bufio.NewReader(in)
	previous := make([]int, 0, maxQuestions)
	score := 0

	for len(previous) < maxQuestions {
		question, ok, err := api.NextQuestion(ctx, cfg.CategoryID, previous)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "\nNo more questions.")
			break
		}
		previous = append(previous, question.ID)

		printQuestion(out, len(previous), question)
		answer, ok := readAnswer(reader, out)
		if !ok {
			fmt.Fprintln(out)
			break
		}

		if checkAnswer(answer, question.Answer) {
			fmt.Fprintln(out, "Correct!")
			score++
		} else {
			fmt.Fprintf(out, "Wrong. Correct answer was %s\n", question.Answer)
		}
	}

	fmt.Fprintf(out, "\nFinal score: %d/%d\n", score, len(previous))
	return nil
}

func categoryLabel(categories []trivia.Category, categoryID int) (string, error) {
	if categoryID == 0 {
		return "all categories", nil
	}
	for _, category := range categories {
		if category.ID == categoryID {
			return category.Type, nil
		}
	}
	return "", fmt.Errorf("unknown category %d", categoryID)
}

func printQuestion(out io.Writer, number int, question trivia.Question) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d: %s\n", number, question.Question)
}

func readAnswer(reader *bufio.Reader, out io.Writer) (string, bool) {
	fmt.Fprint(out, "Your answer: ")
	line, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", false
	}
	return line, true
}

// checkAnswer ignores case and surrounding whitespace.
func checkAnswer(given, want string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(want))
}

func describeClientError(err error, serverURL string) error {
	if errors.Is(err, client.ErrServiceUnavailable) {
		return fmt.Errorf("trivia service unavailable at %s", serverURL)
	}
	return err
}
