package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"trivia-app/internal/client"
	"trivia-app/internal/trivia"
)

// newQuestionsCmd manages questions through a running trivia-service.
func newQuestionsCmd() *cobra.Command {
	var (
		serverURL string
		timeout   time.Duration
	)
	newClient := func() *client.HTTPClient {
		return client.NewHTTPClient(serverURL, &http.Client{Timeout: timeout})
	}

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List, add and remove questions on a running trivia-service",
	}
	cmd.PersistentFlags().StringVar(&serverURL, "server", client.DefaultServerURL, "trivia-service base URL")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "HTTP timeout per request")

	var page int
	list := &cobra.Command{
		Use:   "list",
		Short: "Print one page of questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			questions, total, err := newClient().ListQuestions(cmd.Context(), page)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, question := range questions {
				fmt.Fprintf(out, "%d\t[%d]\t%s\t%s\n", question.ID, question.Category, question.Question, question.Answer)
			}
			fmt.Fprintf(out, "page %d, %d questions total\n", page, total)
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page number")

	var question trivia.NewQuestion
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := newClient().CreateQuestion(cmd.Context(), question)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created question %d\n", id)
			return nil
		},
	}
	add.Flags().StringVar(&question.Question, "question", "", "question text")
	add.Flags().StringVar(&question.Answer, "answer", "", "answer text")
	add.Flags().IntVar(&question.Category, "category", 0, "category id")
	add.Flags().IntVar(&question.Difficulty, "difficulty", 1, "difficulty 1-5")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid question id %q", args[0])
			}
			if err := newClient().DeleteQuestion(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted question %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, add, rm)
	return cmd
}
