package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"trivia-app/internal/cli"
	"trivia-app/internal/client"
	"trivia-app/internal/config"
	"trivia-app/internal/logger"
	"trivia-app/internal/opentdb"
	"trivia-app/internal/storage"
)

// defaultCategories is the category set the web client ships icons for.
var defaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "trivia-cli",
		Short:         "Play and manage the trivia question bank",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file")

	// Store-backed commands always bring the schema up to date.
	withStore := func(run func(ctx context.Context, cmd *cobra.Command, store storage.Store, cfg config.Config) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(cfg.Log)
			cfg.Store.Migrate = true

			ctx := cmd.Context()
			store, err := storage.Open(ctx, cfg)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()
			return run(ctx, cmd, store, cfg)
		}
	}

	root.AddCommand(
		newPlayCmd(),
		newQuestionsCmd(),
		newSeedCmd(withStore),
		newImportCmd(withStore),
		newMigrateCmd(withStore),
	)
	return root
}

type storeRunner func(func(ctx context.Context, cmd *cobra.Command, store storage.Store, cfg config.Config) error) func(*cobra.Command, []string) error

func newPlayCmd() *cobra.Command {
	var (
		serverURL string
		category  int
		questions int
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz against a running trivia-service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cli.Config{
				ServerURL:    serverURL,
				CategoryID:   category,
				MaxQuestions: questions,
				HTTPTimeout:  timeout,
			})
		},
	}
	cmd.Flags().StringVar(&serverURL, "server", client.DefaultServerURL, "trivia-service base URL")
	cmd.Flags().IntVar(&category, "category", 0, "category id to play (0 = all categories)")
	cmd.Flags().IntVar(&questions, "questions", cli.DefaultQuestionsPerPlay, "questions per play")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "HTTP timeout per request")
	return cmd
}

func newSeedCmd(withStore storeRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default categories when they are missing",
		Args:  cobra.NoArgs,
		RunE: withStore(func(ctx context.Context, cmd *cobra.Command, store storage.Store, _ config.Config) error {
			for _, label := range defaultCategories {
				category, err := store.EnsureCategory(ctx, label)
				if err != nil {
					return fmt.Errorf("seed category %q: %w", label, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", category.ID, category.Type)
			}
			return nil
		}),
	}
}

func newImportCmd(withStore storeRunner) *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import questions from the Open Trivia Database",
		Args:  cobra.NoArgs,
		RunE: withStore(func(ctx context.Context, cmd *cobra.Command, store storage.Store, cfg config.Config) error {
			source := opentdb.NewClient(&http.Client{Timeout: 15 * time.Second})
			source.BaseURL = cfg.OpenTDB.URL

			raw, err := source.FetchQuestions(ctx, amount)
			if err != nil {
				return fmt.Errorf("fetch questions: %w", err)
			}
			ids, err := opentdb.Import(ctx, store, raw)
			if err != nil {
				return err
			}
			logger.Get().Info("imported questions", "count", len(ids), "source", source.BaseURL)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d questions\n", len(ids))
			return nil
		}),
	}
	cmd.Flags().IntVar(&amount, "amount", 10, "number of questions to fetch (max 50)")
	return cmd
}

func newMigrateCmd(withStore storeRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations and print the schema version",
		Args:  cobra.NoArgs,
		RunE: withStore(func(ctx context.Context, cmd *cobra.Command, store storage.Store, cfg config.Config) error {
			versioned, ok := store.(storage.Versioned)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "store %q has no schema\n", cfg.Store.Driver)
				return nil
			}
			version, err := versioned.SchemaVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return nil
		}),
	}
}
