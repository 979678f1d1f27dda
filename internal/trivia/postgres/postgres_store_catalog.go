package postgres

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"trivia-app/internal/trivia"
)

func (s *PostgresStore) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, type FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]trivia.Category, 0)
	for rows.Next() {
		var category trivia.Category
		if err := rows.Scan(&category.ID, &category.Type); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (s *PostgresStore) GetCategory(ctx context.Context, id int) (trivia.Category, error) {
	if !fitsInt4(id) {
		return trivia.Category{}, trivia.ErrCategoryNotFound
	}

	var category trivia.Category
	err := s.pool.QueryRow(
		ctx,
		`SELECT id, type FROM categories WHERE id = $1`,
		id,
	).Scan(&category.ID, &category.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Category{}, trivia.ErrCategoryNotFound
		}
		return trivia.Category{}, err
	}
	return category, nil
}

func (s *PostgresStore) EnsureCategory(ctx context.Context, label string) (trivia.Category, error) {
	if _, err := s.pool.Exec(
		ctx,
		`INSERT INTO categories (type) VALUES ($1) ON CONFLICT (type) DO NOTHING`,
		label,
	); err != nil {
		return trivia.Category{}, err
	}

	var category trivia.Category
	err := s.pool.QueryRow(
		ctx,
		`SELECT id, type FROM categories WHERE type = $1`,
		label,
	).Scan(&category.ID, &category.Type)
	return category, err
}

func (s *PostgresStore) ListQuestions(ctx context.Context, filter trivia.QuestionFilter) ([]trivia.Question, error) {
	if !fitsInt4(filter.CategoryID) {
		return []trivia.Question{}, nil
	}
	query, args := buildQuestionQuery(filter)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]trivia.Question, 0)
	for rows.Next() {
		var question trivia.Question
		if err := rows.Scan(
			&question.ID,
			&question.Question,
			&question.Answer,
			&question.Category,
			&question.Difficulty,
		); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}

func (s *PostgresStore) GetQuestion(ctx context.Context, id int) (trivia.Question, error) {
	if !fitsInt4(id) {
		return trivia.Question{}, trivia.ErrQuestionNotFound
	}

	var question trivia.Question
	err := s.pool.QueryRow(
		ctx,
		`SELECT id, question, answer, category, difficulty FROM questions WHERE id = $1`,
		id,
	).Scan(&question.ID, &question.Question, &question.Answer, &question.Category, &question.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Question{}, trivia.ErrQuestionNotFound
		}
		return trivia.Question{}, err
	}
	return question, nil
}

func (s *PostgresStore) CreateQuestion(ctx context.Context, question trivia.NewQuestion) (int, error) {
	var id int
	err := s.pool.QueryRow(
		ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *PostgresStore) DeleteQuestion(ctx context.Context, id int) error {
	if !fitsInt4(id) {
		return trivia.ErrQuestionNotFound
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return trivia.ErrQuestionNotFound
	}
	return nil
}

func buildQuestionQuery(filter trivia.QuestionFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	next := func(value any) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.CategoryID != 0 {
		conditions = append(conditions, `category = `+next(filter.CategoryID))
	}
	if filter.SearchTerm != "" {
		conditions = append(conditions, `question ILIKE `+next("%"+escapeLike(filter.SearchTerm)+"%"))
	}
	excluded := make([]int, 0, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		if fitsInt4(id) {
			excluded = append(excluded, id)
		}
	}
	if len(excluded) > 0 {
		conditions = append(conditions, `NOT (id = ANY(`+next(excluded)+`))`)
	}

	var builder strings.Builder
	builder.WriteString(`SELECT id, question, answer, category, difficulty FROM questions`)
	if len(conditions) > 0 {
		builder.WriteString(` WHERE `)
		builder.WriteString(strings.Join(conditions, ` AND `))
	}
	builder.WriteString(` ORDER BY id ASC`)
	return builder.String(), args
}

// escapeLike makes % and _ in a search term match literally; backslash is
// the default LIKE escape character in PostgreSQL.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// fitsInt4 reports whether id can be bound against the SERIAL (int4) id
// columns. Anything outside that range cannot name a row.
func fitsInt4(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}
