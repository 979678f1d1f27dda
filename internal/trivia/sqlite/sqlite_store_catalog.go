package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"trivia-app/internal/trivia"
)

func (s *SQLiteStore) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, type FROM categories ORDER BY id ASC`)
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

func (s *SQLiteStore) GetCategory(ctx context.Context, id int) (trivia.Category, error) {
	var category trivia.Category
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, type FROM categories WHERE id = ?`,
		id,
	).Scan(&category.ID, &category.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trivia.Category{}, trivia.ErrCategoryNotFound
		}
		return trivia.Category{}, err
	}
	return category, nil
}

// EnsureCategory returns the category labelled label, creating it first when
// no such category exists.
func (s *SQLiteStore) EnsureCategory(ctx context.Context, label string) (trivia.Category, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return trivia.Category{}, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO categories (type) VALUES (?)`,
		label,
	); err != nil {
		return trivia.Category{}, err
	}

	var category trivia.Category
	if err := tx.QueryRowContext(
		ctx,
		`SELECT id, type FROM categories WHERE type = ?`,
		label,
	).Scan(&category.ID, &category.Type); err != nil {
		return trivia.Category{}, err
	}

	return category, tx.Commit()
}

func (s *SQLiteStore) ListQuestions(ctx context.Context, filter trivia.QuestionFilter) ([]trivia.Question, error) {
	query, args := buildQuestionQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
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

func (s *SQLiteStore) GetQuestion(ctx context.Context, id int) (trivia.Question, error) {
	var question trivia.Question
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, question, answer, category, difficulty FROM questions WHERE id = ?`,
		id,
	).Scan(&question.ID, &question.Question, &question.Answer, &question.Category, &question.Difficulty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trivia.Question{}, trivia.ErrQuestionNotFound
		}
		return trivia.Question{}, err
	}
	return question, nil
}

func (s *SQLiteStore) CreateQuestion(ctx context.Context, question trivia.NewQuestion) (int, error) {
	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)`,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return trivia.ErrQuestionNotFound
	}
	return nil
}

const maxExcludedIDs = 500

func buildQuestionQuery(filter trivia.QuestionFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.CategoryID != 0 {
		conditions = append(conditions, `category = ?`)
		args = append(args, filter.CategoryID)
	}
	if filter.SearchTerm != "" {
		conditions = append(conditions, `question LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(filter.SearchTerm)+"%")
	}
	// Larger exclusion sets would exceed SQLite's bound-variable limit; callers
	// re-apply the exclusion to the rows returned.
	if len(filter.ExcludeIDs) > 0 && len(filter.ExcludeIDs) <= maxExcludedIDs {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(filter.ExcludeIDs)), ",")
		conditions = append(conditions, `id NOT IN (`+placeholders+`)`)
		for _, id := range filter.ExcludeIDs {
			args = append(args, id)
		}
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

// escapeLike makes % and _ in a search term match literally. SQLite LIKE is
// already case-insensitive for ASCII.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
