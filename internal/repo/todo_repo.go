package repo

import (
	"context"
	"time"

	dom "github.com/kikerikiki/ToDoApp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id int64) (dom.Todo, error)
	// ListDueFrom returns todos with a due date at or after from, due date ascending.
	ListDueFrom(ctx context.Context, from time.Time) ([]dom.Todo, error)
	// ListDueBetween returns todos with from <= due date < to, due date ascending.
	ListDueBetween(ctx context.Context, from, to time.Time) ([]dom.Todo, error)
	// Update writes the full field set of t but only if the stored row still
	// carries readAt as its updated_at. Returns pgx.ErrNoRows when the row is
	// gone or was modified since the read; callers disambiguate.
	Update(ctx context.Context, t dom.Todo, readAt time.Time) (dom.Todo, error)
	// ToggleCompletion flips is_completed in place. Returns pgx.ErrNoRows for
	// a missing id.
	ToggleCompletion(ctx context.Context, id int64) (dom.Todo, error)
	// Delete removes the row and reports how many rows went away.
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, description, due_date)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, due_date, is_completed, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, t.Title, t.Description, t.DueDate).Scan(
		&out.ID, &out.Title, &out.Description, &out.DueDate, &out.IsCompleted,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	query := `
		SELECT id, title, description, due_date, is_completed, created_at, updated_at
		FROM todos WHERE id = $1`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsCompleted,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) ListDueFrom(ctx context.Context, from time.Time) ([]dom.Todo, error) {
	query := `
		SELECT id, title, description, due_date, is_completed, created_at, updated_at
		FROM todos WHERE due_date IS NOT NULL AND due_date >= $1
		ORDER BY due_date ASC`
	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTodos(rows)
}

func (r *PGTodoRepo) ListDueBetween(ctx context.Context, from, to time.Time) ([]dom.Todo, error) {
	query := `
		SELECT id, title, description, due_date, is_completed, created_at, updated_at
		FROM todos WHERE due_date IS NOT NULL AND due_date >= $1 AND due_date < $2
		ORDER BY due_date ASC`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTodos(rows)
}

func (r *PGTodoRepo) Update(ctx context.Context, t dom.Todo, readAt time.Time) (dom.Todo, error) {
	query := `
		UPDATE todos
		SET title = $2, description = $3, due_date = $4, is_completed = $5, updated_at = NOW()
		WHERE id = $1 AND updated_at = $6
		RETURNING id, title, description, due_date, is_completed, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, t.ID, t.Title, t.Description, t.DueDate, t.IsCompleted, readAt).Scan(
		&out.ID, &out.Title, &out.Description, &out.DueDate, &out.IsCompleted,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) ToggleCompletion(ctx context.Context, id int64) (dom.Todo, error) {
	query := `
		UPDATE todos SET is_completed = NOT is_completed, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, due_date, is_completed, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsCompleted,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PGTodoRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM todos WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func scanTodos(rows pgx.Rows) ([]dom.Todo, error) {
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsCompleted,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
