package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dom "github.com/kikerikiki/ToDoApp/internal/domain"
	"github.com/kikerikiki/ToDoApp/internal/repo"
	"github.com/kikerikiki/ToDoApp/internal/schedule"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrTitleRequired = errors.New("title is required")
	// ErrStaleWrite means the row was modified by another writer between the
	// edit's read and its save. Surfaced as-is, no merge or retry.
	ErrStaleWrite = errors.New("todo was modified concurrently")
)

// UpdateInput is the full field set an edit submits, including the id from
// the payload (checked against the path id) and the UpdatedAt the editor
// originally read, which acts as the stale-write token.
type UpdateInput struct {
	ID          int64
	Title       string
	Description string
	DueDate     *time.Time
	IsCompleted bool
	UpdatedAt   time.Time
}

// TodoService orchestrates the todo lifecycle and the grouped listing views.
type TodoService struct {
	repo repo.TodoRepo
	now  func() time.Time
}

// NewTodoService creates a TodoService using the wall clock.
func NewTodoService(r repo.TodoRepo) *TodoService {
	return &TodoService{repo: r, now: time.Now}
}

// NewTodoServiceWithClock creates a TodoService with a fixed clock, for tests.
func NewTodoServiceWithClock(r repo.TodoRepo, now func() time.Time) *TodoService {
	return &TodoService{repo: r, now: now}
}

// Current returns todos due in the current month or later, grouped by month
// and week. The cutoff is the first day of the current month, so "this month"
// is always included regardless of today's day-of-month.
func (s *TodoService) Current(ctx context.Context) ([]schedule.MonthGroup, error) {
	now := s.now()
	from := monthStart(now)
	list, err := s.repo.ListDueFrom(ctx, from)
	if err != nil {
		return nil, err
	}
	return schedule.GroupByMonthAndWeek(list), nil
}

// Past returns todos due within exactly the previous calendar month, grouped.
// Not a rolling 30-day window.
func (s *TodoService) Past(ctx context.Context) ([]schedule.MonthGroup, error) {
	now := s.now()
	to := monthStart(now)
	from := to.AddDate(0, -1, 0)
	list, err := s.repo.ListDueBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return schedule.GroupByMonthAndWeek(list), nil
}

func (s *TodoService) Create(ctx context.Context, title, desc string, dueDate *time.Time) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)
	if title == "" {
		return dom.Todo{}, ErrTitleRequired
	}
	return s.repo.Create(ctx, dom.Todo{
		Title:       title,
		Description: desc,
		DueDate:     dueDate,
	})
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

// Update applies a full edit. A mismatch between the path id and the payload
// id is treated as not found, same as a missing row. When the optimistic
// write fails, the row is re-checked: gone means not found, still there means
// a concurrent writer won and the conflict is fatal.
func (s *TodoService) Update(ctx context.Context, pathID int64, in UpdateInput) (dom.Todo, error) {
	if pathID != in.ID {
		return dom.Todo{}, ErrNotFound
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return dom.Todo{}, ErrTitleRequired
	}
	t, err := s.repo.Update(ctx, dom.Todo{
		ID:          in.ID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		DueDate:     in.DueDate,
		IsCompleted: in.IsCompleted,
	}, in.UpdatedAt)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.Todo{}, err
	}
	exists, exErr := s.repo.Exists(ctx, in.ID)
	if exErr != nil {
		return dom.Todo{}, exErr
	}
	if !exists {
		return dom.Todo{}, ErrNotFound
	}
	return dom.Todo{}, ErrStaleWrite
}

// Toggle flips the completion flag. A missing id is a silent no-op: the
// caller proceeds to the listing either way.
func (s *TodoService) Toggle(ctx context.Context, id int64) error {
	_, err := s.repo.ToggleCompletion(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}

// Delete removes the row. The confirm page is the only existence guard: a
// delete aimed at a row that is no longer there is a plain fault, not a
// handled not-found.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("delete todo %d: no such row", id)
	}
	return nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
