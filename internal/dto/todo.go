package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "github.com/kikerikiki/ToDoApp/internal/domain"
	"github.com/kikerikiki/ToDoApp/internal/schedule"
)

// DueDate parses due_date from JSON as either date-only ("2006-01-02") or
// RFC3339. Date-only is stored as start of that day in UTC.
type DueDate struct{ t *time.Time }

func (d *DueDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("due_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

func (d DueDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t)
}

// Ptr returns *time.Time for use in service/domain.
func (d DueDate) Ptr() *time.Time { return d.t }

type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"max=1000"`
	DueDate     DueDate `json:"due_date"` // optional: "2026-02-19" or RFC3339
}

// EditTodoRequest is the full field set of an edit. ID must match the path id
// and UpdatedAt must carry the value the editor read, or the save is refused.
type EditTodoRequest struct {
	ID          int64     `json:"id" binding:"required"`
	Title       string    `json:"title" binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=1000"`
	DueDate     DueDate   `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
	UpdatedAt   time.Time `json:"updated_at" binding:"required"`
}

type TodoResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// WeekGroupResponse is one week-of-month bucket inside a month group.
type WeekGroupResponse struct {
	Week  int            `json:"week"`
	Todos []TodoResponse `json:"todos"`
}

// MonthGroupResponse is one (year, month) group of the listing views.
type MonthGroupResponse struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Weeks []WeekGroupResponse `json:"weeks"`
}

type GroupedTodosResponse struct {
	Months []MonthGroupResponse `json:"months"`
}

func FromTodo(t dom.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTodos(list []dom.Todo) []TodoResponse {
	out := make([]TodoResponse, len(list))
	for i := range list {
		out[i] = FromTodo(list[i])
	}
	return out
}

func FromMonthGroups(groups []schedule.MonthGroup) GroupedTodosResponse {
	months := make([]MonthGroupResponse, len(groups))
	for i, g := range groups {
		weeks := make([]WeekGroupResponse, len(g.Weeks))
		for j, w := range g.Weeks {
			weeks[j] = WeekGroupResponse{Week: w.Week, Todos: FromTodos(w.Todos)}
		}
		months[i] = MonthGroupResponse{Year: g.Year, Month: int(g.Month), Weeks: weeks}
	}
	return GroupedTodosResponse{Months: months}
}
