package schedule

import (
	"testing"
	"time"

	dom "github.com/kikerikiki/ToDoApp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func due(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return &t
}

func todoDue(id int64, year int, month time.Month, day int) dom.Todo {
	return dom.Todo{ID: id, Title: "t", DueDate: due(year, month, day)}
}

func TestWeekOfMonth(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		// 2024-03-01 is a Friday; the first Monday of March is the 4th.
		{"first of month", *due(2024, time.March, 1), 1},
		{"tuesday after first monday", *due(2024, time.March, 5), 2},
		{"late march thursday", *due(2024, time.March, 28), 5},
		// 2024-03-31 (Sunday) shares a continuous week with the 28th.
		{"sunday closing the month", *due(2024, time.March, 31), 5},
		// The Monday right after restarts at 1 in April.
		{"monday opening april", *due(2024, time.April, 1), 1},
		// 2024-06-01 is a Saturday inside a week that began in May.
		{"saturday opening june", *due(2024, time.June, 1), 1},
		{"friday closing may", *due(2024, time.May, 31), 5},
		// 2023-01-01 is a Sunday: week 1 is that single day.
		{"new year sunday", *due(2023, time.January, 1), 1},
		{"monday after new year sunday", *due(2023, time.January, 2), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekOfMonth(tt.date))
		})
	}
}

func TestGroupByMonthAndWeekEmpty(t *testing.T) {
	assert.Empty(t, GroupByMonthAndWeek(nil))
	assert.Empty(t, GroupByMonthAndWeek([]dom.Todo{}))
}

func TestGroupByMonthAndWeekMarchScenario(t *testing.T) {
	groups := GroupByMonthAndWeek([]dom.Todo{
		todoDue(1, 2024, time.March, 5),
		todoDue(2, 2024, time.March, 28),
	})

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 2024, g.Year)
	assert.Equal(t, time.March, g.Month)
	require.Len(t, g.Weeks, 2)
	assert.Equal(t, 2, g.Weeks[0].Week)
	assert.Equal(t, 5, g.Weeks[1].Week)
	assert.Equal(t, int64(1), g.Weeks[0].Todos[0].ID)
	assert.Equal(t, int64(2), g.Weeks[1].Todos[0].ID)
}

func TestGroupByMonthAndWeekMonthsAscendingNoDuplicates(t *testing.T) {
	groups := GroupByMonthAndWeek([]dom.Todo{
		todoDue(1, 2025, time.January, 10),
		todoDue(2, 2024, time.December, 2),
		todoDue(3, 2024, time.March, 5),
		todoDue(4, 2024, time.March, 20),
		todoDue(5, 2024, time.December, 30),
	})

	require.Len(t, groups, 3)
	for i := 1; i < len(groups); i++ {
		prev, cur := groups[i-1], groups[i]
		assert.True(t, prev.Year < cur.Year || (prev.Year == cur.Year && prev.Month < cur.Month),
			"month groups must be strictly ascending")
	}
}

func TestGroupByMonthAndWeekWeeksPositiveAscending(t *testing.T) {
	groups := GroupByMonthAndWeek([]dom.Todo{
		todoDue(1, 2024, time.March, 1),
		todoDue(2, 2024, time.March, 5),
		todoDue(3, 2024, time.March, 12),
		todoDue(4, 2024, time.March, 28),
		todoDue(5, 2024, time.March, 31),
	})

	require.Len(t, groups, 1)
	weeks := groups[0].Weeks
	require.NotEmpty(t, weeks)
	assert.Greater(t, weeks[0].Week, 0)
	for i := 1; i < len(weeks); i++ {
		assert.Greater(t, weeks[i].Week, weeks[i-1].Week, "week buckets must be strictly ascending")
	}
}

// A week straddling a month boundary splits on (year, month) first: the May
// and June todos share a continuous calendar week but land in separate month
// groups with independent week labels.
func TestGroupByMonthAndWeekBoundaryWeek(t *testing.T) {
	groups := GroupByMonthAndWeek([]dom.Todo{
		todoDue(1, 2024, time.May, 31),
		todoDue(2, 2024, time.June, 1),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, time.May, groups[0].Month)
	assert.Equal(t, time.June, groups[1].Month)
	assert.Equal(t, 5, groups[0].Weeks[0].Week)
	assert.Equal(t, 1, groups[1].Weeks[0].Week)
}

func TestGroupByMonthAndWeekSingleBucket(t *testing.T) {
	groups := GroupByMonthAndWeek([]dom.Todo{
		todoDue(1, 2024, time.July, 9),
		todoDue(2, 2024, time.July, 9),
		todoDue(3, 2024, time.July, 9),
	})

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Weeks, 1)
	assert.Len(t, groups[0].Weeks[0].Todos, 3)
}

func TestGroupByMonthAndWeekIdempotent(t *testing.T) {
	input := []dom.Todo{
		todoDue(1, 2024, time.March, 5),
		todoDue(2, 2024, time.March, 28),
		todoDue(3, 2024, time.April, 2),
		todoDue(4, 2025, time.January, 1),
	}
	first := GroupByMonthAndWeek(input)

	var flattened []dom.Todo
	for _, g := range first {
		for _, w := range g.Weeks {
			flattened = append(flattened, w.Todos...)
		}
	}
	second := GroupByMonthAndWeek(flattened)

	assert.Equal(t, first, second)
}
