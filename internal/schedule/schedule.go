// Package schedule groups todos by due-month and week-within-month for the
// listing views. Week numbering is fixed to a Monday-start, first-day rule
// (week 1 begins on Jan 1, a new week begins every Monday) regardless of
// locale, so bucket boundaries near month and year edges are deterministic.
package schedule

import (
	"sort"
	"time"

	dom "github.com/kikerikiki/ToDoApp/internal/domain"
)

// WeekBucket is one week-of-month worth of todos, in input order.
type WeekBucket struct {
	Week  int
	Todos []dom.Todo
}

// MonthGroup holds one calendar month's todos split into week buckets.
type MonthGroup struct {
	Year  int
	Month time.Month
	Weeks []WeekBucket
}

// weekOfYear returns the 1-based week number of t under the Monday-start,
// first-day rule: week 1 runs from Jan 1 to the day before the first Monday.
func weekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	offset := (int(jan1.Weekday()) + 6) % 7 // days since Monday
	return (t.YearDay()-1+offset)/7 + 1
}

// WeekOfMonth returns the 1-based week-of-month index of t. It is derived
// from the continuous week-of-year numbering, not a per-month grid, so a week
// straddling a month boundary keeps a consistent label on both sides.
func WeekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return weekOfYear(t) - weekOfYear(first) + 1
}

// GroupByMonthAndWeek partitions todos by (year, month) of their due date,
// then by week-of-month. Months and weeks come back ascending; within a week
// bucket the input order is preserved (callers pre-sort by due date).
// Every todo must have a non-nil DueDate; callers filter beforehand.
func GroupByMonthAndWeek(todos []dom.Todo) []MonthGroup {
	type monthKey struct {
		year  int
		month time.Month
	}

	byMonth := make(map[monthKey][]dom.Todo)
	var keys []monthKey
	for _, t := range todos {
		k := monthKey{t.DueDate.Year(), t.DueDate.Month()}
		if _, seen := byMonth[k]; !seen {
			keys = append(keys, k)
		}
		byMonth[k] = append(byMonth[k], t)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	groups := make([]MonthGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, MonthGroup{
			Year:  k.year,
			Month: k.month,
			Weeks: splitWeeks(byMonth[k]),
		})
	}
	return groups
}

func splitWeeks(todos []dom.Todo) []WeekBucket {
	byWeek := make(map[int][]dom.Todo)
	var weeks []int
	for _, t := range todos {
		w := WeekOfMonth(*t.DueDate)
		if _, seen := byWeek[w]; !seen {
			weeks = append(weeks, w)
		}
		byWeek[w] = append(byWeek[w], t)
	}
	sort.Ints(weeks)

	buckets := make([]WeekBucket, 0, len(weeks))
	for _, w := range weeks {
		buckets = append(buckets, WeekBucket{Week: w, Todos: byWeek[w]})
	}
	return buckets
}
