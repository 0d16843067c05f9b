package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esteticapro/clinic-manager/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGridShape(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		ref := day(2024, month, 15)
		grid := MonthGrid(ref, day(2024, month, 15))

		require.NotEmpty(t, grid)
		assert.Zero(t, len(grid)%7, "mês %s: grade deve fechar semanas inteiras", month)
		assert.Equal(t, time.Sunday, grid[0].Date.Weekday(), "mês %s: grade começa no domingo", month)
		assert.Equal(t, time.Saturday, grid[len(grid)-1].Date.Weekday())
	}
}

func TestMonthGridCoversEveryDayOnce(t *testing.T) {
	ref := day(2024, time.June, 1)
	grid := MonthGrid(ref, day(2024, time.June, 10))

	seen := map[int]bool{}
	for _, d := range grid {
		if !d.InMonth {
			assert.NotEqual(t, time.June, d.Date.Month())
			continue
		}
		assert.False(t, seen[d.Date.Day()], "dia %d repetido", d.Date.Day())
		seen[d.Date.Day()] = true
	}
	assert.Len(t, seen, 30)
}

func TestMonthGridMarksToday(t *testing.T) {
	today := day(2024, time.June, 10)
	grid := MonthGrid(day(2024, time.June, 1), today)

	var marked []time.Time
	for _, d := range grid {
		if d.Today {
			marked = append(marked, d.Date)
		}
	}
	require.Len(t, marked, 1)
	assert.True(t, SameDay(marked[0], today))

	// "hoje" fora do mês exibido não marca nada
	grid = MonthGrid(day(2024, time.January, 1), today)
	for _, d := range grid {
		assert.False(t, d.Today)
	}
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(
		time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC),
	))
	assert.False(t, SameDay(day(2024, time.June, 10), day(2024, time.June, 11)))
}

func TestItemsForDayPreservesInsertionOrder(t *testing.T) {
	target := day(2024, time.June, 10)
	items := []models.AgendaItem{
		{ID: "a", Date: target, StartTime: "09:00"},
		{ID: "b", Date: day(2024, time.June, 11), StartTime: "08:00"},
		{ID: "c", Date: target, StartTime: "14:00"},
		{ID: "d", Date: target, StartTime: "11:00"},
	}

	got := ItemsForDay(items, target)
	require.Len(t, got, 3)

	starts := []string{got[0].StartTime, got[1].StartTime, got[2].StartTime}
	assert.Equal(t, []string{"09:00", "14:00", "11:00"}, starts)
}

func TestItemsForDayEmpty(t *testing.T) {
	got := ItemsForDay(nil, day(2024, time.June, 10))
	assert.Empty(t, got)
}

func TestMonthNavigate(t *testing.T) {
	ref := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	next := MonthNavigate(ref, 1)
	assert.Equal(t, time.February, next.Month())
	assert.Equal(t, 15, next.Day())
	assert.Equal(t, 10, next.Hour())

	prev := MonthNavigate(ref, -1)
	assert.Equal(t, time.December, prev.Month())
	assert.Equal(t, 2023, prev.Year())
}

func TestMonthNavigateClampsDay(t *testing.T) {
	ref := day(2024, time.January, 31)

	feb := MonthNavigate(ref, 1)
	assert.Equal(t, time.February, feb.Month())
	assert.Equal(t, 29, feb.Day()) // 2024 é bissexto

	ref = day(2023, time.January, 31)
	feb = MonthNavigate(ref, 1)
	assert.Equal(t, 28, feb.Day())
}
