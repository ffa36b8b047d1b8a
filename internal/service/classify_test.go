package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskdeck/internal/model"
)

func day(offset int) time.Time {
	base := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestClassify_Partition(t *testing.T) {
	today := day(0)
	tasks := []model.Task{
		{ID: 1, Title: "pay electricity bill", DueDate: day(-2)},
		{ID: 2, Title: "water the plants", DueDate: day(0)},
		{ID: 3, Title: "book flight tickets", DueDate: day(3)},
		{ID: 4, Title: "renew gym membership", DueDate: day(-1)},
		{ID: 5, Title: "submit tax return", DueDate: day(0)},
	}

	b := Classify(tasks, today)

	assert.Len(t, b.Overdue, 2)
	assert.Len(t, b.DueToday, 2)
	assert.Len(t, b.DueLater, 1)
	assert.Empty(t, b.Completed)

	// every incomplete task lands in exactly one date bucket
	total := len(b.Overdue) + len(b.DueToday) + len(b.DueLater) + len(b.Completed)
	assert.Equal(t, len(tasks), total)
}

func TestClassify_CompletedWinsOverDateBuckets(t *testing.T) {
	today := day(0)
	tests := []struct {
		name    string
		dueDate time.Time
	}{
		{"completed overdue task", day(-5)},
		{"completed task due today", day(0)},
		{"completed task due later", day(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Classify([]model.Task{
				{ID: 1, Title: "clean the garage", DueDate: tt.dueDate, Completed: true},
			}, today)

			assert.Len(t, b.Completed, 1)
			assert.Empty(t, b.Overdue)
			assert.Empty(t, b.DueToday)
			assert.Empty(t, b.DueLater)
		})
	}
}

func TestClassify_PreservesInsertionOrder(t *testing.T) {
	today := day(0)
	tasks := []model.Task{
		{ID: 3, Title: "third overdue item", DueDate: day(-1)},
		{ID: 7, Title: "seventh overdue item", DueDate: day(-4)},
		{ID: 9, Title: "ninth overdue item", DueDate: day(-2)},
	}

	b := Classify(tasks, today)

	if assert.Len(t, b.Overdue, 3) {
		assert.Equal(t, uint(3), b.Overdue[0].ID)
		assert.Equal(t, uint(7), b.Overdue[1].ID)
		assert.Equal(t, uint(9), b.Overdue[2].ID)
	}
}

func TestClassify_CalendarDateEqualityIgnoresTimeOfDay(t *testing.T) {
	// reference time late in the day must still match a midnight due date
	today := time.Date(2024, 6, 15, 23, 45, 0, 0, time.UTC)
	b := Classify([]model.Task{
		{ID: 1, Title: "water the plants", DueDate: day(0)},
	}, today)

	assert.Len(t, b.DueToday, 1)
	assert.Empty(t, b.Overdue)
	assert.Empty(t, b.DueLater)
}

func TestClassify_EmptyInput(t *testing.T) {
	b := Classify(nil, day(0))
	assert.NotNil(t, b.Overdue)
	assert.NotNil(t, b.DueToday)
	assert.NotNil(t, b.DueLater)
	assert.NotNil(t, b.Completed)
	assert.Empty(t, b.Overdue)
}

func TestClassify_BuyMilkScenario(t *testing.T) {
	today := day(0)
	task := model.Task{ID: 1, Title: "Buy milk", DueDate: day(0), Completed: false}

	b := Classify([]model.Task{task}, today)
	if assert.Len(t, b.DueToday, 1) {
		assert.Equal(t, "Buy milk", b.DueToday[0].Title)
	}
	assert.Empty(t, b.Completed)

	task.Completed = true
	b = Classify([]model.Task{task}, today)
	assert.Empty(t, b.DueToday)
	if assert.Len(t, b.Completed, 1) {
		assert.Equal(t, "Buy milk", b.Completed[0].Title)
	}
}
