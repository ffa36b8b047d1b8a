package service

import (
	"time"

	"taskdeck/internal/model"
)

// Buckets groups a single user's tasks relative to a reference day. A
// completed task appears only in Completed, never in a date bucket.
type Buckets struct {
	Overdue   []model.Task `json:"overdue"`
	DueToday  []model.Task `json:"dueToday"`
	DueLater  []model.Task `json:"dueLater"`
	Completed []model.Task `json:"completed"`
}

// Classify partitions tasks into the four buckets. The comparison is
// calendar-date only; time of day never matters. Input order is preserved
// within each bucket, so a slice ordered by ascending ID stays that way.
// Callers must pass tasks already filtered to a single owner.
func Classify(tasks []model.Task, today time.Time) Buckets {
	b := Buckets{
		Overdue:   []model.Task{},
		DueToday:  []model.Task{},
		DueLater:  []model.Task{},
		Completed: []model.Task{},
	}
	ty, tm, td := today.Date()
	for _, task := range tasks {
		if task.Completed {
			b.Completed = append(b.Completed, task)
			continue
		}
		switch {
		case task.DueOn(today):
			b.DueToday = append(b.DueToday, task)
		case task.DueDate.Before(time.Date(ty, tm, td, 0, 0, 0, 0, task.DueDate.Location())):
			b.Overdue = append(b.Overdue, task)
		default:
			b.DueLater = append(b.DueLater, task)
		}
	}
	return b
}
