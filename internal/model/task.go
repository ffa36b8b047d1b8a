package model

import "time"

// Bucket classifies a task relative to a reference date.
type Bucket string

const (
	BucketOverdue   Bucket = "overdue"
	BucketDueToday  Bucket = "due-today"
	BucketDueLater  Bucket = "due-later"
	BucketCompleted Bucket = "completed"
)

// Task represents a to-do item owned by exactly one user. The owner is set at
// creation and never reassigned. Deletion is a hard delete.
type Task struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	DueDate   time.Time `json:"due_date" gorm:"type:date;not null"`
	Completed bool      `json:"completed" gorm:"not null;default:false"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// DueOn reports whether the task's due date falls on the given calendar day.
// Comparison is date-only; time of day never participates.
func (t *Task) DueOn(day time.Time) bool {
	ty, tm, td := t.DueDate.Date()
	dy, dm, dd := day.Date()
	return ty == dy && tm == dm && td == dd
}
