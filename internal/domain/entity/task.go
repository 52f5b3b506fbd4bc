package entity

import "time"

// Estados de Task.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Task representa una tarea asignable a un usuario.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      string // todo, in_progress, done
	Priority    string // low, medium, high
	AssigneeID  *string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
