package events

import "context"

// Streams
const (
	StreamTasks = "events:tasks"
	StreamPush  = "events:push"
)

// Event types
const (
	EventTaskCreated       = "task_created"
	EventTaskAssigned      = "task_assigned"
	EventTaskStatusChanged = "task_status_changed"
	EventTaskPaused        = "task_paused"
	EventTaskCommented     = "task_commented"
	EventTasksArchived     = "tasks_archived"
	EventPushRequested     = "push_requested"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
