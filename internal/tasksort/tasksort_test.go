package tasksort

import (
	"testing"
	"time"

	"github.com/opsboard/backend/internal/models"
)

func mkTask(title, status, priority string, due *time.Time, created time.Time) models.TaskWithRefs {
	return models.TaskWithRefs{Task: models.Task{
		Title:     title,
		Status:    status,
		Priority:  priority,
		DueAt:     due,
		CreatedAt: created,
	}}
}

func ptr(t time.Time) *time.Time { return &t }

func titles(tasks []models.TaskWithRefs) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestSmartSortGroups(t *testing.T) {
	now := time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)
	created := now.Add(-48 * time.Hour)

	tasks := []models.TaskWithRefs{
		mkTask("done", models.TaskStatusDone, models.PriorityCritical, ptr(now.Add(-time.Hour)), created),
		mkTask("low-no-due", models.TaskStatusNew, models.PriorityLow, nil, created),
		mkTask("critical", models.TaskStatusNew, models.PriorityCritical, nil, created),
		mkTask("due-today", models.TaskStatusInProgress, models.PriorityLow, ptr(now.Add(2*time.Hour)), created),
		mkTask("overdue", models.TaskStatusInProgress, models.PriorityMedium, ptr(now.Add(-3*time.Hour)), created),
		mkTask("high", models.TaskStatusNew, models.PriorityHigh, nil, created),
	}

	got := titles(SmartSort(tasks, now))
	want := []string{"overdue", "due-today", "critical", "high", "low-no-due", "done"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("smart sort order = %v, want %v", got, want)
		}
	}
}

func TestSmartSortOverdueOrdering(t *testing.T) {
	now := time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)
	created := now.Add(-time.Hour)

	tasks := []models.TaskWithRefs{
		mkTask("medium-very-late", models.TaskStatusNew, models.PriorityMedium, ptr(now.Add(-72*time.Hour)), created),
		mkTask("critical-late", models.TaskStatusNew, models.PriorityCritical, ptr(now.Add(-time.Hour)), created),
		mkTask("critical-later", models.TaskStatusNew, models.PriorityCritical, ptr(now.Add(-10*time.Hour)), created),
	}

	got := titles(SmartSort(tasks, now))
	// Priority beats lateness; among equal priorities the more overdue wins.
	want := []string{"critical-later", "critical-late", "medium-very-late"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("overdue ordering = %v, want %v", got, want)
		}
	}
}

func TestSmartSortDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	tasks := []models.TaskWithRefs{
		mkTask("b", models.TaskStatusNew, models.PriorityLow, nil, now),
		mkTask("a", models.TaskStatusNew, models.PriorityCritical, nil, now),
	}
	SmartSort(tasks, now)
	if tasks[0].Title != "b" {
		t.Error("SmartSort mutated its input")
	}
}

func TestSortDueModesPlaceNilLast(t *testing.T) {
	now := time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)

	tasks := []models.TaskWithRefs{
		mkTask("none", models.TaskStatusNew, models.PriorityLow, nil, now),
		mkTask("late", models.TaskStatusNew, models.PriorityLow, ptr(now.Add(48*time.Hour)), now),
		mkTask("soon", models.TaskStatusNew, models.PriorityLow, ptr(now.Add(time.Hour)), now),
	}

	asc := titles(Sort(tasks, ModeDueAsc, now))
	if asc[0] != "soon" || asc[1] != "late" || asc[2] != "none" {
		t.Errorf("due_asc = %v", asc)
	}

	desc := titles(Sort(tasks, ModeDueDesc, now))
	if desc[0] != "late" || desc[1] != "soon" || desc[2] != "none" {
		t.Errorf("due_desc = %v", desc)
	}
}

func TestSortPriorityMode(t *testing.T) {
	now := time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)

	tasks := []models.TaskWithRefs{
		mkTask("low", models.TaskStatusNew, models.PriorityLow, nil, now),
		mkTask("critical", models.TaskStatusNew, models.PriorityCritical, nil, now),
		mkTask("medium-a", models.TaskStatusNew, models.PriorityMedium, nil, now),
		mkTask("high", models.TaskStatusNew, models.PriorityHigh, nil, now),
		mkTask("medium-b", models.TaskStatusNew, models.PriorityMedium, nil, now),
	}

	got := titles(Sort(tasks, ModePriority, now))
	// Equal priorities keep their incoming order.
	want := []string{"critical", "high", "medium-a", "medium-b", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("priority order = %v, want %v", got, want)
		}
	}
	if tasks[0].Title != "low" {
		t.Error("priority mode mutated its input")
	}
}

func TestSortStatusMode(t *testing.T) {
	now := time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)

	tasks := []models.TaskWithRefs{
		mkTask("done", models.TaskStatusDone, models.PriorityLow, nil, now),
		mkTask("paused", models.TaskStatusPaused, models.PriorityLow, nil, now),
		mkTask("fresh", models.TaskStatusNew, models.PriorityLow, nil, now),
		mkTask("active", models.TaskStatusInProgress, models.PriorityLow, nil, now),
	}

	got := titles(Sort(tasks, ModeStatus, now))
	want := []string{"fresh", "active", "paused", "done"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("status order = %v, want %v", got, want)
		}
	}
}

func TestSortUnknownModeKeepsOrder(t *testing.T) {
	now := time.Now()
	tasks := []models.TaskWithRefs{
		mkTask("b", models.TaskStatusNew, models.PriorityLow, nil, now),
		mkTask("a", models.TaskStatusNew, models.PriorityCritical, nil, now),
	}
	got := titles(Sort(tasks, "bogus", now))
	if got[0] != "b" || got[1] != "a" {
		t.Errorf("unknown mode reordered input: %v", got)
	}
}

func TestIsDueToday(t *testing.T) {
	now := time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)

	today := mkTask("t", models.TaskStatusNew, models.PriorityLow, ptr(now.Add(5*time.Hour)), now)
	if !IsDueToday(today, now) {
		t.Error("task due later today not detected")
	}

	// A deadline earlier today is overdue, not due-today.
	past := mkTask("p", models.TaskStatusNew, models.PriorityLow, ptr(now.Add(-time.Hour)), now)
	if IsDueToday(past, now) {
		t.Error("overdue task classified as due today")
	}
	if !IsOverdue(past, now) {
		t.Error("overdue task not detected")
	}

	tomorrow := mkTask("n", models.TaskStatusNew, models.PriorityLow, ptr(now.Add(20*time.Hour)), now)
	if IsDueToday(tomorrow, now) {
		t.Error("tomorrow's task classified as due today")
	}
}
