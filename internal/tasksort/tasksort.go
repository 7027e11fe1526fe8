package tasksort

import (
	"sort"
	"time"

	"github.com/opsboard/backend/internal/models"
)

// Sort modes accepted by listings. Smart is the secondary grouping heuristic
// layered on top of the server-scoped query: overdue > due today > critical >
// high > medium > low, with done tasks last.
const (
	ModeSmart       = "smart"
	ModeDueAsc      = "due_asc"
	ModeDueDesc     = "due_desc"
	ModeCreatedDesc = "created_desc"
	ModePriority    = "priority"
	ModeStatus      = "status"
)

func priorityWeight(priority string) int {
	switch priority {
	case models.PriorityCritical:
		return 0
	case models.PriorityHigh:
		return 1
	case models.PriorityMedium:
		return 2
	case models.PriorityLow:
		return 3
	}
	return 4
}

func IsOverdue(t models.TaskWithRefs, now time.Time) bool {
	if t.DueAt == nil || t.Status == models.TaskStatusDone {
		return false
	}
	return t.DueAt.Before(now)
}

func IsDueToday(t models.TaskWithRefs, now time.Time) bool {
	if t.DueAt == nil || t.Status == models.TaskStatusDone {
		return false
	}
	due := t.DueAt
	sameDay := due.Year() == now.Year() && due.YearDay() == now.YearDay()
	return sameDay && !due.Before(now)
}

func smartGroup(t models.TaskWithRefs, now time.Time) int {
	switch {
	case t.Status == models.TaskStatusDone:
		return 6
	case IsOverdue(t, now):
		return 0
	case IsDueToday(t, now):
		return 1
	case t.Priority == models.PriorityCritical:
		return 2
	case t.Priority == models.PriorityHigh:
		return 3
	case t.Priority == models.PriorityMedium:
		return 4
	}
	return 5
}

// SmartSort orders tasks by urgency group, then within each group by a
// group-appropriate key. The input slice is not modified.
func SmartSort(tasks []models.TaskWithRefs, now time.Time) []models.TaskWithRefs {
	out := make([]models.TaskWithRefs, len(tasks))
	copy(out, tasks)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ga, gb := smartGroup(a, now), smartGroup(b, now)
		if ga != gb {
			return ga < gb
		}

		// Overdue: highest priority first, then most overdue.
		if ga == 0 {
			pa, pb := priorityWeight(a.Priority), priorityWeight(b.Priority)
			if pa != pb {
				return pa < pb
			}
			return a.DueAt.Before(*b.DueAt)
		}
		// Due today: by deadline time.
		if ga == 1 {
			return a.DueAt.Before(*b.DueAt)
		}
		// Remaining groups: by due date, tasks without one last, then newest.
		if a.DueAt != nil && b.DueAt != nil {
			return a.DueAt.Before(*b.DueAt)
		}
		if a.DueAt != nil {
			return true
		}
		if b.DueAt != nil {
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out
}

// Sort applies one of the named modes. Unknown modes return the input order.
func Sort(tasks []models.TaskWithRefs, mode string, now time.Time) []models.TaskWithRefs {
	switch mode {
	case ModeSmart:
		return SmartSort(tasks, now)
	case ModeDueAsc, ModeDueDesc:
		out := make([]models.TaskWithRefs, len(tasks))
		copy(out, tasks)
		asc := mode == ModeDueAsc
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.DueAt == nil && b.DueAt == nil {
				return false
			}
			if a.DueAt == nil {
				return false
			}
			if b.DueAt == nil {
				return true
			}
			if asc {
				return a.DueAt.Before(*b.DueAt)
			}
			return b.DueAt.Before(*a.DueAt)
		})
		return out
	case ModeCreatedDesc:
		out := make([]models.TaskWithRefs, len(tasks))
		copy(out, tasks)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
		return out
	case ModePriority:
		out := make([]models.TaskWithRefs, len(tasks))
		copy(out, tasks)
		sort.SliceStable(out, func(i, j int) bool {
			return priorityWeight(out[i].Priority) < priorityWeight(out[j].Priority)
		})
		return out
	case ModeStatus:
		out := make([]models.TaskWithRefs, len(tasks))
		copy(out, tasks)
		sort.SliceStable(out, func(i, j int) bool {
			return statusOrder(out[i].Status) < statusOrder(out[j].Status)
		})
		return out
	}
	return tasks
}

// statusOrder ranks statuses by workflow position.
func statusOrder(status string) int {
	switch status {
	case models.TaskStatusNew:
		return 0
	case models.TaskStatusInProgress:
		return 1
	case models.TaskStatusPaused:
		return 2
	case models.TaskStatusDone:
		return 3
	}
	return 4
}
