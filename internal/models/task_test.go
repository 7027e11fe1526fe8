package models

import (
	"testing"
	"time"
)

func TestCanSetStatusDirectly(t *testing.T) {
	tests := []struct {
		to       string
		expected bool
	}{
		{TaskStatusNew, true},
		{TaskStatusInProgress, true},
		{TaskStatusDone, true},

		// Paused is only reachable through the dedicated pause operation.
		{TaskStatusPaused, false},

		{"archived", false},
		{"", false},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.to, func(t *testing.T) {
			if got := CanSetStatusDirectly(tt.to); got != tt.expected {
				t.Errorf("CanSetStatusDirectly(%q) = %v, want %v", tt.to, got, tt.expected)
			}
		})
	}
}

func TestBuildStatusPatchStampsAcceptedOnce(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	task := &Task{Status: TaskStatusNew}
	p := BuildStatusPatch(task, TaskStatusInProgress, now)
	if p.AcceptedAt == nil || !p.AcceptedAt.Equal(now) {
		t.Fatalf("expected accepted_at stamped at %v, got %v", now, p.AcceptedAt)
	}

	// Returning to in_progress after a pause must not restamp accepted_at.
	earlier := now.Add(-24 * time.Hour)
	task = &Task{Status: TaskStatusPaused, AcceptedAt: &earlier}
	p = BuildStatusPatch(task, TaskStatusInProgress, now)
	if p.AcceptedAt != nil {
		t.Errorf("accepted_at restamped on re-entry: %v", p.AcceptedAt)
	}
}

func TestBuildStatusPatchStampsCompletedOnce(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	task := &Task{Status: TaskStatusInProgress}
	p := BuildStatusPatch(task, TaskStatusDone, now)
	if p.CompletedAt == nil || !p.CompletedAt.Equal(now) {
		t.Fatalf("expected completed_at stamped at %v, got %v", now, p.CompletedAt)
	}

	earlier := now.Add(-time.Hour)
	task = &Task{Status: TaskStatusNew, CompletedAt: &earlier}
	p = BuildStatusPatch(task, TaskStatusDone, now)
	if p.CompletedAt != nil {
		t.Errorf("completed_at restamped: %v", p.CompletedAt)
	}
}

func TestBuildStatusPatchLeavesStampsForOtherTargets(t *testing.T) {
	now := time.Now()
	task := &Task{Status: TaskStatusInProgress}
	p := BuildStatusPatch(task, TaskStatusNew, now)
	if p.AcceptedAt != nil || p.CompletedAt != nil {
		t.Errorf("transition to new must not stamp lifecycle fields: %+v", p)
	}
}

func TestIsValidStatusAndPriority(t *testing.T) {
	for _, s := range []string{TaskStatusNew, TaskStatusInProgress, TaskStatusPaused, TaskStatusDone} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false", s)
		}
	}
	if IsValidStatus("deleted") {
		t.Error("IsValidStatus accepted unknown status")
	}

	for _, p := range []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical} {
		if !IsValidPriority(p) {
			t.Errorf("IsValidPriority(%q) = false", p)
		}
	}
	if IsValidPriority("urgent") {
		t.Error("IsValidPriority accepted unknown priority")
	}
}

func TestIsValidAuditAction(t *testing.T) {
	for _, a := range []string{AuditCreateTask, AuditAccept, AuditStatusChange, AuditPauseTask, AuditTeamAddMember, AuditDeleteUser} {
		if !IsValidAuditAction(a) {
			t.Errorf("IsValidAuditAction(%q) = false", a)
		}
	}
	if IsValidAuditAction("deal_status_draft_to_submitted") {
		t.Error("IsValidAuditAction accepted action outside the closed set")
	}
}
