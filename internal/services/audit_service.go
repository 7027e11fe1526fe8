package services

import (
	"context"

	"github.com/opsboard/backend/internal/apperr"
	"github.com/opsboard/backend/internal/models"
	"github.com/opsboard/backend/internal/rbac"
	"github.com/opsboard/backend/internal/repositories"
)

// AuditService exposes the global audit feed for compliance review.
type AuditService struct {
	auditRepo   *repositories.AuditRepo
	profileRepo *repositories.ProfileRepo
}

func NewAuditService(auditRepo *repositories.AuditRepo, profileRepo *repositories.ProfileRepo) *AuditService {
	return &AuditService{auditRepo: auditRepo, profileRepo: profileRepo}
}

func (s *AuditService) List(ctx context.Context, actor *models.Profile, limit, offset int) ([]models.TaskHistoryEvent, error) {
	if !rbac.CanViewAudit(actor.Role) {
		return nil, apperr.Authorization("")
	}
	logs, err := s.auditRepo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return enrichAuditLogs(ctx, s.profileRepo, logs)
}
