package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/apperr"
	"github.com/opsboard/backend/internal/models"
	"github.com/opsboard/backend/internal/rbac"
	"github.com/opsboard/backend/internal/repositories"
)

type ObjectService struct {
	objectRepo  *repositories.ObjectRepo
	profileRepo *repositories.ProfileRepo
	auditRepo   *repositories.AuditRepo
	log         *zap.Logger
}

func NewObjectService(objectRepo *repositories.ObjectRepo, profileRepo *repositories.ProfileRepo, auditRepo *repositories.AuditRepo, log *zap.Logger) *ObjectService {
	return &ObjectService{objectRepo: objectRepo, profileRepo: profileRepo, auditRepo: auditRepo, log: log}
}

// List is open to every authenticated user; objects are directory data.
func (s *ObjectService) List(ctx context.Context) ([]models.OperationalObject, error) {
	return s.objectRepo.List(ctx)
}

func (s *ObjectService) Get(ctx context.Context, id uuid.UUID) (*models.OperationalObject, error) {
	o, err := s.objectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFound("object")
	}
	return o, nil
}

func (s *ObjectService) Create(ctx context.Context, actor *models.Profile, name string, engineerID *uuid.UUID) (*models.OperationalObject, error) {
	if !rbac.CanManageObjects(actor.Role) {
		return nil, apperr.Authorization("")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("object name is required")
	}
	if err := s.checkEngineer(ctx, engineerID); err != nil {
		return nil, err
	}

	o := &models.OperationalObject{Name: name, ObjectEngineerID: engineerID, CreatedBy: actor.ID}
	if err := s.objectRepo.Create(ctx, o); err != nil {
		return nil, err
	}
	if err := s.audit(ctx, actor.ID, models.AuditCreateObject, o.ID, map[string]any{"name": o.Name}); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *ObjectService) Update(ctx context.Context, actor *models.Profile, id uuid.UUID, name *string, engineerID *uuid.UUID, clearEngineer bool) (*models.OperationalObject, error) {
	if !rbac.CanManageObjects(actor.Role) {
		return nil, apperr.Authorization("")
	}
	o, err := s.objectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFound("object")
	}

	meta := map[string]any{}
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return nil, apperr.Validation("object name is required")
		}
		o.Name = n
		meta["name"] = n
	}
	if clearEngineer {
		o.ObjectEngineerID = nil
		meta["object_engineer_id"] = nil
	} else if engineerID != nil {
		if err := s.checkEngineer(ctx, engineerID); err != nil {
			return nil, err
		}
		o.ObjectEngineerID = engineerID
		meta["object_engineer_id"] = engineerID.String()
	}

	if err := s.objectRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err := s.audit(ctx, actor.ID, models.AuditUpdateObject, o.ID, meta); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete refuses while tasks still reference the object; history must keep
// resolving.
func (s *ObjectService) Delete(ctx context.Context, actor *models.Profile, id uuid.UUID) error {
	if !rbac.CanManageObjects(actor.Role) {
		return apperr.Authorization("")
	}
	o, err := s.objectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return apperr.NotFound("object")
	}
	n, err := s.objectRepo.CountTasks(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("object has tasks and cannot be deleted")
	}
	if err := s.objectRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.audit(ctx, actor.ID, models.AuditDeleteObject, id, map[string]any{"name": o.Name})
}

func (s *ObjectService) checkEngineer(ctx context.Context, engineerID *uuid.UUID) error {
	if engineerID == nil {
		return nil
	}
	p, err := s.profileRepo.GetByID(ctx, *engineerID)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("object engineer")
	}
	return nil
}

// audit must succeed for the mutation to report success; the trail is not
// best-effort.
func (s *ObjectService) audit(ctx context.Context, actorID uuid.UUID, action string, objectID uuid.UUID, meta map[string]any) error {
	err := s.auditRepo.Log(ctx, models.AuditLog{
		ActorID:    &actorID,
		Action:     action,
		EntityType: models.EntityObject,
		EntityID:   objectID,
		Meta:       meta,
	})
	if err != nil {
		s.log.Error("audit log write failed", zap.String("action", action), zap.Error(err))
		return apperr.Upstream(fmt.Errorf("audit log write: %w", err))
	}
	return nil
}
