package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/opsboard/backend/internal/apperr"
	"github.com/opsboard/backend/internal/models"
	"github.com/opsboard/backend/internal/rbac"
	"github.com/opsboard/backend/internal/repositories"
)

type UserService struct {
	profileRepo *repositories.ProfileRepo
	auditRepo   *repositories.AuditRepo
	log         *zap.Logger
}

func NewUserService(profileRepo *repositories.ProfileRepo, auditRepo *repositories.AuditRepo, log *zap.Logger) *UserService {
	return &UserService{profileRepo: profileRepo, auditRepo: auditRepo, log: log}
}

// List is open to all authenticated users: the directory feeds assignee and
// team-member pickers.
func (s *UserService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("user")
	}
	return p, nil
}

type CreateUserInput struct {
	Email    string
	FullName string
	Role     string
	Password string
}

func (s *UserService) Create(ctx context.Context, actor *models.Profile, in CreateUserInput) (*models.Profile, error) {
	if !rbac.CanManageUsers(actor.Role) {
		return nil, apperr.Authorization("")
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, apperr.Validation("a valid email is required")
	}
	if in.FullName == "" {
		return nil, apperr.Validation("full name is required")
	}
	if !rbac.IsValidRole(in.Role) {
		return nil, apperr.Validation("unknown role %q", in.Role)
	}
	if len(in.Password) < 8 {
		return nil, apperr.Validation("password must be at least 8 characters")
	}

	existing, err := s.profileRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	p := &models.Profile{
		Email:        in.Email,
		FullName:     in.FullName,
		Role:         in.Role,
		PasswordHash: string(hash),
	}
	if err := s.profileRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.audit(ctx, actor.ID, models.AuditCreateUser, p.ID, map[string]any{
		"email": p.Email,
		"role":  p.Role,
	}); err != nil {
		return nil, err
	}
	return p, nil
}

type UpdateUserInput struct {
	Email    *string
	FullName *string
	Role     *string
	Password *string
}

func (s *UserService) Update(ctx context.Context, actor *models.Profile, id uuid.UUID, in UpdateUserInput) (*models.Profile, error) {
	if !rbac.CanManageUsers(actor.Role) {
		return nil, apperr.Authorization("")
	}

	// Every input is validated before the first store write so a rejected
	// request never applies partially.
	var passwordHash string
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, apperr.Validation("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}

	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("user")
	}

	meta := map[string]any{}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, apperr.Validation("a valid email is required")
		}
		if email != p.Email {
			existing, err := s.profileRepo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != p.ID {
				return nil, apperr.Conflict("email already registered")
			}
			p.Email = email
			meta["email"] = email
		}
	}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, apperr.Validation("full name is required")
		}
		p.FullName = name
		meta["full_name"] = name
	}
	if in.Role != nil && *in.Role != p.Role {
		if !rbac.IsValidRole(*in.Role) {
			return nil, apperr.Validation("unknown role %q", *in.Role)
		}
		// An admin demoting themselves would lock the instance out of user
		// management, so self role changes are refused.
		if id == actor.ID {
			return nil, apperr.Validation("cannot change own role")
		}
		p.Role = *in.Role
		meta["role"] = *in.Role
	}

	if err := s.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	if passwordHash != "" {
		if err := s.profileRepo.UpdatePassword(ctx, id, passwordHash); err != nil {
			return nil, err
		}
	}
	if len(meta) > 0 {
		if err := s.audit(ctx, actor.ID, models.AuditUpdateUser, p.ID, meta); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Delete refuses while tasks still reference the user, and always refuses
// self-deletion.
func (s *UserService) Delete(ctx context.Context, actor *models.Profile, id uuid.UUID) error {
	if !rbac.CanManageUsers(actor.Role) {
		return apperr.Authorization("")
	}
	if id == actor.ID {
		return apperr.Validation("cannot delete own account")
	}
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("user")
	}
	n, err := s.profileRepo.CountTaskReferences(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("user is referenced by tasks and cannot be deleted")
	}
	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.audit(ctx, actor.ID, models.AuditDeleteUser, id, map[string]any{"email": p.Email})
}

// audit must succeed for the mutation to report success; the trail is not
// best-effort.
func (s *UserService) audit(ctx context.Context, actorID uuid.UUID, action string, userID uuid.UUID, meta map[string]any) error {
	err := s.auditRepo.Log(ctx, models.AuditLog{
		ActorID:    &actorID,
		Action:     action,
		EntityType: models.EntityUser,
		EntityID:   userID,
		Meta:       meta,
	})
	if err != nil {
		s.log.Error("audit log write failed", zap.String("action", action), zap.Error(err))
		return apperr.Upstream(fmt.Errorf("audit log write: %w", err))
	}
	return nil
}
