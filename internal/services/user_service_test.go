package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/apperr"
	"github.com/opsboard/backend/internal/repositories"
)

// A short password must be rejected before the profile row is touched. The
// service here has no store, so reaching it would panic instead of failing
// the assertion.
func TestUserUpdateRejectsShortPasswordBeforeWrite(t *testing.T) {
	s := &UserService{}
	actor := adminActor()

	short := "1234567"
	_, err := s.Update(context.Background(), actor, uuid.New(), UpdateUserInput{Password: &short})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestUserAuditFailureSurfaces(t *testing.T) {
	s := &UserService{auditRepo: repositories.NewAuditRepo(nil), log: zap.NewNop()}

	err := s.audit(context.Background(), uuid.New(), "not_an_action", uuid.New(), nil)
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("err = %v, want upstream", err)
	}
}
