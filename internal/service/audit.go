// internal/service/audit.go
package service

import (
	"context"

	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/google/uuid"
)

type AuditService struct {
	auditRepo repository.AuditLogRepositoryIface
	authz     *authz.Authorizer
}

func NewAuditService(auditRepo repository.AuditLogRepositoryIface, authorizer *authz.Authorizer) *AuditService {
	return &AuditService{auditRepo: auditRepo, authz: authorizer}
}

// List returns an organization's authorization decision trail, owner only.
func (s *AuditService) List(ctx context.Context, actor authz.Actor, orgID uuid.UUID, pg repository.Pagination) ([]*model.AuditLog, int64, error) {
	if err := s.authz.Can(ctx, actor, orgID, authz.CapAuditView); err != nil {
		return nil, 0, err
	}
	entries, count, err := s.auditRepo.ListByOrganization(ctx, orgID, pg)
	if err != nil {
		return nil, 0, asDomain(err)
	}
	return entries, count, nil
}
