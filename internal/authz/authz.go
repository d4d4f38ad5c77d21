// internal/authz/authz.go

// Package authz is the single authorization decision point. Every resource
// service asks it before mutating state; none of them re-implement the
// membership or owner checks locally.
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorbasehq/creatorbase/internal/audit"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/google/uuid"
)

// Actor identifies the caller of a service operation. The zero Actor is the
// trusted system caller; only entry points designed for inter-service use
// accept it.
type Actor struct {
	UserID uuid.UUID
}

// User builds an Actor for an authenticated user.
func User(id uuid.UUID) Actor {
	return Actor{UserID: id}
}

// IsSystem reports whether the actor is the trusted system caller.
func (a Actor) IsSystem() bool {
	return a.UserID == uuid.Nil
}

// ref returns a pointer to the actor's user id for audit rows, nil for the
// system caller.
func (a Actor) ref() *uuid.UUID {
	if a.IsSystem() {
		return nil
	}
	id := a.UserID
	return &id
}

// Capability names an action gated by the authorizer.
type Capability string

const (
	CapOrgView   Capability = "org.view"
	CapOrgUpdate Capability = "org.update"
	CapOrgDelete Capability = "org.delete"

	CapMemberList   Capability = "member.list"
	CapMemberAdd    Capability = "member.add"
	CapMemberUpdate Capability = "member.update"
	CapMemberRemove Capability = "member.remove"
	CapOwnerTransfer Capability = "member.transfer_ownership"

	CapRoleList         Capability = "role.list"
	CapRoleCreate       Capability = "role.create"
	CapRoleUpdate       Capability = "role.update"
	CapRoleDelete       Capability = "role.delete"
	CapPermissionAssign Capability = "permission.assign"
	CapPermissionRemove Capability = "permission.remove"

	CapContentList    Capability = "content.list"
	CapContentCreate  Capability = "content.create"
	CapContentPublish Capability = "content.publish"
	CapContentDelete  Capability = "content.delete"

	CapTaskList   Capability = "task.list"
	CapTaskCreate Capability = "task.create"

	CapAuditView Capability = "audit.view"
)

// requirement classes. Owner-only capabilities never fall back to role
// permissions; permission-backed ones allow a non-owner member whose role
// carries the named catalog code.
type requirement struct {
	ownerOnly bool
	permCode  string
}

var requirements = map[Capability]requirement{
	CapOrgView:   {permCode: model.PermOrgView},
	CapOrgUpdate: {permCode: model.PermOrgUpdate},
	CapOrgDelete: {permCode: model.PermOrgDelete},

	CapMemberList:    {},
	CapMemberAdd:     {ownerOnly: true},
	CapMemberUpdate:  {ownerOnly: true},
	CapMemberRemove:  {ownerOnly: true},
	CapOwnerTransfer: {ownerOnly: true},

	CapRoleList:         {},
	CapRoleCreate:       {ownerOnly: true},
	CapRoleUpdate:       {ownerOnly: true},
	CapRoleDelete:       {ownerOnly: true},
	CapPermissionAssign: {ownerOnly: true},
	CapPermissionRemove: {ownerOnly: true},

	CapContentList:    {},
	CapContentCreate:  {},
	CapContentPublish: {ownerOnly: true},
	CapContentDelete:  {ownerOnly: true},

	CapTaskList:   {},
	CapTaskCreate: {},

	CapAuditView: {ownerOnly: true},
}

type Authorizer struct {
	memberships repository.MembershipRepositoryIface
	permissions repository.PermissionRepositoryIface
	audit       audit.Logger
}

func NewAuthorizer(
	memberships repository.MembershipRepositoryIface,
	permissions repository.PermissionRepositoryIface,
	auditLogger audit.Logger,
) *Authorizer {
	if auditLogger == nil {
		auditLogger = audit.NopLogger{}
	}
	return &Authorizer{
		memberships: memberships,
		permissions: permissions,
		audit:       auditLogger,
	}
}

// Can decides whether actor may perform cap within the organization.
// Decisions are re-evaluated on every call; nothing is cached.
func (a *Authorizer) Can(ctx context.Context, actor Actor, orgID uuid.UUID, cap Capability) error {
	err := a.decide(ctx, actor, orgID, cap)
	a.audit.Decision(orgID, actor.ref(), string(cap), err == nil, reasonOf(err))
	return err
}

func (a *Authorizer) decide(ctx context.Context, actor Actor, orgID uuid.UUID, cap Capability) error {
	if actor.IsSystem() {
		return nil
	}

	req, ok := requirements[cap]
	if !ok {
		return domain.Forbidden("unknown capability %q", cap)
	}

	membership, err := a.membershipOf(ctx, actor, orgID)
	if err != nil {
		return err
	}

	if membership.IsOwner {
		return nil
	}
	if req.ownerOnly {
		return domain.Forbidden("requires organization owner")
	}
	if req.permCode == "" {
		return nil
	}

	// Permission-backed capability: a non-owner member passes if their role
	// grants the catalog code.
	if membership.RoleID == nil {
		return domain.Forbidden("requires permission %q", req.permCode)
	}
	perms, err := a.permissions.ListByRole(ctx, *membership.RoleID)
	if err != nil {
		return domain.Internal(fmt.Errorf("loading role permissions: %w", err))
	}
	for _, p := range perms {
		if p.Code == req.permCode {
			return nil
		}
	}
	return domain.Forbidden("requires permission %q", req.permCode)
}

// CanTouchTask allows the organization owner, the task's creator, or its
// assignee to mutate or delete the task.
func (a *Authorizer) CanTouchTask(ctx context.Context, actor Actor, task *model.Task) error {
	err := a.decideTask(ctx, actor, task)
	a.audit.Decision(task.OrganizationID, actor.ref(), "task.mutate", err == nil, reasonOf(err))
	return err
}

func (a *Authorizer) decideTask(ctx context.Context, actor Actor, task *model.Task) error {
	if actor.IsSystem() {
		return nil
	}

	membership, err := a.membershipOf(ctx, actor, task.OrganizationID)
	if err != nil {
		return err
	}
	if membership.IsOwner {
		return nil
	}
	if task.CreatedByID != nil && *task.CreatedByID == actor.UserID {
		return nil
	}
	if task.AssigneeID != nil && *task.AssigneeID == membership.ID {
		return nil
	}
	return domain.Forbidden("requires owner, task creator, or assignee")
}

// CanTouchContentItem allows the organization owner or the item's creator
// to update the item. Deleting and publishing stay owner-only via Can.
func (a *Authorizer) CanTouchContentItem(ctx context.Context, actor Actor, item *model.ContentItem) error {
	err := a.decideContentItem(ctx, actor, item)
	a.audit.Decision(item.OrganizationID, actor.ref(), "content.mutate", err == nil, reasonOf(err))
	return err
}

func (a *Authorizer) decideContentItem(ctx context.Context, actor Actor, item *model.ContentItem) error {
	if actor.IsSystem() {
		return nil
	}

	membership, err := a.membershipOf(ctx, actor, item.OrganizationID)
	if err != nil {
		return err
	}
	if membership.IsOwner {
		return nil
	}
	if item.CreatedByID != nil && *item.CreatedByID == actor.UserID {
		return nil
	}
	return domain.Forbidden("requires owner or item creator")
}

// Membership resolves the actor's membership in the organization, mapping
// absence to Forbidden.
func (a *Authorizer) Membership(ctx context.Context, actor Actor, orgID uuid.UUID) (*model.Membership, error) {
	if actor.IsSystem() {
		return nil, domain.Forbidden("system caller has no membership")
	}
	return a.membershipOf(ctx, actor, orgID)
}

func (a *Authorizer) membershipOf(ctx context.Context, actor Actor, orgID uuid.UUID) (*model.Membership, error) {
	membership, err := a.memberships.FindByOrgAndUser(ctx, orgID, actor.UserID)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.Forbidden("not a member of this organization")
		}
		return nil, domain.Internal(fmt.Errorf("resolving membership: %w", err))
	}
	if !membership.Active {
		return nil, domain.Forbidden("membership is inactive")
	}
	return membership, nil
}

func reasonOf(err error) string {
	if err == nil {
		return ""
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
