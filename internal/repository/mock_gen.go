// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./membership.go -destination=../mocks/mock_membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -source=./role.go -destination=../mocks/mock_role_repository.go -package=mocks RoleRepositoryIface
//go:generate mockgen -source=./permission.go -destination=../mocks/mock_permission_repository.go -package=mocks PermissionRepositoryIface
//go:generate mockgen -source=./content_item.go -destination=../mocks/mock_content_item_repository.go -package=mocks ContentItemRepositoryIface
//go:generate mockgen -source=./task.go -destination=../mocks/mock_task_repository.go -package=mocks TaskRepositoryIface
//go:generate mockgen -source=./audit_log.go -destination=../mocks/mock_audit_log_repository.go -package=mocks AuditLogRepositoryIface
