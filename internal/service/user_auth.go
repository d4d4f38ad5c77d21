// internal/service/user_auth.go
package service

import (
	"context"

	"github.com/creatorbasehq/creatorbase/internal/auth"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/go-playground/validator/v10"
)

// UserService is the session collaborator: it turns credentials into a
// signed session token. Everything downstream only sees the user id the
// middleware extracts from that token.
type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Password string `json:"password" validate:"required,min=8"`
}

type SessionOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SessionOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, domain.Internal(err)
	}

	user := &model.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, asDomain(err)
	}

	token, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return &SessionOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*SessionOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.Unauthorized("invalid credentials")
		}
		return nil, asDomain(err)
	}

	ok, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if !ok {
		return nil, domain.Unauthorized("invalid credentials")
	}

	token, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return &SessionOutput{User: user, Token: token}, nil
}
