package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/creatorbasehq/creatorbase/internal/auth"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/mocks"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)

	t.Run("creates the user and returns a session token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *model.User) error {
				assert.Equal(t, "maria@example.com", u.Email)
				assert.NotEqual(t, "s3cret-pass", u.PasswordHash, "password must be stored hashed")
				u.ID = uuid.New()
				return nil
			})

		svc := service.NewUserService(userRepo, hasher, tokens)
		out, err := svc.Signup(context.Background(), service.SignupInput{
			Email:    "maria@example.com",
			Name:     "Maria",
			Password: "s3cret-pass",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)

		claims, err := tokens.Validate(out.Token)
		require.NoError(t, err)
		tokenUserID, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, out.User.ID, tokenUserID)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(userRepo, hasher, tokens)

		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email:    "maria@example.com",
			Name:     "Maria",
			Password: "short",
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})
}

func TestUserLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)

	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Email:        "maria@example.com",
		Name:         "Maria",
		PasswordHash: hash,
	}

	t.Run("correct credentials", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), user.Email).
			Return(user, nil)

		svc := service.NewUserService(userRepo, hasher, tokens)
		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "correct_password",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), user.Email).
			Return(user, nil)

		svc := service.NewUserService(userRepo, hasher, tokens)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "wrong_password",
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, domain.NotFound("user not found"))

		svc := service.NewUserService(userRepo, hasher, tokens)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})
}
