package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/repository"
	"voyago/travel-planner/internal/service"
)

// mockUserRepo is a hand-written test double for repository.UserRepository.
type mockUserRepo struct {
	create     func(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	getByEmail func(ctx context.Context, email string) (*domain.User, error)
	getByID    func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	return m.create(ctx, user)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return m.getByID(ctx, id)
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

const testJWTSecret = "test-secret-not-for-production"

func TestAuthService_Register_NewUser(t *testing.T) {
	userID := primitive.NewObjectID()
	var storedHash string

	repo := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, repository.ErrNotFound
		},
		create: func(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
			storedHash = user.PasswordHash
			return userID, nil
		},
	}
	svc := service.NewAuthService(repo, testJWTSecret, time.Hour)

	user, err := svc.Register(context.Background(), "ada@example.com", "correct horse", "Ada", "")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	// Never echo the hash back to callers.
	assert.Empty(t, user.PasswordHash)
	// The repository received a bcrypt hash, not the raw password.
	assert.NotEqual(t, "correct horse", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("correct horse")))
}

func TestAuthService_Register_StoresPhotoURL(t *testing.T) {
	var storedPhotoURL string

	repo := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, repository.ErrNotFound
		},
		create: func(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
			storedPhotoURL = user.PhotoURL
			return primitive.NewObjectID(), nil
		},
	}
	svc := service.NewAuthService(repo, testJWTSecret, time.Hour)

	user, err := svc.Register(context.Background(), "ada@example.com", "password123", "Ada", "https://cdn.example.com/ada.png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/ada.png", storedPhotoURL)
	assert.Equal(t, "https://cdn.example.com/ada.png", user.PhotoURL)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{Email: "ada@example.com"}, nil
		},
	}
	svc := service.NewAuthService(repo, testJWTSecret, time.Hour)

	_, err := svc.Register(context.Background(), "ada@example.com", "password123", "Ada", "")

	assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
}

func TestAuthService_Register_DuplicateRaceOnInsert(t *testing.T) {
	repo := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, repository.ErrNotFound
		},
		create: func(_ context.Context, _ *domain.User) (primitive.ObjectID, error) {
			return primitive.NilObjectID, repository.ErrDuplicate
		},
	}
	svc := service.NewAuthService(repo, testJWTSecret, time.Hour)

	_, err := svc.Register(context.Background(), "ada@example.com", "password123", "Ada", "")

	assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepo{
		getByEmail: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:           primitive.NewObjectID(),
				Email:        email,
				PasswordHash: string(hash),
			}, nil
		},
	}
	svc := service.NewAuthService(repo, testJWTSecret, time.Hour)

	token, user, err := svc.Login(context.Background(), "ada@example.com", "password123")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, user)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepo{
		getByEmail: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := service.NewAuthService(repo, testJWTSecret, time.Hour)

	_, user, err := svc.Login(context.Background(), "ada@example.com", "wrong")

	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
	assert.Nil(t, user)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := service.NewAuthService(repo, testJWTSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")

	// Unknown email and wrong password are indistinguishable to callers.
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

func TestAuthService_GetUserByID_BadHex(t *testing.T) {
	svc := service.NewAuthService(&mockUserRepo{}, testJWTSecret, time.Hour)

	_, err := svc.GetUserByID(context.Background(), "not-a-hex-id")

	assert.ErrorIs(t, err, service.ErrInvalidID)
}
