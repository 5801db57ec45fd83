package usecase

import (
	"context"
	"testing"
	"time"

	"budget-api/internal/domain/user"
	"budget-api/internal/infra"
	"budget-api/internal/pkg/jwt"
	"budget-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*storedUser
}

type storedUser struct {
	id   uuid.UUID
	name string
	hash string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*storedUser)}
}

func (f *fakeUserRepo) Create(_ context.Context, email, name, passwordHash string) (uuid.UUID, error) {
	if _, exists := f.byEmail[email]; exists {
		return uuid.Nil, infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	id := uuid.New()
	f.byEmail[email] = &storedUser{id: id, name: name, hash: passwordHash}
	return id, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*readmodel.AuthorizedUser, string, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &readmodel.AuthorizedUser{ID: u.id, Email: email, Name: u.name}, u.hash, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.AuthorizedUser, error) {
	for email, u := range f.byEmail {
		if u.id == id {
			return &readmodel.AuthorizedUser{ID: u.id, Email: email, Name: u.name}, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func mustCredentials(t *testing.T, email, password string) user.Credentials {
	t.Helper()
	creds, err := user.NewCredentials(email, password)
	require.NoError(t, err)
	return creds
}

func newAuthFixture() AuthUseCase {
	return NewAuthUseCase(newFakeUserRepo(), jwt.NewService("test-secret", time.Hour))
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()
	creds := mustCredentials(t, "alice@example.com", "password123")

	t.Run("issues a token for a new account", func(t *testing.T) {
		uc := newAuthFixture()

		token, authorized, err := uc.Register(ctx, creds, "Alice")
		require.NoError(t, err)
		require.NotNil(t, authorized)
		assert.Equal(t, "alice@example.com", authorized.Email)
		assert.Equal(t, "Alice", authorized.Name)

		userID, err := uc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, authorized.ID, userID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc := newAuthFixture()

		_, _, err := uc.Register(ctx, creds, "Alice")
		require.NoError(t, err)

		_, _, err = uc.Register(ctx, creds, "Alice Again")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	creds := mustCredentials(t, "bob@example.com", "password123")

	uc := newAuthFixture()
	_, registered, err := uc.Register(ctx, creds, "Bob")
	require.NoError(t, err)

	t.Run("valid credentials round-trip", func(t *testing.T) {
		token, authorized, err := uc.Login(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, authorized.ID)

		userID, err := uc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := uc.Login(ctx, mustCredentials(t, "bob@example.com", "wrong-password"))
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown account is indistinguishable from wrong password", func(t *testing.T) {
		_, _, err := uc.Login(ctx, mustCredentials(t, "nobody@example.com", "password123"))
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthUseCase_ValidateToken(t *testing.T) {
	uc := newAuthFixture()

	_, err := uc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenValidation)
}
