package usecase

import (
	"context"
	"errors"

	"budget-api/internal/domain/user"
	"budget-api/internal/infra"
	"budget-api/internal/pkg/errs"
	"budget-api/internal/pkg/jwt"
	"budget-api/internal/pkg/password"
	"budget-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, email, name, passwordHash string) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUser, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUser, error)
}

// TokenValidator is the slice of AuthUseCase the auth middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, credentials user.Credentials, name string) (string, *readmodel.AuthorizedUser, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUser, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUser, error)
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, credentials user.Credentials, name string) (string, *readmodel.AuthorizedUser, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return "", nil, errs.Mark(err, ErrStorageFailure)
	}

	id, err := a.userRepo.Create(ctx, credentials.Email().Value(), name, hash)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, errs.Mark(err, ErrStorageFailure)
	}

	authorized := &readmodel.AuthorizedUser{
		ID:    id,
		Email: credentials.Email().Value(),
		Name:  name,
	}

	token, err := a.jwtService.GenerateToken(id, authorized.Email)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, authorized, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUser, error) {
	authorized, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// a missing account and a wrong password are indistinguishable to callers
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(authorized.ID, authorized.Email)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, authorized, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUser, error) {
	authorized, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return authorized, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, ErrTokenValidation
	}
	return claims.UserID, nil
}
