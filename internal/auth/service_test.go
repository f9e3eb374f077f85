package auth

import (
	"context"
	"testing"

	pkgAuth "github.com/angelmondragon/zencrm-backend/pkg/auth"
	"github.com/angelmondragon/zencrm-backend/pkg/config"
	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
	"github.com/angelmondragon/zencrm-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubUserRepository struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newStubUserRepository(users ...*models.User) *stubUserRepository {
	stub := &stubUserRepository{
		byEmail: map[string]*models.User{},
		byID:    map[uuid.UUID]*models.User{},
	}
	for _, user := range users {
		stub.byEmail[user.Email] = user
		stub.byID[user.ID] = user
	}
	return stub
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func testService(t *testing.T, repo userRepository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo: repo,
		JWTConfig: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "zencrm",
			ExpirationMinutes: 30,
		},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func testUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	return &models.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: mustHashPassword(t, password),
		Role:           enums.UserRoleUser,
		IsActive:       true,
	}
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil {
		t.Fatalf("expected app error, got %v", err)
	}
	if appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %s", appErr.Code())
	}
	if appErr.Message() != invalidCredentialsMessage {
		t.Fatalf("expected uniform credential message, got %q", appErr.Message())
	}
}

func TestLoginIssuesToken(t *testing.T) {
	user := testUser(t, "ada@example.com", "hunter22")
	svc := testService(t, newStubUserRepository(user))

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected bearer token type, got %q", resp.TokenType)
	}
	if resp.User == nil || resp.User.ID != user.ID {
		t.Fatal("expected user payload in response")
	}

	claims, err := pkgAuth.ParseAccessToken(config.JWTConfig{
		Secret:            "secret",
		Issuer:            "zencrm",
		ExpirationMinutes: 30,
	}, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, claims.UserID)
	}
	if claims.Role != enums.UserRoleUser {
		t.Fatalf("expected user role claim, got %s", claims.Role)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	user := testUser(t, "ada@example.com", "hunter22")
	svc := testService(t, newStubUserRepository(user))

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter23",
	})
	assertUnauthorized(t, err)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := testService(t, newStubUserRepository())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assertUnauthorized(t, err)
}

func TestLoginEmailIsCaseSensitive(t *testing.T) {
	user := testUser(t, "Ada@Example.com", "hunter22")
	svc := testService(t, newStubUserRepository(user))

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	assertUnauthorized(t, err)

	if _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Ada@Example.com  ",
		Password: "hunter22",
	}); err != nil {
		t.Fatalf("trimmed exact-case login should succeed: %v", err)
	}
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	user := testUser(t, "ada@example.com", "hunter22")
	user.IsActive = false
	svc := testService(t, newStubUserRepository(user))

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	assertUnauthorized(t, err)
}

func TestResolveReturnsActiveUser(t *testing.T) {
	user := testUser(t, "ada@example.com", "hunter22")
	svc := testService(t, newStubUserRepository(user))

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	resolved, err := svc.Resolve(context.Background(), resp.AccessToken)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("expected resolved user %s, got %s", user.ID, resolved.ID)
	}
}

func TestResolveRejectsGarbageToken(t *testing.T) {
	svc := testService(t, newStubUserRepository())
	_, err := svc.Resolve(context.Background(), "not-a-jwt")
	assertUnauthorized(t, err)
}

func TestResolveRejectsDeactivatedUser(t *testing.T) {
	user := testUser(t, "ada@example.com", "hunter22")
	repo := newStubUserRepository(user)
	svc := testService(t, repo)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	user.IsActive = false
	_, err = svc.Resolve(context.Background(), resp.AccessToken)
	assertUnauthorized(t, err)
}

func TestResolveRejectsDeletedUser(t *testing.T) {
	user := testUser(t, "ada@example.com", "hunter22")
	repo := newStubUserRepository(user)
	svc := testService(t, repo)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	delete(repo.byID, user.ID)
	_, err = svc.Resolve(context.Background(), resp.AccessToken)
	assertUnauthorized(t, err)
}
