// internal/service/auth/auth_test.go
package auth

import (
	"context"
	"testing"

	"fleetflow-service/internal/domain/user"
	xerrors "fleetflow-service/internal/pkg/errors"
	"fleetflow-service/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by email
}

func newFakeUserRepo(us ...user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range us {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if u.ID == "" {
		u.ID = "usr-new"
	}
	r.users[u.Email] = *u
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, xerrors.NotFoundf("user %s not found", id)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, xerrors.NotFoundf("user with email %s not found", email)
	}
	return &u, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func testJWTManager(t *testing.T) *jwt.Manager {
	t.Helper()
	m, err := jwt.NewManager(jwt.Config{Secret: "test-secret"})
	require.NoError(t, err)
	return m
}

func storedUser(t *testing.T, email, password string, active bool) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return user.User{
		ID:           "usr-1",
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Grace",
		LastName:     "Otieno",
		Role:         user.RoleManager,
		IsActive:     active,
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWTManager(t), nil, zap.NewNop())

	resp, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email:     "  Grace@FleetFlow.io ",
		Password:  "correct-horse",
		FirstName: "Grace",
		LastName:  "Otieno",
		Role:      "MANAGER",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "grace@fleetflow.io", resp.User.Email)
	assert.True(t, resp.User.IsActive)

	// The stored hash verifies against the original password.
	stored := repo.users["grace@fleetflow.io"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo(storedUser(t, "grace@fleetflow.io", "pw", true))
	svc := NewAuthService(repo, testJWTManager(t), nil, zap.NewNop())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email:     "grace@fleetflow.io",
		Password:  "another-pass",
		FirstName: "Grace",
		LastName:  "Otieno",
		Role:      "MANAGER",
	})
	require.Error(t, err)
	assert.True(t, xerrors.IsKind(err, xerrors.KindConflict))
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTManager(t), nil, zap.NewNop())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email:     "grace@fleetflow.io",
		Password:  "correct-horse",
		FirstName: "Grace",
		LastName:  "Otieno",
		Role:      "ADMIN",
	})
	require.Error(t, err)
	assert.True(t, xerrors.IsKind(err, xerrors.KindInvalidInput))
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo(storedUser(t, "grace@fleetflow.io", "correct-horse", true))
	mgr := testJWTManager(t)
	svc := NewAuthService(repo, mgr, nil, zap.NewNop())

	resp, err := svc.Login(context.Background(), "203.0.113.7", &user.LoginRequest{
		Email:    "Grace@FleetFlow.io",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	claims, err := mgr.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "usr-1", claims.UserID)
	assert.Equal(t, "MANAGER", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo(storedUser(t, "grace@fleetflow.io", "correct-horse", true))
	svc := NewAuthService(repo, testJWTManager(t), nil, zap.NewNop())

	_, err := svc.Login(context.Background(), "203.0.113.7", &user.LoginRequest{
		Email:    "grace@fleetflow.io",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, xerrors.IsKind(err, xerrors.KindUnauthorized))
}

func TestLoginUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTManager(t), nil, zap.NewNop())

	_, err := svc.Login(context.Background(), "203.0.113.7", &user.LoginRequest{
		Email:    "nobody@fleetflow.io",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.True(t, xerrors.IsKind(err, xerrors.KindUnauthorized))
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLoginDeactivatedAccount(t *testing.T) {
	repo := newFakeUserRepo(storedUser(t, "grace@fleetflow.io", "correct-horse", false))
	svc := NewAuthService(repo, testJWTManager(t), nil, zap.NewNop())

	_, err := svc.Login(context.Background(), "203.0.113.7", &user.LoginRequest{
		Email:    "grace@fleetflow.io",
		Password: "correct-horse",
	})
	require.Error(t, err)
	assert.True(t, xerrors.IsKind(err, xerrors.KindForbidden))
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepo(storedUser(t, "grace@fleetflow.io", "pw", true))
	svc := NewAuthService(repo, testJWTManager(t), nil, zap.NewNop())

	u, err := svc.Me(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.Equal(t, "grace@fleetflow.io", u.Email)

	_, err = svc.Me(context.Background(), "usr-404")
	require.Error(t, err)
	assert.True(t, xerrors.IsKind(err, xerrors.KindNotFound))
}
