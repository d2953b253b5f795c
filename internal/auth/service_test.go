package auth

import (
	"context"
	"testing"
	"time"

	"onboarding_system/internal/domain"
	"onboarding_system/internal/password"
	"onboarding_system/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ---- helpers ----

func setupService(t *testing.T) (*Service, store.CredentialStore) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	credStore := store.NewCredentialStore(db)
	svc, err := NewService(credStore, password.NewHasher(bcrypt.MinCost), "admin", "root")
	require.NoError(t, err)
	return svc, credStore
}

// ---- fake store ----

// fakeStore records calls and returns scripted results, used to model
// timing-dependent store behavior.
type fakeStore struct {
	findErr   error
	insertErr error
	calls     int
}

func (f *fakeStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.calls++
	return nil, f.findErr
}

func (f *fakeStore) Insert(ctx context.Context, user *domain.User) error {
	f.calls++
	return f.insertErr
}

func (f *fakeStore) Latest(ctx context.Context) (*domain.User, error) {
	f.calls++
	return nil, domain.ErrNotFound
}

func (f *fakeStore) ListAll(ctx context.Context) ([]domain.User, error) {
	f.calls++
	return nil, nil
}

// ---- tests ----

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "A", "a@b.com", "GST1", "pw"))

	authed, err := svc.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, authed.Role)
	require.Equal(t, "A", authed.Identity.Name)
	require.Equal(t, "a@b.com", authed.Identity.Email)
	require.Equal(t, "GST1", authed.Identity.GSTIN)
	require.NotEmpty(t, authed.Identity.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc, credStore := setupService(t)
	ctx := context.Background()

	for _, tc := range []struct{ name, email, gstin, pw string }{
		{"", "a@b.com", "GST1", "pw"},
		{"A", "", "GST1", "pw"},
		{"A", "a@b.com", "", "pw"},
		{"A", "a@b.com", "GST1", ""},
	} {
		require.ErrorIs(t, svc.Register(ctx, tc.name, tc.email, tc.gstin, tc.pw), domain.ErrValidation)
	}

	// Validation rejects before any write
	users, err := credStore.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, credStore := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "A", "a@b.com", "GST1", "pw"))
	require.ErrorIs(t, svc.Register(ctx, "B", "a@b.com", "GST2", "other"), domain.ErrEmailTaken)

	users, err := credStore.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "A", users[0].Name)
}

func TestRegisterEmailCaseInsensitive(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "A", "A@B.com", "GST1", "pw"))
	require.ErrorIs(t, svc.Register(ctx, "B", "a@b.com", "GST2", "pw"), domain.ErrEmailTaken)

	// Login matches regardless of the case used at registration
	authed, err := svc.Login(ctx, "a@B.COM", "pw")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", authed.Identity.Email)
}

func TestRegisterRacingInsertConflict(t *testing.T) {
	// The pre-check passes but the insert loses the race: the caller
	// still sees the same conflict error as the pre-check path.
	fs := &fakeStore{findErr: domain.ErrNotFound, insertErr: domain.ErrEmailTaken}
	svc, err := NewService(fs, password.NewHasher(bcrypt.MinCost), "admin", "root")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Register(context.Background(), "A", "a@b.com", "GST1", "pw"), domain.ErrEmailTaken)
}

func TestLoginUniformFailure(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "A", "a@b.com", "GST1", "pw"))

	// Unknown email and wrong password produce the identical error
	_, unknownErr := svc.Login(ctx, "nobody@b.com", "pw")
	_, wrongPwErr := svc.Login(ctx, "a@b.com", "wrong")
	require.ErrorIs(t, unknownErr, domain.ErrBadCredentials)
	require.ErrorIs(t, wrongPwErr, domain.ErrBadCredentials)
	require.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestLoginValidation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "pw")
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.Login(ctx, "a@b.com", "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminLoginFixedPair(t *testing.T) {
	fs := &fakeStore{findErr: domain.ErrNotFound}
	svc, err := NewService(fs, password.NewHasher(bcrypt.MinCost), "admin", "root")
	require.NoError(t, err)
	fs.calls = 0 // Only count calls made by AdminLogin itself

	authed, err := svc.AdminLogin("admin", "root")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, authed.Role)
	require.Equal(t, "Admin", authed.Identity.Name)
	require.Equal(t, "admin@system.com", authed.Identity.Email)
	require.Empty(t, authed.Identity.ID)

	for _, tc := range []struct{ username, pw string }{
		{"admin", "wrong"},
		{"root", "root"},
		{"nobody", "nothing"},
	} {
		_, err := svc.AdminLogin(tc.username, tc.pw)
		require.ErrorIs(t, err, domain.ErrBadAdminCredentials)
	}

	// The admin path never touches the credential store
	require.Zero(t, fs.calls)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	svc, credStore := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "A", "a@b.com", "GST1", "pw"))

	user, err := credStore.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotEqual(t, "pw", user.PasswordHash)
	require.NotEmpty(t, user.PasswordHash)
	require.False(t, user.CreatedAt.IsZero())
	require.WithinDuration(t, time.Now(), user.CreatedAt, time.Minute)
}
