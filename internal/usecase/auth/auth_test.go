package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	trainerdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-marketplace/internal/lock"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

type fixture struct {
	dir      string
	users    domain.Repository
	trainers trainerdomain.Repository
	register *Register
	login    *Login
}

func newFixture(t *testing.T, checkDomain func(string) bool) *fixture {
	t.Helper()
	dir := t.TempDir()
	locker := lock.NewLocal()

	users := repository.NewUserCollectionRepository(
		storage.NewJSONFile[models.User](dir, "users"),
		locker,
	)
	trainers := repository.NewTrainerCollectionRepository(
		storage.NewJSONFile[models.Trainer](dir, "trainers"),
		locker,
	)
	d := audit.NewDispatcher()
	t.Cleanup(d.Close)

	register := NewRegister(users, trainers, d, checkDomain)
	register.cost = bcrypt.MinCost

	return &fixture{
		dir:      dir,
		users:    users,
		trainers: trainers,
		register: register,
		login:    NewLogin(users),
	}
}

func TestRegister_NormalizesEmailAndHashesPassword(t *testing.T) {
	f := newFixture(t, nil)

	u, err := f.register.Execute(context.Background(), RegisterInput{
		Name:     " Ana ",
		Email:    "  Ana@Example.COM ",
		Password: "Secret123",
		Role:     "client",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.NotEqual(t, "Secret123", u.PasswordHash)
	assert.Equal(t, models.RoleClient, u.Role)

	_, err = f.trainers.GetByID(context.Background(), u.ID)
	assert.ErrorIs(t, err, trainerdomain.ErrNotFound)
}

func TestRegister_TrainerGetsProfile(t *testing.T) {
	f := newFixture(t, nil)

	u, err := f.register.Execute(context.Background(), RegisterInput{
		Name:     "Carlos",
		Email:    "carlos@example.com",
		Password: "Secret123",
		Role:     "trainer",
	})
	require.NoError(t, err)

	profile, err := f.trainers.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carlos", profile.Name)
}

// failingTrainers rejects profile writes while failing is set.
type failingTrainers struct {
	trainerdomain.Repository
	failing bool
}

func (f *failingTrainers) Save(ctx context.Context, t *models.Trainer) error {
	if f.failing {
		return errors.New("disk full")
	}
	return f.Repository.Save(ctx, t)
}

func TestRegister_ProfileFailureRemovesUser(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	trainers := &failingTrainers{Repository: f.trainers, failing: true}
	d := audit.NewDispatcher()
	t.Cleanup(d.Close)
	register := NewRegister(f.users, trainers, d, nil)
	register.cost = bcrypt.MinCost

	in := RegisterInput{
		Name: "Carlos", Email: "carlos@example.com", Password: "Secret123", Role: "trainer",
	}

	_, err := register.Execute(ctx, in)
	assert.EqualError(t, err, "disk full")

	_, err = f.users.GetByEmail(ctx, "carlos@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	trainers.failing = false
	u, err := register.Execute(ctx, in)
	require.NoError(t, err)

	profile, err := f.trainers.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carlos", profile.Name)
}

func TestRegister_DuplicateEmailLeavesUsersUnchanged(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "Secret123", Role: "client",
	})
	require.NoError(t, err)

	path := filepath.Join(f.dir, "users.json")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = f.register.Execute(ctx, RegisterInput{
		Name: "Other", Email: "ANA@example.com", Password: "Secret456", Role: "trainer",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRegister_RejectsRoleAndDomain(t *testing.T) {
	f := newFixture(t, func(string) bool { return false })
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "Secret123", Role: "admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	_, err = f.register.Execute(ctx, RegisterInput{
		Name: "Ana", Email: "ana@nowhere.invalid", Password: "Secret123", Role: "client",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEmailDomain)
}

func TestLogin(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	registered, err := f.register.Execute(ctx, RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "Secret123", Role: "client",
	})
	require.NoError(t, err)

	u, err := f.login.Execute(ctx, " ANA@example.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	_, err = f.login.Execute(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.login.Execute(ctx, "nobody@example.com", "Secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
