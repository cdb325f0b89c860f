package trainer

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	"github.com/BruksfildServices01/trainer-marketplace/internal/avatar"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-marketplace/internal/lock"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

type fixture struct {
	repo   domain.Repository
	search *SearchTrainers
	get    *GetTrainer
	update *UpdateTrainerProfile
	upload *UploadAvatar
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	locker := lock.NewLocal()
	ctx := context.Background()

	users := repository.NewUserCollectionRepository(
		storage.NewJSONFile[models.User](dir, "users"),
		locker,
	)
	for _, u := range []models.User{
		{ID: "t1", Name: "Carlos", Email: "carlos@example.com", Role: models.RoleTrainer},
		{ID: "t2", Name: "Marta", Email: "marta@example.com", Role: models.RoleTrainer},
		{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: models.RoleClient},
	} {
		u := u
		require.NoError(t, users.Create(ctx, &u))
	}

	repo := repository.NewTrainerCollectionRepository(
		storage.NewJSONFile[models.Trainer](dir, "trainers"),
		locker,
	)
	require.NoError(t, repo.Save(ctx, &models.Trainer{UserID: "t1", Name: "Carlos", Specialties: []string{}}))

	d := audit.NewDispatcher()
	t.Cleanup(d.Close)

	return &fixture{
		repo:   repo,
		search: NewSearchTrainers(repo),
		get:    NewGetTrainer(repo),
		update: NewUpdateTrainerProfile(repo, users, d),
		upload: NewUploadAvatar(repo, avatar.NewLocalStore(filepath.Join(dir, "avatars"), "/avatars"), d),
	}
}

func profile() domain.Profile {
	return domain.Profile{
		Specialties:     []string{"Strength", "Mobility"},
		Location:        "Madrid",
		PricePerSession: 35,
		ExperienceYears: 6,
		Bio:             "Certified coach focused on strength and mobility.",
	}
}

func TestUpdateTrainerProfile_UpdatesExisting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.update.Execute(ctx, "t1", profile())
	require.NoError(t, err)
	assert.Equal(t, "Carlos", got.Name)
	assert.Equal(t, "Madrid", got.Location)
	assert.Equal(t, []string{"Strength", "Mobility"}, got.Specialties)

	stored, err := f.get.Execute(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 35.0, stored.PricePerSession)
}

func TestUpdateTrainerProfile_CreatesMissingProfile(t *testing.T) {
	f := newFixture(t)

	got, err := f.update.Execute(context.Background(), "t2", profile())
	require.NoError(t, err)
	assert.Equal(t, "Marta", got.Name)

	all, err := f.repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateTrainerProfile_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.update.Execute(ctx, "u1", profile())
	assert.ErrorIs(t, err, domain.ErrNotTrainer)

	bad := profile()
	bad.PricePerSession = 500
	_, err = f.update.Execute(ctx, "t1", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	stored, err := f.get.Execute(ctx, "t1")
	require.NoError(t, err)
	assert.Zero(t, stored.PricePerSession)
}

func TestSearchTrainers_FiltersAndSortsByRating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Save(ctx, &models.Trainer{
		UserID: "t2", Name: "Marta", Location: "Barcelona",
		Specialties: []string{"Yoga"}, PricePerSession: 40, Rating: 4.9,
	}))
	require.NoError(t, f.repo.Save(ctx, &models.Trainer{
		UserID: "t3", Name: "Luis", Location: "Madrid",
		Specialties: []string{"Yoga", "Pilates"}, PricePerSession: 25, Rating: 4.2,
	}))

	yoga, err := f.search.Execute(ctx, domain.Filter{Specialty: "yoga"})
	require.NoError(t, err)
	require.Len(t, yoga, 2)
	assert.Equal(t, "t2", yoga[0].UserID)
	assert.Equal(t, "t3", yoga[1].UserID)

	cheap, err := f.search.Execute(ctx, domain.Filter{Query: "madrid", MaxPrice: 30})
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "t3", cheap[0].UserID)
}

func TestGetTrainer_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.get.Execute(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUploadAvatar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 400, 400))))

	got, err := f.upload.Execute(ctx, "t1", &buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.AvatarURL, "/avatars/t1.webp?v="), got.AvatarURL)

	_, err = f.upload.Execute(ctx, "t1", strings.NewReader("not an image"))
	assert.ErrorIs(t, err, domain.ErrInvalidImage)

	_, err = f.upload.Execute(ctx, "t2", strings.NewReader("irrelevant"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
