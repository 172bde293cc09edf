package owner_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/diegorozoc/million/internal/fixtures"
	ownerdomain "github.com/diegorozoc/million/pkg/domain/owner"
	"github.com/diegorozoc/million/pkg/repository"
	ownersvc "github.com/diegorozoc/million/pkg/service/owner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*ownersvc.Service, *fixtures.OwnerRepository) {
	t.Helper()
	repo := fixtures.NewOwnerRepository()
	return ownersvc.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func createInput() ownersvc.CreateInput {
	return ownersvc.CreateInput{
		Name:       "Jane Smith",
		Street:     "456 Ocean Drive",
		City:       "Miami",
		PostalCode: "33101",
		Country:    "USA",
		BirthDate:  time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("registers and persists", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		o, err := svc.Create(context.Background(), createInput())
		require.NoError(t, err)

		stored, err := repo.GetByID(context.Background(), o.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", stored.Name)
	})

	t.Run("future birth date rejected", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		in := createInput()
		in.BirthDate = time.Now().UTC().AddDate(1, 0, 0)
		_, err := svc.Create(context.Background(), in)
		require.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	o, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	name := "Jane Doe"
	photo := "https://cdn.million.com/owners/jane.jpg"
	updated, err := svc.Update(context.Background(), o.ID,
		ownersvc.UpdateInput{Name: &name, PhotoURL: &photo})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, photo, updated.PhotoURL)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	t.Run("removes an owner without properties", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		o, err := svc.Create(context.Background(), createInput())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), o.ID))
		_, err = repo.GetByID(context.Background(), o.ID)
		require.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("keeps an owner still holding properties", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		o, err := svc.Create(context.Background(), createInput())
		require.NoError(t, err)
		require.NoError(t, o.AddProperty(uuid.New()))

		err = svc.Delete(context.Background(), o.ID)
		require.ErrorIs(t, err, ownersvc.ErrHasProperties)
	})
}

func TestGetAll(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	_, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSearch(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	jane := createInput()
	_, err := svc.Create(context.Background(), jane)
	require.NoError(t, err)

	teen := createInput()
	teen.Name = "Tim Young"
	teen.BirthDate = time.Now().UTC().AddDate(-16, 0, -1)
	_, err = svc.Create(context.Background(), teen)
	require.NoError(t, err)

	adults, err := svc.Search(context.Background(), ownerdomain.Filter{AdultsOnly: true})
	require.NoError(t, err)
	require.Len(t, adults, 1)
	assert.Equal(t, "Jane Smith", adults[0].Name)

	byName, err := svc.Search(context.Background(), ownerdomain.Filter{Name: "young"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Tim Young", byName[0].Name)
}
