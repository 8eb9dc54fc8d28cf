package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewise_portal/internal/models"
)

// fakeBackend drives a Store[models.Zone, models.Zone] without HTTP.
type fakeBackend struct {
	zones     []models.Zone
	listErr   error
	createErr error
	listCalls int
}

func (f *fakeBackend) ops() Ops[models.Zone, models.Zone] {
	return Ops[models.Zone, models.Zone]{
		Name: "zones",
		ID:   func(z models.Zone) string { return z.ID },
		List: func(ctx context.Context) ([]models.Zone, error) {
			f.listCalls++
			if f.listErr != nil {
				return nil, f.listErr
			}
			return f.zones, nil
		},
		Create: func(ctx context.Context, z models.Zone) error {
			if f.createErr != nil {
				return f.createErr
			}
			z.ID = "Z999"
			f.zones = append(f.zones, z)
			return nil
		},
		Update: func(ctx context.Context, id string, z models.Zone) error { return nil },
		Delete: func(ctx context.Context, id string) error { return nil },
	}
}

func TestRefresh_ReplacesWholesale(t *testing.T) {
	backend := &fakeBackend{zones: []models.Zone{{ID: "Z001", Name: "Downtown"}}}
	s := New(backend.ops())

	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.Err())

	backend.zones = []models.Zone{{ID: "Z001"}, {ID: "Z002"}}
	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, 2, s.Len())
}

func TestRefresh_FailureEmptiesCollection(t *testing.T) {
	backend := &fakeBackend{zones: []models.Zone{{ID: "Z001"}}}
	s := New(backend.ops())
	require.NoError(t, s.Refresh(context.Background()))
	require.Equal(t, 1, s.Len())

	backend.listErr = errors.New("backend down")
	require.Error(t, s.Refresh(context.Background()))

	// Failed refresh shows an empty list plus an error, never stale rows.
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "backend down", s.Err())

	backend.listErr = nil
	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.Err(), "successful refresh clears the error")
}

func TestLoadOnce_NeverRetries(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("cold start")}
	s := New(backend.ops())

	s.LoadOnce(context.Background())
	s.LoadOnce(context.Background())
	s.LoadOnce(context.Background())

	assert.Equal(t, 1, backend.listCalls)
	assert.NotEmpty(t, s.Err())
}

func TestCreate_FetchesAfterWrite(t *testing.T) {
	backend := &fakeBackend{}
	s := New(backend.ops())
	require.NoError(t, s.Refresh(context.Background()))

	require.NoError(t, s.Create(context.Background(), models.Zone{Name: "Harbor"}))

	z, ok := s.Find("Z999")
	require.True(t, ok, "created zone must come back via the re-fetch")
	assert.Equal(t, "Harbor", z.Name)
}

func TestMutate_ReturnsOriginalError(t *testing.T) {
	wantErr := errors.New("duplicate zone")
	backend := &fakeBackend{createErr: wantErr}
	s := New(backend.ops())

	err := s.Create(context.Background(), models.Zone{Name: "Harbor"})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, "duplicate zone", s.Err())
}

func TestRefresh_CanceledContextLeavesCacheAlone(t *testing.T) {
	backend := &fakeBackend{zones: []models.Zone{{ID: "Z001"}}}
	s := New(backend.ops())
	require.NoError(t, s.Refresh(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	backend.zones = nil

	err := s.Refresh(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, s.Len(), "stale response must not be applied")
}

func TestDerivedHelpers(t *testing.T) {
	backend := &fakeBackend{zones: []models.Zone{
		{ID: "Z001", Status: "Active"},
		{ID: "Z002", Status: "Active"},
		{ID: "Z003", Status: "Inactive"},
	}}
	s := New(backend.ops())
	require.NoError(t, s.Refresh(context.Background()))

	assert.Equal(t, 2, s.CountWhere(func(z models.Zone) bool { return z.Status == "Active" }))
	assert.Equal(t, map[string]int{"Active": 2, "Inactive": 1},
		s.CountBy(func(z models.Zone) string { return z.Status }))
	assert.Equal(t, 2, s.UniqueCount(func(z models.Zone) string { return z.Status }))
	assert.Len(t, s.Filter(func(z models.Zone) bool { return z.Status == "Inactive" }), 1)

	_, ok := s.Find("Z004")
	assert.False(t, ok)
}

func TestItems_ReturnsSnapshotCopy(t *testing.T) {
	backend := &fakeBackend{zones: []models.Zone{{ID: "Z001", Name: "Downtown"}}}
	s := New(backend.ops())
	require.NoError(t, s.Refresh(context.Background()))

	snapshot := s.Items()
	snapshot[0].Name = "mutated"

	z, _ := s.Find("Z001")
	assert.Equal(t, "Downtown", z.Name)
}
