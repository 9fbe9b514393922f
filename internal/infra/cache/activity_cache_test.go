package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

// fakeStore conta chamadas de leitura para provar os acertos de cache.
type fakeStore struct {
	acts    []models.Activity
	fetches int
	failErr error
}

func (f *fakeStore) FetchVisible(ctx context.Context, userID string) ([]models.Activity, error) {
	f.fetches++
	if f.failErr != nil {
		return nil, f.failErr
	}
	out := make([]models.Activity, len(f.acts))
	copy(out, f.acts)
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (*models.Activity, error) {
	for i := range f.acts {
		if f.acts[i].ID == id {
			a := f.acts[i]
			return &a, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeStore) Create(ctx context.Context, d domain.Draft, ownerID string) (*models.Activity, error) {
	a := d.Model(ownerID)
	a.ID = d.Title
	f.acts = append(f.acts, *a)
	return a, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, p domain.Patch) error {
	for i := range f.acts {
		if f.acts[i].ID == id {
			f.acts[i] = p.Apply(f.acts[i])
		}
	}
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	for i := range f.acts {
		if f.acts[i].ID == id {
			f.acts = append(f.acts[:i], f.acts[i+1:]...)
			return nil
		}
	}
	return nil
}

func newCache(t *testing.T, store domain.Store) (*ActivityCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewActivityCache(store, client, time.Minute, nil), mr
}

func TestActivityCache_HitAfterFirstFetch(t *testing.T) {
	store := &fakeStore{acts: []models.Activity{{ID: "a", Title: "Consulta", Date: "2025-03-10", Visibility: "public"}}}
	c, _ := newCache(t, store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := c.FetchVisible(ctx, "user-1")
		if err != nil {
			t.Fatalf("FetchVisible: %v", err)
		}
		if len(got) != 1 || got[0].Title != "Consulta" {
			t.Fatalf("got %+v", got)
		}
	}
	if store.fetches != 1 {
		t.Errorf("store fetched %d times, want 1", store.fetches)
	}

	// cada usuário tem sua própria entrada
	if _, err := c.FetchVisible(ctx, "user-2"); err != nil {
		t.Fatal(err)
	}
	if store.fetches != 2 {
		t.Errorf("store fetched %d times, want 2", store.fetches)
	}
}

func TestActivityCache_WritesInvalidateEveryUser(t *testing.T) {
	store := &fakeStore{}
	c, _ := newCache(t, store)
	ctx := context.Background()

	if _, err := c.FetchVisible(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.FetchVisible(ctx, "user-2"); err != nil {
		t.Fatal(err)
	}

	d := domain.Draft{Title: "nova", Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00", Visibility: domain.VisibilityPublic}
	if _, err := c.Create(ctx, d, "user-1"); err != nil {
		t.Fatal(err)
	}

	got, err := c.FetchVisible(ctx, "user-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("user-2 sees %d activities after create, want 1 (stale cache)", len(got))
	}

	if err := c.Delete(ctx, "nova"); err != nil {
		t.Fatal(err)
	}
	got, _ = c.FetchVisible(ctx, "user-1")
	if len(got) != 0 {
		t.Errorf("user-1 sees %d activities after delete, want 0", len(got))
	}
}

func TestActivityCache_FetchErrorIsNotCached(t *testing.T) {
	store := &fakeStore{failErr: errors.New("db down")}
	c, _ := newCache(t, store)
	ctx := context.Background()

	if _, err := c.FetchVisible(ctx, "user-1"); err == nil {
		t.Fatal("expected fetch error")
	}

	store.failErr = nil
	if _, err := c.FetchVisible(ctx, "user-1"); err != nil {
		t.Fatalf("after recovery: %v", err)
	}
	if store.fetches != 2 {
		t.Errorf("fetches = %d, want 2", store.fetches)
	}
}

func TestActivityCache_RedisDownFallsThrough(t *testing.T) {
	store := &fakeStore{acts: []models.Activity{{ID: "a", Date: "2025-03-10"}}}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	c := NewActivityCache(store, client, time.Minute, nil)

	got, err := c.FetchVisible(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("FetchVisible with redis down: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d activities, want 1", len(got))
	}
}
