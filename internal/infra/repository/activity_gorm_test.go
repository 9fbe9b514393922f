package repository

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
	"github.com/BruksfildServices01/agenda-atividades/internal/testutil"
)

func draft(title, date, start string, v domain.Visibility) domain.Draft {
	d := domain.Draft{Title: title, Date: date, StartTime: start, EndTime: "23:00", Visibility: v}
	d.Normalize()
	return d
}

func TestActivityRepository_FetchVisible(t *testing.T) {
	db := testutil.TestDB(t)
	repo := NewActivityGormRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob@example.com")

	mustCreate := func(d domain.Draft, owner string) {
		t.Helper()
		if _, err := repo.Create(ctx, d, owner); err != nil {
			t.Fatalf("create %s: %v", d.Title, err)
		}
	}

	mustCreate(draft("alice-private", "2025-03-10", "10:00", domain.VisibilityPrivate), alice.ID)
	mustCreate(draft("alice-public", "2025-03-10", "08:00", domain.VisibilityPublic), alice.ID)
	mustCreate(draft("bob-private", "2025-03-10", "09:00", domain.VisibilityPrivate), bob.ID)
	mustCreate(draft("bob-public", "2025-03-09", "09:00", domain.VisibilityPublic), bob.ID)

	got, err := repo.FetchVisible(ctx, alice.ID)
	if err != nil {
		t.Fatalf("FetchVisible: %v", err)
	}

	want := []string{"bob-public", "alice-public", "alice-private"}
	if len(got) != len(want) {
		t.Fatalf("FetchVisible returned %d activities, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("[%d] = %s, want %s", i, got[i].Title, title)
		}
	}
}

func TestActivityRepository_CreateAssignsIDAndOwner(t *testing.T) {
	db := testutil.TestDB(t)
	repo := NewActivityGormRepository(db)
	owner := testutil.CreateUser(t, db, "owner@example.com")

	a, err := repo.Create(context.Background(), draft("Consulta", "2025-03-10", "09:00", ""), owner.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == "" || a.UserID != owner.ID {
		t.Errorf("created = %+v", a)
	}
	if a.Visibility != string(domain.VisibilityPrivate) || a.Status != string(domain.StatusAguardandoAtendimento) {
		t.Errorf("defaults = %s / %s", a.Visibility, a.Status)
	}
}

func TestActivityRepository_UpdatePartial(t *testing.T) {
	db := testutil.TestDB(t)
	repo := NewActivityGormRepository(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner@example.com")

	a, err := repo.Create(ctx, draft("Consulta", "2025-03-10", "09:00", domain.VisibilityPrivate), owner.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "Retorno"
	status := domain.StatusConfirmado
	if err := repo.Update(ctx, a.ID, domain.Patch{Title: &title, Status: &status}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Retorno" || got.Status != "confirmado" || got.StartTime != "09:00" {
		t.Errorf("after update = %+v", got)
	}

	if err := repo.Update(ctx, "00000000-0000-0000-0000-000000000000", domain.Patch{Title: &title}); !httperr.IsBusiness(err, "activity_not_found") {
		t.Errorf("update missing err = %v", err)
	}
}

func TestActivityRepository_Delete(t *testing.T) {
	db := testutil.TestDB(t)
	repo := NewActivityGormRepository(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner@example.com")

	a, err := repo.Create(ctx, draft("Consulta", "2025-03-10", "09:00", domain.VisibilityPrivate), owner.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, a.ID); !httperr.IsBusiness(err, "activity_not_found") {
		t.Errorf("get after delete err = %v", err)
	}
	if err := repo.Delete(ctx, a.ID); !httperr.IsBusiness(err, "activity_not_found") {
		t.Errorf("second delete err = %v", err)
	}
}
