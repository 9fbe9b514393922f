package audit

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/agenda-atividades/internal/testutil"
)

func TestLogger_LogAndList(t *testing.T) {
	db := testutil.TestDB(t)
	l := New(db)
	ctx := context.Background()

	alice := "alice"
	bob := "bob"
	entity := "act-1"

	events := []Event{
		{UserID: &alice, Action: ActionActivityCreated, Entity: EntityActivity, EntityID: &entity, Metadata: map[string]any{"date": "2025-03-10"}},
		{UserID: &alice, Action: ActionActivityUpdated, Entity: EntityActivity, EntityID: &entity},
		{UserID: &bob, Action: ActionActivityCreated, Entity: EntityActivity},
	}
	for _, ev := range events {
		if err := l.Log(ctx, ev); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	logs, total, err := l.List(ctx, Filter{UserID: alice, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(logs) != 2 {
		t.Fatalf("alice logs = %d (total %d), want 2", len(logs), total)
	}
	if logs[0].Action != ActionActivityUpdated {
		t.Errorf("newest first: got %s", logs[0].Action)
	}
	if logs[1].Metadata != `{"date":"2025-03-10"}` {
		t.Errorf("metadata = %q", logs[1].Metadata)
	}

	filtered, total, err := l.List(ctx, Filter{UserID: alice, Action: ActionActivityCreated, Limit: 10})
	if err != nil || total != 1 || len(filtered) != 1 {
		t.Errorf("filtered = %d (total %d), %v", len(filtered), total, err)
	}
}
