package activity

import (
	"context"

	"github.com/BruksfildServices01/agenda-atividades/internal/audit"
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
)

// ======================================================
// INPUT
// ======================================================

type CreateActivityInput struct {
	UserID string
	Draft  domain.Draft
}

// ======================================================
// USE CASE
// ======================================================

type CreateActivity struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewCreateActivity(
	store domain.Store,
	audit *audit.Dispatcher,
) *CreateActivity {
	return &CreateActivity{
		store: store,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateActivity) Execute(
	ctx context.Context,
	in CreateActivityInput,
) (*View, error) {

	// --------------------------------------------------
	// 1️⃣ Formulário
	// --------------------------------------------------
	draft := in.Draft
	draft.Normalize()

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Persistência
	// --------------------------------------------------
	created, err := uc.store.Create(ctx, draft, in.UserID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	dispatch(uc.audit, audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionActivityCreated,
		Entity:   audit.EntityActivity,
		EntityID: &created.ID,
		Metadata: map[string]any{
			"date":       created.Date,
			"visibility": created.Visibility,
		},
	})

	v := NewView(*created, in.UserID)
	return &v, nil
}

func dispatch(d *audit.Dispatcher, ev audit.Event) {
	if d != nil {
		d.Dispatch(ev)
	}
}
