package activity

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/agenda-atividades/internal/audit"
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
)

type UpdateActivityInput struct {
	UserID     string
	ActivityID string
	Patch      domain.Patch
}

type UpdateActivity struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewUpdateActivity(
	store domain.Store,
	audit *audit.Dispatcher,
) *UpdateActivity {
	return &UpdateActivity{
		store: store,
		audit: audit,
	}
}

func (uc *UpdateActivity) Execute(
	ctx context.Context,
	in UpdateActivityInput,
) (*View, error) {

	if in.Patch.Empty() {
		return nil, httperr.ErrBusiness("empty_patch")
	}

	current, err := uc.store.Get(ctx, in.ActivityID)
	if err != nil {
		return nil, err
	}

	// atividade privada de outro usuário não existe para quem pergunta
	if err := domain.CanView(current, in.UserID); err != nil {
		return nil, err
	}
	if err := domain.CanModify(current, in.UserID); err != nil {
		return nil, err
	}

	if err := in.Patch.Validate(*current); err != nil {
		return nil, err
	}

	if err := uc.store.Update(ctx, in.ActivityID, in.Patch); err != nil {
		return nil, err
	}

	fields := make([]string, 0, 7)
	for col := range in.Patch.Columns() {
		fields = append(fields, col)
	}
	sort.Strings(fields)

	dispatch(uc.audit, audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionActivityUpdated,
		Entity:   audit.EntityActivity,
		EntityID: &in.ActivityID,
		Metadata: map[string]any{"fields": fields},
	})

	updated, err := uc.store.Get(ctx, in.ActivityID)
	if err != nil {
		return nil, err
	}

	v := NewView(*updated, in.UserID)
	return &v, nil
}
