package activity

import (
	"context"

	"github.com/BruksfildServices01/agenda-atividades/internal/audit"
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
)

type DeleteActivity struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewDeleteActivity(
	store domain.Store,
	audit *audit.Dispatcher,
) *DeleteActivity {
	return &DeleteActivity{
		store: store,
		audit: audit,
	}
}

func (uc *DeleteActivity) Execute(
	ctx context.Context,
	userID string,
	activityID string,
) error {

	current, err := uc.store.Get(ctx, activityID)
	if err != nil {
		return err
	}

	if err := domain.CanView(current, userID); err != nil {
		return err
	}
	if err := domain.CanModify(current, userID); err != nil {
		return err
	}

	if err := uc.store.Delete(ctx, activityID); err != nil {
		return err
	}

	dispatch(uc.audit, audit.Event{
		UserID:   &userID,
		Action:   audit.ActionActivityDeleted,
		Entity:   audit.EntityActivity,
		EntityID: &activityID,
		Metadata: map[string]any{
			"title": current.Title,
			"date":  current.Date,
		},
	})

	return nil
}
