package activity

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
)

type GetActivity struct {
	store domain.Store
}

func NewGetActivity(store domain.Store) *GetActivity {
	return &GetActivity{store: store}
}

func (uc *GetActivity) Execute(
	ctx context.Context,
	userID string,
	activityID string,
) (*View, error) {

	a, err := uc.store.Get(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanView(a, userID); err != nil {
		return nil, err
	}

	v := NewView(*a, userID)
	return &v, nil
}
