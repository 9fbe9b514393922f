package activity

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
)

type ListVisible struct {
	store domain.Store
}

func NewListVisible(store domain.Store) *ListVisible {
	return &ListVisible{store: store}
}

// Execute lista as atividades do usuário e as públicas dos demais.
func (uc *ListVisible) Execute(
	ctx context.Context,
	userID string,
) ([]View, error) {

	acts, err := uc.store.FetchVisible(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]View, 0, len(acts))
	for _, a := range acts {
		out = append(out, NewView(a, userID))
	}
	return out, nil
}
