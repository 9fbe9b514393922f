package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BruksfildServices01/agenda-atividades/internal/calendar"
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
)

// ErrFetchFailed marca falha ao buscar atividades. Nunca vira grade vazia.
var ErrFetchFailed = errors.New("fetch activities failed")

// visibleIndex busca as atividades visíveis e reagrupa tudo a cada chamada.
// Datas inválidas ficam fora do índice e são registradas no log.
func visibleIndex(
	ctx context.Context,
	store domain.Store,
	logger *slog.Logger,
	userID string,
) (calendar.ActivityIndex, error) {

	acts, err := store.FetchVisible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	idx, err := calendar.GroupByDate(acts)
	if err != nil {
		for _, e := range unjoin(err) {
			var dk *calendar.DateKeyError
			if errors.As(e, &dk) {
				logger.Warn("activity with invalid date skipped",
					slog.String("activity_id", dk.ActivityID),
					slog.String("date", dk.Key))
			}
		}
	}

	return idx, nil
}

// unjoin abre o erro de errors.Join devolvido por GroupByDate, um
// *DateKeyError por atividade descartada.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
