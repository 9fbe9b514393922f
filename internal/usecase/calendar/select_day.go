package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/agenda-atividades/internal/calendar"
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
)

type SelectDay struct {
	store  domain.Store
	loc    *time.Location
	logger *slog.Logger
}

func NewSelectDay(
	store domain.Store,
	loc *time.Location,
	logger *slog.Logger,
) *SelectDay {
	if logger == nil {
		logger = slog.Default()
	}
	return &SelectDay{
		store:  store,
		loc:    loc,
		logger: logger,
	}
}

// Execute emite a seleção de um dia: a data e as atividades dela.
func (uc *SelectDay) Execute(
	ctx context.Context,
	userID string,
	dateKey string,
) (calendar.Selection, error) {

	if !calendar.ValidDateKey(dateKey) {
		return calendar.Selection{}, httperr.ErrBusiness("invalid_date")
	}

	idx, err := visibleIndex(ctx, uc.store, uc.logger, userID)
	if err != nil {
		return calendar.Selection{}, err
	}

	return calendar.SelectDay(dateKey, idx, uc.loc)
}
