package calendar

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/agenda-atividades/internal/calendar"
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
)

const (
	minYear = 1
	maxYear = 9999
)

type MonthInput struct {
	UserID string
	Year   int
	Month  int
}

type BuildMonthGrid struct {
	store  domain.Store
	opts   calendar.GridOptions
	logger *slog.Logger
}

func NewBuildMonthGrid(
	store domain.Store,
	opts calendar.GridOptions,
	logger *slog.Logger,
) *BuildMonthGrid {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildMonthGrid{
		store:  store,
		opts:   opts,
		logger: logger,
	}
}

func (uc *BuildMonthGrid) Execute(
	ctx context.Context,
	in MonthInput,
) (*calendar.Grid, error) {

	if err := checkMonth(in.Year, in.Month); err != nil {
		return nil, err
	}

	idx, err := visibleIndex(ctx, uc.store, uc.logger, in.UserID)
	if err != nil {
		return nil, err
	}

	return calendar.BuildGrid(in.Year, in.Month, idx, uc.opts)
}

func checkMonth(year, month int) error {
	if month < 1 || month > 12 {
		return httperr.ErrBusiness("invalid_month")
	}
	if year < minYear || year > maxYear {
		return httperr.ErrBusiness("invalid_year")
	}
	return nil
}
