package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/agenda-atividades/internal/calendar"
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/ics"
	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

type ExportMonth struct {
	store  domain.Store
	opts   calendar.GridOptions
	logger *slog.Logger
}

func NewExportMonth(
	store domain.Store,
	opts calendar.GridOptions,
	logger *slog.Logger,
) *ExportMonth {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportMonth{
		store:  store,
		opts:   opts,
		logger: logger,
	}
}

// Execute gera o iCalendar das atividades visíveis no mês, dia a dia.
func (uc *ExportMonth) Execute(
	ctx context.Context,
	in MonthInput,
) (string, error) {

	if err := checkMonth(in.Year, in.Month); err != nil {
		return "", err
	}

	idx, err := visibleIndex(ctx, uc.store, uc.logger, in.UserID)
	if err != nil {
		return "", err
	}

	loc := uc.opts.Location
	if loc == nil {
		loc = time.Local
	}

	days, err := calendar.MonthDays(in.Year, in.Month, loc)
	if err != nil {
		return "", err
	}

	var acts []models.Activity
	for _, day := range days {
		acts = append(acts, idx.Day(calendar.DateKey(day))...)
	}

	name, _ := calendar.MonthName(uc.opts.Locale, in.Month)

	res := ics.Export(acts, ics.Options{
		Location: loc,
		Name:     fmt.Sprintf("%s %d", name, in.Year),
	})
	for _, id := range res.Skipped {
		uc.logger.Warn("activity with invalid time skipped from export",
			slog.String("activity_id", id))
	}

	return res.Body, nil
}
