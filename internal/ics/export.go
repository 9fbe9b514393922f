// Package ics exporta atividades no formato iCalendar (RFC 5545).
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

const (
	DefaultProductID = "-//agenda-atividades//calendario//PT"
	ContentType      = "text/calendar; charset=utf-8"
)

type Options struct {
	Location  *time.Location
	ProductID string
	Name      string
	// Now vira o DTSTAMP dos eventos; zero usa time.Now.
	Now time.Time
}

type Result struct {
	Body string
	// Skipped lista os IDs cuja data ou hora não pôde ser interpretada.
	Skipped []string
}

// Export gera um VCALENDAR com um VEVENT por atividade, na ordem recebida.
func Export(activities []models.Activity, opts Options) Result {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	productID := opts.ProductID
	if productID == "" {
		productID = DefaultProductID
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRTimezone(loc.String())
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	var res Result
	for _, a := range activities {
		start, end, err := bounds(a, loc)
		if err != nil {
			res.Skipped = append(res.Skipped, a.ID)
			continue
		}

		ev := cal.AddEvent(a.ID)
		ev.SetDtStampTime(now)
		if !a.CreatedAt.IsZero() {
			ev.SetCreatedTime(a.CreatedAt)
		}
		if !a.UpdatedAt.IsZero() {
			ev.SetModifiedAt(a.UpdatedAt)
		}
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(a.Title)
		if a.Description != "" {
			ev.SetDescription(a.Description)
		}
		ev.SetProperty(ical.ComponentPropertyClass, classFor(a.Visibility))
		if s := statusFor(domain.Status(a.Status)); s != "" {
			ev.SetProperty(ical.ComponentPropertyStatus, s)
		}
	}

	res.Body = cal.Serialize()
	return res
}

func bounds(a models.Activity, loc *time.Location) (time.Time, time.Time, error) {
	const layout = domain.DateLayout + " " + domain.ClockLayout

	start, err := time.ParseInLocation(layout, a.Date+" "+a.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("activity %s start: %w", a.ID, err)
	}
	end, err := time.ParseInLocation(layout, a.Date+" "+a.EndTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("activity %s end: %w", a.ID, err)
	}
	if end.Before(start) {
		end = start
	}
	return start, end, nil
}

func classFor(visibility string) string {
	if domain.Visibility(visibility) == domain.VisibilityPublic {
		return "PUBLIC"
	}
	return "PRIVATE"
}

func statusFor(s domain.Status) string {
	switch s {
	case domain.StatusReservado, domain.StatusConfirmado, domain.StatusAtendimentoRealizado:
		return "CONFIRMED"
	case domain.StatusAguardandoAtendimento:
		return "TENTATIVE"
	case domain.StatusCancelado:
		return "CANCELLED"
	}
	return ""
}
