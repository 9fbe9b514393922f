package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

func TestExport_RoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("tzdata indisponível: %v", err)
	}

	acts := []models.Activity{
		{ID: "a1", Title: "Consulta", Date: "2025-03-10", StartTime: "09:00", EndTime: "10:30", Visibility: "public", Status: "confirmado", Description: "Sala 2"},
		{ID: "a2", Title: "Retorno", Date: "2025-03-10", StartTime: "14:00", EndTime: "13:00", Visibility: "private", Status: "cancelado"},
		{ID: "bad", Title: "Quebrada", Date: "2025-13-40", StartTime: "09:00", EndTime: "10:00"},
	}

	res := Export(acts, Options{Location: loc, Name: "março de 2025"})

	if len(res.Skipped) != 1 || res.Skipped[0] != "bad" {
		t.Fatalf("Skipped = %v, want [bad]", res.Skipped)
	}
	if !strings.Contains(res.Body, "BEGIN:VCALENDAR") || !strings.Contains(res.Body, "METHOD:PUBLISH") {
		t.Fatalf("body is not a published calendar:\n%s", res.Body)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(res.Body))
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	first := events[0]
	if first.Id() != "a1" {
		t.Errorf("UID = %q, want a1", first.Id())
	}
	if p := first.GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "Consulta" {
		t.Errorf("SUMMARY = %v", p)
	}
	if p := first.GetProperty(ical.ComponentPropertyClass); p == nil || p.Value != "PUBLIC" {
		t.Errorf("CLASS = %v", p)
	}
	if p := first.GetProperty(ical.ComponentPropertyStatus); p == nil || p.Value != "CONFIRMED" {
		t.Errorf("STATUS = %v", p)
	}

	start, err := first.GetStartAt()
	if err != nil {
		t.Fatalf("GetStartAt: %v", err)
	}
	want := time.Date(2025, 3, 10, 9, 0, 0, 0, loc)
	if !start.Equal(want) {
		t.Errorf("DTSTART = %v, want %v", start, want)
	}

	second := events[1]
	if p := second.GetProperty(ical.ComponentPropertyClass); p == nil || p.Value != "PRIVATE" {
		t.Errorf("CLASS = %v", p)
	}
	if p := second.GetProperty(ical.ComponentPropertyStatus); p == nil || p.Value != "CANCELLED" {
		t.Errorf("STATUS = %v", p)
	}
	s, _ := second.GetStartAt()
	e, _ := second.GetEndAt()
	if !e.Equal(s) {
		t.Errorf("end before start should collapse to start: %v..%v", s, e)
	}
}

func TestExport_Empty(t *testing.T) {
	res := Export(nil, Options{})
	if len(res.Skipped) != 0 {
		t.Errorf("Skipped = %v", res.Skipped)
	}
	cal, err := ical.ParseCalendar(strings.NewReader(res.Body))
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}
	if n := len(cal.Events()); n != 0 {
		t.Errorf("events = %d, want 0", n)
	}
}
