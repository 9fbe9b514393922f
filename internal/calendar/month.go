// Package calendar monta a grade mensal: dias do mês, agrupamento de
// atividades por data e o estado visual de cada dia.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

type Locale string

const (
	LocalePtBR Locale = "pt-BR"
	LocaleEnUS Locale = "en-US"

	DefaultLocale = LocalePtBR
)

type labels struct {
	months   [12]string
	weekdays [7]string
}

var localeLabels = map[Locale]labels{
	LocalePtBR: {
		months: [12]string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
		},
		weekdays: [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"},
	},
	LocaleEnUS: {
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	},
}

// ParseLocale aceita "pt-BR", "pt_br", "en-US" etc.
func ParseLocale(s string) (Locale, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	for l := range localeLabels {
		if strings.ToLower(string(l)) == norm {
			return l, nil
		}
	}
	return "", fmt.Errorf("calendar: unsupported locale %q", s)
}

func labelsFor(l Locale) labels {
	if lb, ok := localeLabels[l]; ok {
		return lb
	}
	return localeLabels[DefaultLocale]
}

func validMonth(month int) bool {
	return month >= 1 && month <= 12
}

// MonthDays retorna todos os dias do mês, à meia-noite local de loc,
// em ordem crescente. month é 1-indexado.
func MonthDays(year, month int, loc *time.Location) ([]time.Time, error) {
	if !validMonth(month) {
		return nil, invalidMonth(month)
	}
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	n := DaysIn(year, month)

	days := make([]time.Time, 0, n)
	for d := 0; d < n; d++ {
		// AddDate em vez de Add(24h): dias com horário de verão não têm 24h.
		days = append(days, first.AddDate(0, 0, d))
	}
	return days, nil
}

// DaysIn retorna a quantidade de dias do mês. Assume mês válido.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthName retorna o nome completo do mês no idioma informado.
func MonthName(locale Locale, month int) (string, error) {
	if !validMonth(month) {
		return "", invalidMonth(month)
	}
	return labelsFor(locale).months[month-1], nil
}

// WeekdayLabels retorna os 7 rótulos curtos começando no domingo.
func WeekdayLabels(locale Locale) []string {
	wd := labelsFor(locale).weekdays
	out := make([]string, len(wd))
	copy(out, wd[:])
	return out
}

// MonthNames retorna os 12 nomes de mês, janeiro primeiro.
func MonthNames(locale Locale) []string {
	m := labelsFor(locale).months
	out := make([]string, len(m))
	copy(out, m[:])
	return out
}
