package calendar

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

const weekColumns = 7

// ======================================================
// NAVEGAÇÃO
// ======================================================

// PrevMonth volta um mês, de janeiro para dezembro. Não há troca de ano.
func PrevMonth(month int) (int, error) {
	if !validMonth(month) {
		return 0, invalidMonth(month)
	}
	if month == 1 {
		return 12, nil
	}
	return month - 1, nil
}

// NextMonth avança um mês, de dezembro para janeiro. Não há troca de ano.
func NextMonth(month int) (int, error) {
	if !validMonth(month) {
		return 0, invalidMonth(month)
	}
	if month == 12 {
		return 1, nil
	}
	return month + 1, nil
}

// ======================================================
// GRADE
// ======================================================

type GridOptions struct {
	Location *time.Location
	Locale   Locale
}

type DayCell struct {
	Date       time.Time         `json:"-"`
	Key        string            `json:"date"`
	Day        int               `json:"day"`
	Weekday    int               `json:"weekday"`
	Row        int               `json:"row"`
	Column     int               `json:"column"`
	Activities []models.Activity `json:"activities"`
	Category   Category          `json:"category"`
	Indicator  Indicator         `json:"indicator"`
}

type Grid struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	MonthName string    `json:"month_name"`
	Title     string    `json:"title"`
	Weekdays  []string  `json:"weekdays"`
	Leading   int       `json:"leading"`
	Rows      int       `json:"rows"`
	PrevMonth int       `json:"prev_month"`
	NextMonth int       `json:"next_month"`
	Cells     []DayCell `json:"cells"`

	loc *time.Location
}

// Selection é o evento emitido ao escolher um dia da grade.
type Selection struct {
	Date       time.Time         `json:"-"`
	Key        string            `json:"date"`
	Activities []models.Activity `json:"activities"`
	Category   Category          `json:"category"`
}

// BuildGrid compõe dias do mês, índice e política visual. O primeiro dia
// ocupa a coluna do seu dia da semana (0=domingo) e os demais seguem em
// sequência, da esquerda para a direita e de cima para baixo.
func BuildGrid(year, month int, idx ActivityIndex, opts GridOptions) (*Grid, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	days, err := MonthDays(year, month, loc)
	if err != nil {
		return nil, err
	}

	name, err := MonthName(opts.Locale, month)
	if err != nil {
		return nil, err
	}
	prev, _ := PrevMonth(month)
	next, _ := NextMonth(month)

	leading := int(days[0].Weekday())

	g := &Grid{
		Year:      year,
		Month:     month,
		MonthName: name,
		Title:     fmt.Sprintf("%s %d", name, year),
		Weekdays:  WeekdayLabels(opts.Locale),
		Leading:   leading,
		Rows:      (leading + len(days) + weekColumns - 1) / weekColumns,
		PrevMonth: prev,
		NextMonth: next,
		Cells:     make([]DayCell, 0, len(days)),
		loc:       loc,
	}

	for i, day := range days {
		key := DateKey(day)
		acts := idx.Day(key)

		cat := Classify(acts)
		ind, err := IndicatorFor(cat)
		if err != nil {
			return nil, err
		}

		pos := leading + i
		g.Cells = append(g.Cells, DayCell{
			Date:       day,
			Key:        key,
			Day:        day.Day(),
			Weekday:    int(day.Weekday()),
			Row:        pos / weekColumns,
			Column:     pos % weekColumns,
			Activities: acts,
			Category:   cat,
			Indicator:  ind,
		})
	}

	return g, nil
}

// Cell devolve a célula da data, se ela pertencer ao mês.
func (g *Grid) Cell(key string) (DayCell, bool) {
	for _, c := range g.Cells {
		if c.Key == key {
			return c, true
		}
	}
	return DayCell{}, false
}

// Select emite a seleção de um dia da grade. Cada chamada devolve cópias:
// quem consome a seleção não altera a grade.
func (g *Grid) Select(key string) (Selection, error) {
	if _, err := ParseDateKey(key, g.loc); err != nil {
		return Selection{}, fmt.Errorf("%w: %q", err, key)
	}

	cell, ok := g.Cell(key)
	if !ok {
		return Selection{}, fmt.Errorf("%w: %s", ErrDayOutOfGrid, key)
	}

	acts := make([]models.Activity, len(cell.Activities))
	copy(acts, cell.Activities)

	return Selection{
		Date:       cell.Date,
		Key:        cell.Key,
		Activities: acts,
		Category:   cell.Category,
	}, nil
}

// SelectDay monta a seleção de uma data sem construir a grade inteira.
func SelectDay(key string, idx ActivityIndex, loc *time.Location) (Selection, error) {
	date, err := ParseDateKey(key, loc)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: %q", err, key)
	}
	acts := idx.Day(key)
	return Selection{
		Date:       date,
		Key:        key,
		Activities: acts,
		Category:   Classify(acts),
	}, nil
}
