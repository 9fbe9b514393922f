package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-atividades/internal/calendar"
	"github.com/BruksfildServices01/agenda-atividades/internal/config"
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
	"github.com/BruksfildServices01/agenda-atividades/internal/httpresp"
	"github.com/BruksfildServices01/agenda-atividades/internal/ics"
	"github.com/BruksfildServices01/agenda-atividades/internal/middleware"
	"github.com/BruksfildServices01/agenda-atividades/internal/timezone"
	ucCalendar "github.com/BruksfildServices01/agenda-atividades/internal/usecase/calendar"
)

type CalendarHandler struct {
	config *config.Config

	gridUC   *ucCalendar.BuildMonthGrid
	dayUC    *ucCalendar.SelectDay
	exportUC *ucCalendar.ExportMonth
}

func NewCalendarHandler(
	cfg *config.Config,
	gridUC *ucCalendar.BuildMonthGrid,
	dayUC *ucCalendar.SelectDay,
	exportUC *ucCalendar.ExportMonth,
) *CalendarHandler {
	return &CalendarHandler{
		config:   cfg,
		gridUC:   gridUC,
		dayUC:    dayUC,
		exportUC: exportUC,
	}
}

// --------------------------------------------------
// GET /me/calendar?month=&year=
// --------------------------------------------------

func (h *CalendarHandler) Month(c *gin.Context) {
	in, ok := h.monthInput(c)
	if !ok {
		return
	}

	grid, err := h.gridUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_build_calendar", "Erro ao montar o calendário.")
		return
	}

	httpresp.OK(c, grid)
}

// --------------------------------------------------
// GET /me/calendar/days/:date
// --------------------------------------------------

func (h *CalendarHandler) Day(c *gin.Context) {
	sel, err := h.dayUC.Execute(c.Request.Context(), middleware.UserID(c), c.Param("date"))
	if err != nil {
		writeError(c, err, "failed_to_select_day", "Erro ao carregar o dia.")
		return
	}

	httpresp.OK(c, sel)
}

// --------------------------------------------------
// GET /me/calendar/export.ics?month=&year=
// --------------------------------------------------

func (h *CalendarHandler) Export(c *gin.Context) {
	in, ok := h.monthInput(c)
	if !ok {
		return
	}

	body, err := h.exportUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_export_calendar", "Erro ao exportar o calendário.")
		return
	}

	filename := fmt.Sprintf("agenda-%04d-%02d.ics", in.Year, in.Month)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, ics.ContentType, []byte(body))
}

// --------------------------------------------------
// GET /calendar/meta
// --------------------------------------------------

type statusMeta struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type categoryMeta struct {
	Category  calendar.Category  `json:"category"`
	Indicator calendar.Indicator `json:"indicator"`
}

// Meta devolve os rótulos fixos que o front usa para desenhar a agenda.
func (h *CalendarHandler) Meta(c *gin.Context) {
	locale := h.config.CalendarLocale()

	statuses := make([]statusMeta, 0, len(domain.Statuses()))
	for _, s := range domain.Statuses() {
		statuses = append(statuses, statusMeta{
			Value: string(s),
			Label: domain.StatusLabel(s),
			Color: domain.StatusColor(s),
		})
	}

	categories := make([]categoryMeta, 0, len(calendar.Categories()))
	for _, cat := range calendar.Categories() {
		ind, err := calendar.IndicatorFor(cat)
		if err != nil {
			writeError(c, err, "calendar_meta_failed", "Erro ao carregar metadados.")
			return
		}
		categories = append(categories, categoryMeta{Category: cat, Indicator: ind})
	}

	today := timezone.Today(h.config.Timezone)

	httpresp.OK(c, gin.H{
		"locale":        locale,
		"timezone":      h.config.Location().String(),
		"year":          h.config.CalendarYear,
		"current_month": int(today.Month()),
		"today":         calendar.DateKey(today),
		"weekdays":      calendar.WeekdayLabels(locale),
		"months":        calendar.MonthNames(locale),
		"statuses":      statuses,
		"visibilities": []gin.H{
			{"value": domain.VisibilityPrivate, "label": domain.VisibilityPrivate.Label()},
			{"value": domain.VisibilityPublic, "label": domain.VisibilityPublic.Label()},
		},
		"categories": categories,
	})
}

// ======================================================
// HELPERS
// ======================================================

// monthInput lê month e year da query. Sem month, usa o mês corrente; sem
// year, o ano configurado da agenda.
func (h *CalendarHandler) monthInput(c *gin.Context) (ucCalendar.MonthInput, bool) {
	in := ucCalendar.MonthInput{
		UserID: middleware.UserID(c),
		Year:   h.config.CalendarYear,
		Month:  int(timezone.Today(h.config.Timezone).Month()),
	}

	if s := c.Query("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil {
			httperr.WriteBusiness(c, httperr.ErrBusiness("invalid_month"))
			return in, false
		}
		in.Month = m
	}

	if s := c.Query("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			httperr.WriteBusiness(c, httperr.ErrBusiness("invalid_year"))
			return in, false
		}
		in.Year = y
	}

	return in, true
}
