package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-atividades/internal/audit"
	"github.com/BruksfildServices01/agenda-atividades/internal/calendar"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
	"github.com/BruksfildServices01/agenda-atividades/internal/httpresp"
	"github.com/BruksfildServices01/agenda-atividades/internal/middleware"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtros (sempre restritos ao usuário autenticado)
	// --------------------------------------------------

	f := audit.Filter{
		UserID: middleware.UserID(c),
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if s := c.Query("from"); s != "" {
		from, err := calendar.ParseDateKey(s, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
			return
		}
		f.From = from
	}

	if s := c.Query("to"); s != "" {
		to, err := calendar.ParseDateKey(s, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data final inválida.")
			return
		}
		// inclusivo: até o fim do dia informado
		f.To = to.AddDate(0, 0, 1)
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.OK(c, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
