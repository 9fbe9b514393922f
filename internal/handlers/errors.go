package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
	ucCalendar "github.com/BruksfildServices01/agenda-atividades/internal/usecase/calendar"
)

// writeError escolhe a resposta para um erro de caso de uso: campos do
// formulário, erro de negócio, falha de busca ou erro interno genérico.
func writeError(c *gin.Context, err error, code, message string) {
	if fields := domain.FieldErrors(err); fields != nil {
		httperr.Validation(c, fields)
		return
	}

	if httperr.WriteBusiness(c, err) {
		return
	}

	if errors.Is(err, ucCalendar.ErrFetchFailed) {
		code = "fetch_failed"
		message = "Não foi possível carregar as atividades."
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.String("error_code", code),
		slog.String("error", err.Error()))

	httperr.Internal(c, code, message)
}
