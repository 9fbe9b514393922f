package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
	ucCalendar "github.com/BruksfildServices01/agenda-atividades/internal/usecase/calendar"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.Draft{}.Validate(), http.StatusBadRequest, "validation_failed"},
		{"business", httperr.ErrBusiness("forbidden"), http.StatusForbidden, "forbidden"},
		{"wrapped business", fmt.Errorf("update: %w", httperr.ErrBusiness("activity_not_found")), http.StatusNotFound, "activity_not_found"},
		{"fetch failure", fmt.Errorf("%w: %w", ucCalendar.ErrFetchFailed, errors.New("db down")), http.StatusInternalServerError, "fetch_failed"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, tt.err, "fallback", "Erro.")

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			var body httperr.HTTPError
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tt.code {
				t.Errorf("error_code = %q, want %q", body.Code, tt.code)
			}
		})
	}
}
