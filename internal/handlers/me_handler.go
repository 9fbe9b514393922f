package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-atividades/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/agenda-atividades/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-atividades/internal/middleware"
)

type MeHandler struct {
	users *infraRepo.UserGormRepository
}

func NewMeHandler(users *infraRepo.UserGormRepository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err, "user_lookup_failed", "Erro ao carregar usuário.")
		return
	}

	httpresp.OK(c, gin.H{"user": userJSON(user)})
}
