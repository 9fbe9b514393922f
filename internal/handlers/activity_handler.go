package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
	"github.com/BruksfildServices01/agenda-atividades/internal/httpresp"
	"github.com/BruksfildServices01/agenda-atividades/internal/middleware"
	ucActivity "github.com/BruksfildServices01/agenda-atividades/internal/usecase/activity"
)

// ======================================================
// HANDLER
// ======================================================

type ActivityHandler struct {
	createUC *ucActivity.CreateActivity
	updateUC *ucActivity.UpdateActivity
	deleteUC *ucActivity.DeleteActivity
	getUC    *ucActivity.GetActivity
	listUC   *ucActivity.ListVisible
}

func NewActivityHandler(
	createUC *ucActivity.CreateActivity,
	updateUC *ucActivity.UpdateActivity,
	deleteUC *ucActivity.DeleteActivity,
	getUC *ucActivity.GetActivity,
	listUC *ucActivity.ListVisible,
) *ActivityHandler {
	return &ActivityHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ActivityHandler) List(c *gin.Context) {
	views, err := h.listUC.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err, "fetch_failed", "Não foi possível carregar as atividades.")
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// GET
// ======================================================

func (h *ActivityHandler) Get(c *gin.Context) {
	v, err := h.getUC.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_load_activity", "Erro ao carregar atividade.")
		return
	}

	httpresp.OK(c, v)
}

// ======================================================
// CREATE
// ======================================================

func (h *ActivityHandler) Create(c *gin.Context) {
	var draft domain.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	v, err := h.createUC.Execute(c.Request.Context(), ucActivity.CreateActivityInput{
		UserID: middleware.UserID(c),
		Draft:  draft,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_activity", "Erro ao criar atividade.")
		return
	}

	httpresp.Created(c, v)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ActivityHandler) Update(c *gin.Context) {
	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	v, err := h.updateUC.Execute(c.Request.Context(), ucActivity.UpdateActivityInput{
		UserID:     middleware.UserID(c),
		ActivityID: c.Param("id"),
		Patch:      patch,
	})
	if err != nil {
		writeError(c, err, "failed_to_update_activity", "Erro ao atualizar atividade.")
		return
	}

	httpresp.OK(c, v)
}

// ======================================================
// DELETE
// ======================================================

func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		writeError(c, err, "failed_to_delete_activity", "Erro ao excluir atividade.")
		return
	}

	httpresp.NoContent(c)
}
