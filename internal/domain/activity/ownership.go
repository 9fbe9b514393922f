package activity

import (
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

// IsOwner indica se userID criou a atividade.
func IsOwner(a *models.Activity, userID string) bool {
	return a != nil && a.UserID != "" && a.UserID == userID
}

// CanView: o dono vê tudo; os demais só veem atividades públicas.
func CanView(a *models.Activity, userID string) error {
	if IsOwner(a, userID) || Visibility(a.Visibility) == VisibilityPublic {
		return nil
	}
	return httperr.ErrBusiness("activity_not_found")
}

// CanModify: apenas o dono edita ou exclui.
func CanModify(a *models.Activity, userID string) error {
	if !IsOwner(a, userID) {
		return httperr.ErrBusiness("forbidden")
	}
	return nil
}
