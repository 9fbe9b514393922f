package activity

import (
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

// View é a atividade como o usuário a enxerga: com rótulos prontos e a
// indicação de quem pode editá-la.
type View struct {
	models.Activity

	IsOwner         bool   `json:"is_owner"`
	VisibilityLabel string `json:"visibility_label"`
	StatusLabel     string `json:"status_label,omitempty"`
	StatusColor     string `json:"status_color,omitempty"`
}

func NewView(a models.Activity, userID string) View {
	v := View{
		Activity:        a,
		IsOwner:         domain.IsOwner(&a, userID),
		VisibilityLabel: domain.Visibility(a.Visibility).Label(),
	}
	if s := domain.Status(a.Status); s.Valid() {
		v.StatusLabel = domain.StatusLabel(s)
		v.StatusColor = domain.StatusColor(s)
	}
	return v
}
