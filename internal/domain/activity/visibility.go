package activity

// ===============================
// Activity Visibility
// ===============================

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// DefaultVisibility é a visibilidade de uma atividade criada sem escolha explícita.
const DefaultVisibility = VisibilityPrivate

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

func (v Visibility) Label() string {
	if v == VisibilityPublic {
		return "Pública"
	}
	return "Privada"
}
