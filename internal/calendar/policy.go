package calendar

import (
	"fmt"

	"github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

// Category é o estado visual de um dia, derivado da visibilidade das
// atividades agendadas nele.
type Category int

const (
	CategoryNone Category = iota
	CategoryPublicOnly
	CategoryPrivateOnly
	CategoryMixed
)

// Categories lista todas as categorias declaradas.
func Categories() []Category {
	return []Category{CategoryNone, CategoryPublicOnly, CategoryPrivateOnly, CategoryMixed}
}

var categoryNames = map[Category]string{
	CategoryNone:        "none",
	CategoryPublicOnly:  "public_only",
	CategoryPrivateOnly: "private_only",
	CategoryMixed:       "mixed",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) {
	name, ok := categoryNames[c]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnmappedCategory, int(c))
	}
	return []byte(name), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	for cat, name := range categoryNames {
		if name == string(b) {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnmappedCategory, string(b))
}

// Classify depende apenas do multiconjunto de visibilidades. Tudo que não
// é "public" conta como privado: o store só grava os dois valores.
func Classify(activities []models.Activity) Category {
	var public, private int
	for _, a := range activities {
		if activity.Visibility(a.Visibility) == activity.VisibilityPublic {
			public++
		} else {
			private++
		}
	}

	switch {
	case public == 0 && private == 0:
		return CategoryNone
	case private == 0:
		return CategoryPublicOnly
	case public == 0:
		return CategoryPrivateOnly
	default:
		return CategoryMixed
	}
}

// Indicator é a dica de renderização de uma célula.
type Indicator struct {
	CellClass string `json:"cell_class"`
	DotClass  string `json:"dot_class"`
	Color     string `json:"color"`
}

// HasDot indica se a célula exibe o marcador de atividades.
func (i Indicator) HasDot() bool {
	return i.DotClass != ""
}

var indicators = map[Category]Indicator{
	CategoryNone:        {},
	CategoryPublicOnly:  {CellClass: "bg-green-50", DotClass: "bg-green-500", Color: "green"},
	CategoryPrivateOnly: {CellClass: "bg-blue-50", DotClass: "bg-blue-500", Color: "blue"},
	CategoryMixed:       {CellClass: "bg-purple-50", DotClass: "bg-purple-500", Color: "purple"},
}

// IndicatorFor consulta a tabela estática. Não existe cor padrão: uma
// categoria fora da tabela é erro.
func IndicatorFor(c Category) (Indicator, error) {
	ind, ok := indicators[c]
	if !ok {
		return Indicator{}, fmt.Errorf("%w: %s", ErrUnmappedCategory, c)
	}
	return ind, nil
}
