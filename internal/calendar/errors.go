package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMonth indica mês fora de [1,12]. É erro de programação:
	// nunca é corrigido silenciosamente.
	ErrInvalidMonth = errors.New("calendar: invalid month")

	// ErrInvalidDateKey indica uma data que não está no formato YYYY-MM-DD.
	ErrInvalidDateKey = errors.New("calendar: invalid date key")

	// ErrUnmappedCategory indica uma categoria sem indicador visual.
	ErrUnmappedCategory = errors.New("calendar: unmapped category")

	// ErrDayOutOfGrid indica uma data válida que não pertence ao mês exibido.
	ErrDayOutOfGrid = errors.New("calendar: day out of grid")
)

// DateKeyError registra a atividade excluída do índice por data malformada.
type DateKeyError struct {
	ActivityID string
	Key        string
}

func (e *DateKeyError) Error() string {
	return fmt.Sprintf("calendar: activity %q has invalid date key %q", e.ActivityID, e.Key)
}

func (e *DateKeyError) Unwrap() error {
	return ErrInvalidDateKey
}

func invalidMonth(month int) error {
	return fmt.Errorf("%w: %d", ErrInvalidMonth, month)
}
