package calendar

import (
	"time"
)

// DateLayout é o formato exato da chave de data.
const DateLayout = "2006-01-02"

// DateKey formata a data de parede de t, sem converter para UTC. Os dias
// gerados por MonthDays já estão na zona da agenda, então a chave da grade e
// a chave gravada na atividade usam a mesma referência.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey valida a chave e devolve a meia-noite local correspondente.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if len(key) != len(DateLayout) {
		return time.Time{}, ErrInvalidDateKey
	}
	t, err := time.ParseInLocation(DateLayout, key, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateKey
	}
	return t, nil
}

// ValidDateKey informa se key é uma data YYYY-MM-DD existente.
func ValidDateKey(key string) bool {
	_, err := ParseDateKey(key, time.UTC)
	return err == nil
}
