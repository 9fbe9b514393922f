package calendar

import (
	"errors"
	"sort"

	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

// ActivityIndex agrupa atividades pela chave de data. É sempre reconstruído
// por inteiro a partir da coleção vinda do store.
type ActivityIndex map[string][]models.Activity

// GroupByDate agrupa de forma estável: dentro de cada data a ordem de
// entrada é preservada. Atividades com data malformada ficam de fora e o
// erro retornado junta um *DateKeyError por atividade excluída. O índice
// nunca é nil.
func GroupByDate(activities []models.Activity) (ActivityIndex, error) {
	idx := make(ActivityIndex)

	var errs []error
	for _, a := range activities {
		if !ValidDateKey(a.Date) {
			errs = append(errs, &DateKeyError{ActivityID: a.ID, Key: a.Date})
			continue
		}
		idx[a.Date] = append(idx[a.Date], a)
	}

	return idx, errors.Join(errs...)
}

// Day devolve uma cópia das atividades da data; nunca nil.
func (idx ActivityIndex) Day(key string) []models.Activity {
	bucket := idx[key]
	out := make([]models.Activity, len(bucket))
	copy(out, bucket)
	return out
}

// Keys retorna as datas presentes em ordem crescente.
func (idx ActivityIndex) Keys() []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len retorna a quantidade de datas com atividades.
func (idx ActivityIndex) Len() int {
	return len(idx)
}

// Total retorna a quantidade de atividades indexadas.
func (idx ActivityIndex) Total() int {
	n := 0
	for _, bucket := range idx {
		n += len(bucket)
	}
	return n
}
