package activity

import (
	"context"

	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

// Store é a fronteira de persistência das atividades. Os casos de uso
// recebem a implementação por injeção; nada acessa o banco diretamente.
type Store interface {
	// FetchVisible lista as atividades do usuário e todas as públicas,
	// ordenadas por data e hora inicial.
	FetchVisible(
		ctx context.Context,
		userID string,
	) ([]models.Activity, error)

	Get(
		ctx context.Context,
		id string,
	) (*models.Activity, error)

	// Create atribui identificador e dono.
	Create(
		ctx context.Context,
		draft Draft,
		ownerID string,
	) (*models.Activity, error)

	Update(
		ctx context.Context,
		id string,
		patch Patch,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error
}
