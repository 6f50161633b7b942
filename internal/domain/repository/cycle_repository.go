package repository

import (
	"context"

	"github.com/tu-usuario/recognition-api/internal/domain/entity"
)

// CycleRepository define el puerto de persistencia para Cycle.
// Los lookups devuelven (nil, nil) cuando el registro no existe.
type CycleRepository interface {
	// CreateExclusive inserta el ciclo nuevo y fuerza el cierre de cualquier
	// ciclo no-CLOSED en la misma transacción. Garantiza la invariante de
	// un solo ciclo activo incluso ante creaciones concurrentes.
	CreateExclusive(ctx context.Context, cycle *entity.Cycle) error
	GetByID(id string) (*entity.Cycle, error)
	// List devuelve todos los ciclos ordenados por (year, month) descendente.
	List() ([]*entity.Cycle, error)
	// ListOpen devuelve los ciclos cuyo estado no es CLOSED.
	ListOpen() ([]*entity.Cycle, error)
	UpdateStatus(id, status string) error
	// CloseWithWinner registra el ganador y cierra el ciclo en una sola
	// escritura. Nunca deja un ciclo con ganador pero sin cerrar.
	CloseWithWinner(id, winnerID string) error
}
