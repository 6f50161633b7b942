package repository

import "github.com/tu-usuario/recognition-api/internal/domain/entity"

// NominationRepository define el puerto de persistencia para Nomination.
// Create debe ser atómico: la unicidad por (nominator_id, cycle_id) se
// garantiza en el almacenamiento (índice único), no con read-then-write.
type NominationRepository interface {
	// Create inserta la nominación. Devuelve domain.ErrDuplicateSubmission
	// si el nominador ya tiene una nominación en el ciclo.
	Create(nomination *entity.Nomination) error
	ListByCycle(cycleID string) ([]*entity.Nomination, error)
	GetByNominator(nominatorID, cycleID string) (*entity.Nomination, error)
	ListAll() ([]*entity.Nomination, error)
}
