package repository

import "github.com/tu-usuario/recognition-api/internal/domain/entity"

// VoteRepository define el puerto de persistencia para Vote.
// Create debe ser atómico: la unicidad por (voter_id, cycle_id) se
// garantiza en el almacenamiento (índice único), no con read-then-write.
type VoteRepository interface {
	// Create inserta el voto. Devuelve domain.ErrDuplicateSubmission
	// si el votante ya votó en el ciclo.
	Create(vote *entity.Vote) error
	ListByCycle(cycleID string) ([]*entity.Vote, error)
	GetByVoter(voterID, cycleID string) (*entity.Vote, error)
	ListAll() ([]*entity.Vote, error)
}
