package entity

import "time"

// Nomination registra que un usuario nominó a un colega en un ciclo, con motivo.
// Invariante: única por (NominatorID, CycleID). El registro es inmutable.
type Nomination struct {
	ID          string
	NominatorID string
	NomineeID   string
	CycleID     string
	Reason      string
	CreatedAt   time.Time // timestamp asignado por el servidor
}
