package entity

import "time"

// Vote registra el voto de un usuario por un nominado dentro de un ciclo.
// Invariante: único por (VoterID, CycleID). El registro es inmutable.
type Vote struct {
	ID        string
	VoterID   string
	NomineeID string
	CycleID   string
	CreatedAt time.Time // timestamp asignado por el servidor
}
