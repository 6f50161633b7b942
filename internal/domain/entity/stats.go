package entity

import "github.com/shopspring/decimal"

// CycleStats estadísticas derivadas por nominado en un ciclo. No se persisten:
// se recalculan bajo demanda desde los ledgers de nominaciones y votos.
type CycleStats struct {
	NomineeID       string
	NomineeName     string
	NominationCount int
	VoteCount       int
	VoteShare       decimal.Decimal // porcentaje exacto del total de votos del ciclo
}

// Candidate un nominado elegible para votación, con su conteo de nominaciones.
type Candidate struct {
	NomineeID       string
	NomineeName     string
	Department      string
	NominationCount int
}

// ReceivedNomination nominación recibida, con el nombre del nominador resuelto.
type ReceivedNomination struct {
	FromName string
	Reason   string
}

// GivenNomination la nominación que el usuario emitió en un ciclo.
type GivenNomination struct {
	NomineeName string
	Reason      string
}

// CycleActivity actividad de un usuario dentro de un ciclo.
type CycleActivity struct {
	Nominated           *GivenNomination
	Voted               bool
	ReceivedNominations []ReceivedNomination
	VotesReceived       int
}

// EmployeeHistoryEntry historial de un usuario en un ciclo (join de ambos ledgers).
type EmployeeHistoryEntry struct {
	Cycle    *Cycle
	Activity CycleActivity
}
