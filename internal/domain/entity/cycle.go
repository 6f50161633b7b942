package entity

import "time"

// Estados del ciclo mensual. El avance es monótono:
// NOMINATION → VOTING → CLOSED. CLOSED es terminal.
const (
	CycleStatusNomination = "NOMINATION"
	CycleStatusVoting     = "VOTING"
	CycleStatusClosed     = "CLOSED"
)

// Cycle representa una competencia mensual de reconocimiento.
// Las ventanas de fase son opcionales: si son nil, el gating se hace solo por estado.
type Cycle struct {
	ID              string
	Month           int // 0-11
	Year            int
	Status          string
	WinnerID        string // vacío hasta declarar ganador
	NominationStart *time.Time
	NominationEnd   *time.Time
	VotingStart     *time.Time
	VotingEnd       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PeriodKey ordena ciclos por recencia (año*12+mes).
func (c *Cycle) PeriodKey() int {
	return c.Year*12 + c.Month
}

// IsOpen indica si el ciclo sigue aceptando participación (no CLOSED).
func (c *Cycle) IsOpen() bool {
	return c.Status != CycleStatusClosed
}

// statusRank ordena los estados para validar transiciones hacia adelante.
var statusRank = map[string]int{
	CycleStatusNomination: 0,
	CycleStatusVoting:     1,
	CycleStatusClosed:     2,
}

// ValidCycleStatus indica si s es un estado de ciclo conocido.
func ValidCycleStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvanceTo valida el paso de estado actual a next. El salto
// NOMINATION → CLOSED solo se permite con force (override de admin).
func (c *Cycle) CanAdvanceTo(next string, force bool) bool {
	cur, ok := statusRank[c.Status]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	if !ok {
		return false
	}
	if nxt <= cur {
		return false
	}
	if nxt-cur > 1 && !force {
		return false
	}
	return true
}
