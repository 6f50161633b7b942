package dto

import "time"

// PhaseWindows ventanas de fase opcionales al crear un ciclo (RFC 3339).
type PhaseWindows struct {
	NominationStart time.Time `json:"nomination_start"`
	NominationEnd   time.Time `json:"nomination_end"`
	VotingStart     time.Time `json:"voting_start"`
	VotingEnd       time.Time `json:"voting_end"`
}

// CreateCycleRequest entrada para crear un ciclo mensual.
type CreateCycleRequest struct {
	Month   int           `json:"month" validate:"min=0,max=11"`
	Year    int           `json:"year" validate:"required"`
	Windows *PhaseWindows `json:"windows,omitempty"`
}

// AdvanceCycleRequest entrada para avanzar el estado de un ciclo.
// Force permite el salto NOMINATION → CLOSED (override de admin).
type AdvanceCycleRequest struct {
	Status string `json:"status" validate:"required,oneof=VOTING CLOSED"`
	Force  bool   `json:"force"`
}

// CycleResponse salida de un ciclo.
type CycleResponse struct {
	ID              string     `json:"id"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	Status          string     `json:"status"`
	WinnerID        string     `json:"winner_id,omitempty"`
	NominationStart *time.Time `json:"nomination_start,omitempty"`
	NominationEnd   *time.Time `json:"nomination_end,omitempty"`
	VotingStart     *time.Time `json:"voting_start,omitempty"`
	VotingEnd       *time.Time `json:"voting_end,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
