package dto

import "time"

// SubmitNominationRequest entrada para nominar a un colega.
// El nominador sale del token, nunca del body.
type SubmitNominationRequest struct {
	CycleID   string `json:"cycle_id" validate:"required,uuid"`
	NomineeID string `json:"nominee_id" validate:"required,uuid"`
	Reason    string `json:"reason" validate:"required,min=1,max=2000"`
}

// NominationResponse salida de una nominación.
type NominationResponse struct {
	ID          string    `json:"id"`
	NominatorID string    `json:"nominator_id"`
	NomineeID   string    `json:"nominee_id"`
	CycleID     string    `json:"cycle_id"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmitVoteRequest entrada para votar por un candidato.
// El votante sale del token, nunca del body.
type SubmitVoteRequest struct {
	CycleID   string `json:"cycle_id" validate:"required,uuid"`
	NomineeID string `json:"nominee_id" validate:"required,uuid"`
}

// VoteResponse salida de un voto.
type VoteResponse struct {
	ID        string    `json:"id"`
	VoterID   string    `json:"voter_id"`
	NomineeID string    `json:"nominee_id"`
	CycleID   string    `json:"cycle_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CandidateResponse un nominado elegible en la fase de votación.
type CandidateResponse struct {
	NomineeID       string `json:"nominee_id"`
	NomineeName     string `json:"nominee_name"`
	Department      string `json:"department"`
	NominationCount int    `json:"nomination_count"`
}

// CycleStatsResponse una entrada del leaderboard de un ciclo.
type CycleStatsResponse struct {
	NomineeID       string `json:"nominee_id"`
	NomineeName     string `json:"nominee_name"`
	NominationCount int    `json:"nomination_count"`
	VoteCount       int    `json:"vote_count"`
	VoteShare       string `json:"vote_share"` // porcentaje con un decimal, ej. "66.7"
}

// ReceivedNominationResponse nominación recibida dentro del historial.
type ReceivedNominationResponse struct {
	From   string `json:"from"`
	Reason string `json:"reason"`
}

// GivenNominationResponse la nominación emitida dentro del historial.
type GivenNominationResponse struct {
	NomineeName string `json:"nominee_name"`
	Reason      string `json:"reason"`
}

// HistoryEntryResponse actividad de un usuario en un ciclo.
type HistoryEntryResponse struct {
	Cycle               CycleResponse                `json:"cycle"`
	Nominated           *GivenNominationResponse     `json:"nominated,omitempty"`
	Voted               bool                         `json:"voted"`
	ReceivedNominations []ReceivedNominationResponse `json:"received_nominations"`
	VotesReceived       int                          `json:"votes_received"`
}
