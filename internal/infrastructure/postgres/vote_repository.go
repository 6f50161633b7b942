package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/recognition-api/internal/domain"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/domain/repository"
)

var _ repository.VoteRepository = (*VoteRepo)(nil)

const voteColumns = "id, voter_id, nominee_id, cycle_id, created_at"

// VoteRepo implementación del puerto VoteRepository sobre PostgreSQL.
type VoteRepo struct {
	pool *pgxpool.Pool
}

// NewVoteRepository construye el adaptador de persistencia para votos.
func NewVoteRepository(pool *pgxpool.Pool) *VoteRepo {
	return &VoteRepo{pool: pool}
}

// Create inserta el voto. El índice único (voter_id, cycle_id) es el
// check-and-insert atómico: una violación se traduce a ErrDuplicateSubmission.
func (r *VoteRepo) Create(vote *entity.Vote) error {
	query := `
		INSERT INTO votes (` + voteColumns + `)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		vote.ID, vote.VoterID, vote.NomineeID, vote.CycleID, vote.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSubmission
		}
		return fmt.Errorf("insert vote: %w", err)
	}
	return nil
}

// ListByCycle devuelve los votos de un ciclo (sin orden garantizado).
func (r *VoteRepo) ListByCycle(cycleID string) ([]*entity.Vote, error) {
	query := `SELECT ` + voteColumns + ` FROM votes WHERE cycle_id = $1`
	return r.scanMany(query, cycleID)
}

// GetByVoter devuelve el voto del usuario en el ciclo, si existe.
func (r *VoteRepo) GetByVoter(voterID, cycleID string) (*entity.Vote, error) {
	query := `SELECT ` + voteColumns + ` FROM votes WHERE voter_id = $1 AND cycle_id = $2`
	var v entity.Vote
	err := r.pool.QueryRow(context.Background(), query, voterID, cycleID).Scan(
		&v.ID, &v.VoterID, &v.NomineeID, &v.CycleID, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vote by voter: %w", err)
	}
	return &v, nil
}

// ListAll devuelve todos los votos de todos los ciclos (para historiales).
func (r *VoteRepo) ListAll() ([]*entity.Vote, error) {
	query := `SELECT ` + voteColumns + ` FROM votes`
	return r.scanMany(query)
}

func (r *VoteRepo) scanMany(query string, args ...any) ([]*entity.Vote, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vote
	for rows.Next() {
		var v entity.Vote
		if err := rows.Scan(&v.ID, &v.VoterID, &v.NomineeID, &v.CycleID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
