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

var _ repository.NominationRepository = (*NominationRepo)(nil)

const nominationColumns = "id, nominator_id, nominee_id, cycle_id, reason, created_at"

// NominationRepo implementación del puerto NominationRepository sobre PostgreSQL.
type NominationRepo struct {
	pool *pgxpool.Pool
}

// NewNominationRepository construye el adaptador de persistencia para nominaciones.
func NewNominationRepository(pool *pgxpool.Pool) *NominationRepo {
	return &NominationRepo{pool: pool}
}

// Create inserta la nominación. El índice único (nominator_id, cycle_id) es el
// check-and-insert atómico: una violación se traduce a ErrDuplicateSubmission.
func (r *NominationRepo) Create(nomination *entity.Nomination) error {
	query := `
		INSERT INTO nominations (` + nominationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		nomination.ID, nomination.NominatorID, nomination.NomineeID, nomination.CycleID,
		nomination.Reason, nomination.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSubmission
		}
		return fmt.Errorf("insert nomination: %w", err)
	}
	return nil
}

// ListByCycle devuelve las nominaciones de un ciclo (sin orden garantizado).
func (r *NominationRepo) ListByCycle(cycleID string) ([]*entity.Nomination, error) {
	query := `SELECT ` + nominationColumns + ` FROM nominations WHERE cycle_id = $1`
	return r.scanMany(query, cycleID)
}

// GetByNominator devuelve la nominación del usuario en el ciclo, si existe.
func (r *NominationRepo) GetByNominator(nominatorID, cycleID string) (*entity.Nomination, error) {
	query := `SELECT ` + nominationColumns + ` FROM nominations WHERE nominator_id = $1 AND cycle_id = $2`
	var n entity.Nomination
	err := r.pool.QueryRow(context.Background(), query, nominatorID, cycleID).Scan(
		&n.ID, &n.NominatorID, &n.NomineeID, &n.CycleID, &n.Reason, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nomination by nominator: %w", err)
	}
	return &n, nil
}

// ListAll devuelve todas las nominaciones de todos los ciclos (para historiales).
func (r *NominationRepo) ListAll() ([]*entity.Nomination, error) {
	query := `SELECT ` + nominationColumns + ` FROM nominations`
	return r.scanMany(query)
}

func (r *NominationRepo) scanMany(query string, args ...any) ([]*entity.Nomination, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list nominations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Nomination
	for rows.Next() {
		var n entity.Nomination
		if err := rows.Scan(&n.ID, &n.NominatorID, &n.NomineeID, &n.CycleID, &n.Reason, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan nomination: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
