package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/domain/repository"
)

var _ repository.CycleRepository = (*CycleRepo)(nil)

const cycleColumns = `id, month, year, status, COALESCE(winner_id::text, ''),
	nomination_start, nomination_end, voting_start, voting_end, created_at, updated_at`

// CycleRepo implementación del puerto CycleRepository sobre PostgreSQL.
type CycleRepo struct {
	pool *pgxpool.Pool
}

// NewCycleRepository construye el adaptador de persistencia para ciclos.
func NewCycleRepository(pool *pgxpool.Pool) *CycleRepo {
	return &CycleRepo{pool: pool}
}

// CreateExclusive fuerza el cierre de todos los ciclos abiertos e inserta el
// nuevo ciclo dentro de la misma transacción. Así la invariante de un solo
// ciclo no-CLOSED sobrevive a creaciones concurrentes.
func (r *CycleRepo) CreateExclusive(ctx context.Context, cycle *entity.Cycle) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`UPDATE cycles SET status = $1, updated_at = $2 WHERE status <> $1`,
		entity.CycleStatusClosed, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("close open cycles: %w", err)
	}

	query := `
		INSERT INTO cycles (id, month, year, status, nomination_start, nomination_end,
			voting_start, voting_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.Exec(ctx, query,
		cycle.ID, cycle.Month, cycle.Year, cycle.Status,
		cycle.NominationStart, cycle.NominationEnd, cycle.VotingStart, cycle.VotingEnd,
		cycle.CreatedAt, cycle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cycle: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un ciclo por ID.
func (r *CycleRepo) GetByID(id string) (*entity.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles WHERE id = $1`
	var c entity.Cycle
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Month, &c.Year, &c.Status, &c.WinnerID,
		&c.NominationStart, &c.NominationEnd, &c.VotingStart, &c.VotingEnd,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cycle by id: %w", err)
	}
	return &c, nil
}

// List devuelve todos los ciclos, más recientes primero.
func (r *CycleRepo) List() ([]*entity.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles ORDER BY year DESC, month DESC`
	return r.scanMany(query)
}

// ListOpen devuelve los ciclos no cerrados.
func (r *CycleRepo) ListOpen() ([]*entity.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles WHERE status <> $1 ORDER BY year DESC, month DESC`
	return r.scanMany(query, entity.CycleStatusClosed)
}

func (r *CycleRepo) scanMany(query string, args ...any) ([]*entity.Cycle, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cycle
	for rows.Next() {
		var c entity.Cycle
		if err := rows.Scan(&c.ID, &c.Month, &c.Year, &c.Status, &c.WinnerID,
			&c.NominationStart, &c.NominationEnd, &c.VotingStart, &c.VotingEnd,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cycle: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del ciclo. La validación de la transición
// es responsabilidad del use case; aquí solo se persiste.
func (r *CycleRepo) UpdateStatus(id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE cycles SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update cycle status: %w", err)
	}
	return nil
}

// CloseWithWinner registra el ganador y cierra el ciclo en un solo UPDATE,
// para que nunca quede un ciclo con ganador en estado abierto.
func (r *CycleRepo) CloseWithWinner(id, winnerID string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE cycles SET winner_id = $2, status = $3, updated_at = $4 WHERE id = $1`,
		id, winnerID, entity.CycleStatusClosed, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("close cycle with winner: %w", err)
	}
	return nil
}
