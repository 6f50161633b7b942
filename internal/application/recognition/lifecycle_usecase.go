package recognition

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/domain"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/domain/repository"
)

// clockSkewTolerance margen para no rechazar ventanas cuyo inicio quedó
// "en el pasado" por desfase de reloj entre el admin y el servidor.
const clockSkewTolerance = 2 * time.Minute

// LifecycleUseCase controla el ciclo de vida de los ciclos mensuales:
// creación, avance de estado y declaración de ganador.
type LifecycleUseCase struct {
	cycleRepo repository.CycleRepository
	results   *ResultsUseCase
}

// NewLifecycleUseCase construye el controlador de ciclo de vida.
func NewLifecycleUseCase(cycleRepo repository.CycleRepository, results *ResultsUseCase) *LifecycleUseCase {
	return &LifecycleUseCase{cycleRepo: cycleRepo, results: results}
}

// CreateCycle valida el periodo y las ventanas de fase, rechaza si ya hay un
// ciclo activo, y crea el ciclo nuevo en estado NOMINATION. La inserción corre
// en una transacción que cierra cualquier ciclo abierto (defensivo: tolera
// carreras con otra creación concurrente).
func (uc *LifecycleUseCase) CreateCycle(ctx context.Context, in dto.CreateCycleRequest) (*dto.CycleResponse, error) {
	now := time.Now()
	if in.Month < 0 || in.Month > 11 {
		return nil, domain.ErrInvalidPeriod
	}
	// Un ciclo no puede arrancar para un mes futuro.
	if in.Year*12+in.Month > now.Year()*12+int(now.Month())-1 {
		return nil, domain.ErrInvalidPeriod
	}
	if in.Windows != nil {
		if err := validateWindows(in.Windows, now); err != nil {
			return nil, err
		}
	}

	open, err := uc.cycleRepo.ListOpen()
	if err != nil {
		return nil, err
	}
	if len(open) > 0 {
		return nil, domain.ErrCycleAlreadyActive
	}

	cycle := &entity.Cycle{
		ID:        uuid.New().String(),
		Month:     in.Month,
		Year:      in.Year,
		Status:    entity.CycleStatusNomination,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Windows != nil {
		cycle.NominationStart = &in.Windows.NominationStart
		cycle.NominationEnd = &in.Windows.NominationEnd
		cycle.VotingStart = &in.Windows.VotingStart
		cycle.VotingEnd = &in.Windows.VotingEnd
	}
	if err := uc.cycleRepo.CreateExclusive(ctx, cycle); err != nil {
		return nil, err
	}
	return ToCycleResponse(cycle), nil
}

func validateWindows(w *dto.PhaseWindows, now time.Time) error {
	if w.NominationStart.Before(now.Add(-clockSkewTolerance)) {
		return domain.ErrInvalidPeriod
	}
	if !w.NominationEnd.After(w.NominationStart) {
		return domain.ErrInvalidPeriod
	}
	if w.VotingStart.Before(w.NominationEnd) {
		return domain.ErrInvalidPeriod
	}
	if !w.VotingEnd.After(w.VotingStart) {
		return domain.ErrInvalidPeriod
	}
	return nil
}

// AdvanceStatus avanza el ciclo al estado nuevo. Solo hacia adelante; el salto
// NOMINATION → CLOSED requiere force (override de admin).
func (uc *LifecycleUseCase) AdvanceStatus(cycleID, newStatus string, force bool) (*dto.CycleResponse, error) {
	if !entity.ValidCycleStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}
	cycle, err := uc.cycleRepo.GetByID(cycleID)
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, domain.ErrNotFound
	}
	if !cycle.CanAdvanceTo(newStatus, force) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.cycleRepo.UpdateStatus(cycleID, newStatus); err != nil {
		return nil, err
	}
	cycle.Status = newStatus
	return ToCycleResponse(cycle), nil
}

// DeclareWinner toma el líder actual del agregador; si tiene al menos un voto,
// lo registra como ganador y cierra el ciclo en una sola escritura. Re-declarar
// sobre un ciclo que ya tiene ganador devuelve el registrado sin modificar nada.
func (uc *LifecycleUseCase) DeclareWinner(cycleID string) (*dto.CycleResponse, error) {
	cycle, err := uc.cycleRepo.GetByID(cycleID)
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, domain.ErrNotFound
	}
	// Un ganador ya registrado nunca se recalcula ni se sobreescribe.
	if cycle.WinnerID != "" {
		return ToCycleResponse(cycle), nil
	}

	leader, err := uc.results.ComputeLeader(cycleID)
	if err != nil {
		return nil, err
	}
	if leader == nil || leader.VoteCount == 0 {
		return nil, domain.ErrNoVotesRecorded
	}

	if err := uc.cycleRepo.CloseWithWinner(cycleID, leader.NomineeID); err != nil {
		return nil, err
	}
	cycle.WinnerID = leader.NomineeID
	cycle.Status = entity.CycleStatusClosed
	return ToCycleResponse(cycle), nil
}

// ActiveCycle aplica la política de selección: primero un ciclo en NOMINATION,
// si no uno en VOTING, si no el CLOSED más reciente por (year, month).
func (uc *LifecycleUseCase) ActiveCycle() (*dto.CycleResponse, error) {
	cycles, err := uc.cycleRepo.List()
	if err != nil {
		return nil, err
	}
	if len(cycles) == 0 {
		return nil, domain.ErrNotFound
	}
	for _, status := range []string{entity.CycleStatusNomination, entity.CycleStatusVoting} {
		for _, c := range cycles {
			if c.Status == status {
				return ToCycleResponse(c), nil
			}
		}
	}
	// List viene ordenado por recencia: el primero es el CLOSED más reciente.
	return ToCycleResponse(cycles[0]), nil
}

// ListCycles devuelve todos los ciclos, más recientes primero.
func (uc *LifecycleUseCase) ListCycles() ([]dto.CycleResponse, error) {
	cycles, err := uc.cycleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CycleResponse, 0, len(cycles))
	for _, c := range cycles {
		out = append(out, *ToCycleResponse(c))
	}
	return out, nil
}

// ToCycleResponse mapea la entidad a su DTO de salida.
func ToCycleResponse(c *entity.Cycle) *dto.CycleResponse {
	if c == nil {
		return nil
	}
	return &dto.CycleResponse{
		ID:              c.ID,
		Month:           c.Month,
		Year:            c.Year,
		Status:          c.Status,
		WinnerID:        c.WinnerID,
		NominationStart: c.NominationStart,
		NominationEnd:   c.NominationEnd,
		VotingStart:     c.VotingStart,
		VotingEnd:       c.VotingEnd,
		CreatedAt:       c.CreatedAt,
	}
}
