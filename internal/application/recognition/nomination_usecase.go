package recognition

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/domain"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/domain/repository"
)

// NominationUseCase ledger de nominaciones: una por (nominador, ciclo).
type NominationUseCase struct {
	cycleRepo repository.CycleRepository
	userRepo  repository.UserRepository
	nomRepo   repository.NominationRepository
}

// NewNominationUseCase construye el caso de uso de nominaciones.
func NewNominationUseCase(
	cycleRepo repository.CycleRepository,
	userRepo repository.UserRepository,
	nomRepo repository.NominationRepository,
) *NominationUseCase {
	return &NominationUseCase{cycleRepo: cycleRepo, userRepo: userRepo, nomRepo: nomRepo}
}

// Submit registra una nominación. Reglas, en orden:
//   - el ciclo debe existir y estar en fase NOMINATION (y dentro de la ventana
//     si el ciclo la define) → ErrPhaseClosed
//   - nadie se nomina a sí mismo → ErrSelfNomination (check de servidor,
//     no depende del filtrado de la UI)
//   - el nominado debe ser un EMPLOYEE activo → ErrInvalidCandidate
//   - el motivo es obligatorio → ErrInvalidInput
//   - la unicidad por (nominador, ciclo) la garantiza el almacenamiento
//     de forma atómica → ErrDuplicateSubmission
func (uc *NominationUseCase) Submit(nominatorID string, in dto.SubmitNominationRequest) (*dto.NominationResponse, error) {
	cycle, err := uc.cycleRepo.GetByID(in.CycleID)
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if cycle.Status != entity.CycleStatusNomination {
		return nil, domain.ErrPhaseClosed
	}
	if !withinWindow(now, cycle.NominationStart, cycle.NominationEnd) {
		return nil, domain.ErrPhaseClosed
	}
	if nominatorID == in.NomineeID {
		return nil, domain.ErrSelfNomination
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrInvalidInput
	}
	nominee, err := uc.userRepo.GetByID(in.NomineeID)
	if err != nil {
		return nil, err
	}
	if nominee == nil || !nominee.IsActiveEmployee() {
		return nil, domain.ErrInvalidCandidate
	}

	nomination := &entity.Nomination{
		ID:          uuid.New().String(),
		NominatorID: nominatorID,
		NomineeID:   in.NomineeID,
		CycleID:     in.CycleID,
		Reason:      strings.TrimSpace(in.Reason),
		CreatedAt:   now,
	}
	if err := uc.nomRepo.Create(nomination); err != nil {
		return nil, err
	}
	return toNominationResponse(nomination), nil
}

// ListForCycle devuelve todas las nominaciones del ciclo (vista de admin).
func (uc *NominationUseCase) ListForCycle(cycleID string) ([]dto.NominationResponse, error) {
	nominations, err := uc.nomRepo.ListByCycle(cycleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NominationResponse, 0, len(nominations))
	for _, n := range nominations {
		out = append(out, *toNominationResponse(n))
	}
	return out, nil
}

// GetByNominator devuelve la nominación del usuario en el ciclo, o nil si no ha nominado.
func (uc *NominationUseCase) GetByNominator(nominatorID, cycleID string) (*dto.NominationResponse, error) {
	n, err := uc.nomRepo.GetByNominator(nominatorID, cycleID)
	if err != nil {
		return nil, err
	}
	return toNominationResponse(n), nil
}

// withinWindow aplica el gating temporal [start, end) cuando el ciclo define ventanas.
func withinWindow(now time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return !now.Before(*start) && now.Before(*end)
}

func toNominationResponse(n *entity.Nomination) *dto.NominationResponse {
	if n == nil {
		return nil
	}
	return &dto.NominationResponse{
		ID:          n.ID,
		NominatorID: n.NominatorID,
		NomineeID:   n.NomineeID,
		CycleID:     n.CycleID,
		Reason:      n.Reason,
		CreatedAt:   n.CreatedAt,
	}
}
