package recognition

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/domain"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/domain/repository"
)

// VoteUseCase ledger de votos: uno por (votante, ciclo). El conjunto de
// candidatos de un ciclo son los nominados distintos de su ledger de nominaciones.
type VoteUseCase struct {
	cycleRepo repository.CycleRepository
	userRepo  repository.UserRepository
	nomRepo   repository.NominationRepository
	voteRepo  repository.VoteRepository
}

// NewVoteUseCase construye el caso de uso de votación.
func NewVoteUseCase(
	cycleRepo repository.CycleRepository,
	userRepo repository.UserRepository,
	nomRepo repository.NominationRepository,
	voteRepo repository.VoteRepository,
) *VoteUseCase {
	return &VoteUseCase{cycleRepo: cycleRepo, userRepo: userRepo, nomRepo: nomRepo, voteRepo: voteRepo}
}

// Submit registra un voto. Reglas, en orden:
//   - el ciclo debe existir y estar en fase VOTING (y dentro de la ventana
//     si el ciclo la define) → ErrPhaseClosed
//   - el nominado debe aparecer en el ledger de nominaciones del ciclo →
//     ErrInvalidCandidate (revalidado en servidor, no solo en la UI)
//   - votarse a sí mismo es válido si otro lo nominó legítimamente
//   - la unicidad por (votante, ciclo) la garantiza el almacenamiento
//     de forma atómica → ErrDuplicateSubmission
func (uc *VoteUseCase) Submit(voterID string, in dto.SubmitVoteRequest) (*dto.VoteResponse, error) {
	cycle, err := uc.cycleRepo.GetByID(in.CycleID)
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if cycle.Status != entity.CycleStatusVoting {
		return nil, domain.ErrPhaseClosed
	}
	if !withinWindow(now, cycle.VotingStart, cycle.VotingEnd) {
		return nil, domain.ErrPhaseClosed
	}

	nominations, err := uc.nomRepo.ListByCycle(in.CycleID)
	if err != nil {
		return nil, err
	}
	isCandidate := false
	for _, n := range nominations {
		if n.NomineeID == in.NomineeID {
			isCandidate = true
			break
		}
	}
	if !isCandidate {
		return nil, domain.ErrInvalidCandidate
	}

	vote := &entity.Vote{
		ID:        uuid.New().String(),
		VoterID:   voterID,
		NomineeID: in.NomineeID,
		CycleID:   in.CycleID,
		CreatedAt: now,
	}
	if err := uc.voteRepo.Create(vote); err != nil {
		return nil, err
	}
	return toVoteResponse(vote), nil
}

// GetByVoter devuelve el voto del usuario en el ciclo, o nil si no ha votado.
func (uc *VoteUseCase) GetByVoter(voterID, cycleID string) (*dto.VoteResponse, error) {
	v, err := uc.voteRepo.GetByVoter(voterID, cycleID)
	if err != nil {
		return nil, err
	}
	return toVoteResponse(v), nil
}

// ListForCycle devuelve todos los votos del ciclo (vista de admin).
func (uc *VoteUseCase) ListForCycle(cycleID string) ([]dto.VoteResponse, error) {
	votes, err := uc.voteRepo.ListByCycle(cycleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VoteResponse, 0, len(votes))
	for _, v := range votes {
		out = append(out, *toVoteResponse(v))
	}
	return out, nil
}

// Candidates devuelve los nominados distintos del ciclo con su conteo de
// nominaciones y nombre resuelto, ordenados por conteo descendente y nombre.
func (uc *VoteUseCase) Candidates(cycleID string) ([]dto.CandidateResponse, error) {
	nominations, err := uc.nomRepo.ListByCycle(cycleID)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, n := range nominations {
		counts[n.NomineeID]++
	}
	out := make([]dto.CandidateResponse, 0, len(counts))
	for nomineeID, count := range counts {
		c := dto.CandidateResponse{
			NomineeID:       nomineeID,
			NomineeName:     unknownName,
			NominationCount: count,
		}
		if u, err := uc.userRepo.GetByID(nomineeID); err == nil && u != nil {
			c.NomineeName = u.Name
			c.Department = u.Department
		}
		out = append(out, c)
	}
	sortCandidates(out)
	return out, nil
}

func toVoteResponse(v *entity.Vote) *dto.VoteResponse {
	if v == nil {
		return nil
	}
	return &dto.VoteResponse{
		ID:        v.ID,
		VoterID:   v.VoterID,
		NomineeID: v.NomineeID,
		CycleID:   v.CycleID,
		CreatedAt: v.CreatedAt,
	}
}
