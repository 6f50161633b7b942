package recognition

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/domain/repository"
)

// unknownName placeholder cuando el directorio no resuelve un nombre.
// Degradación controlada: una falla parcial del directorio no tumba el leaderboard.
const unknownName = "Unknown"

var hundred = decimal.NewFromInt(100)

// ResultsUseCase agrega los ledgers contra el directorio de usuarios para
// producir el leaderboard del ciclo y el historial por empleado. Todo se
// recalcula bajo demanda; a los volúmenes esperados (decenas de ciclos,
// cientos de registros por ciclo) el join completo es suficiente.
type ResultsUseCase struct {
	userRepo  repository.UserRepository
	cycleRepo repository.CycleRepository
	nomRepo   repository.NominationRepository
	voteRepo  repository.VoteRepository
}

// NewResultsUseCase construye el agregador de resultados.
func NewResultsUseCase(
	userRepo repository.UserRepository,
	cycleRepo repository.CycleRepository,
	nomRepo repository.NominationRepository,
	voteRepo repository.VoteRepository,
) *ResultsUseCase {
	return &ResultsUseCase{userRepo: userRepo, cycleRepo: cycleRepo, nomRepo: nomRepo, voteRepo: voteRepo}
}

// ComputeStats produce una entrada por nominado que aparezca en cualquiera de
// los dos ledgers del ciclo. Orden determinista: votos desc, nominaciones desc,
// nomineeID asc como desempate reproducible.
func (uc *ResultsUseCase) ComputeStats(cycleID string) ([]entity.CycleStats, error) {
	nominations, err := uc.nomRepo.ListByCycle(cycleID)
	if err != nil {
		return nil, err
	}
	votes, err := uc.voteRepo.ListByCycle(cycleID)
	if err != nil {
		return nil, err
	}

	byNominee := make(map[string]*entity.CycleStats)
	entry := func(nomineeID string) *entity.CycleStats {
		if s, ok := byNominee[nomineeID]; ok {
			return s
		}
		s := &entity.CycleStats{NomineeID: nomineeID, NomineeName: uc.resolveName(nomineeID)}
		byNominee[nomineeID] = s
		return s
	}
	for _, n := range nominations {
		entry(n.NomineeID).NominationCount++
	}
	for _, v := range votes {
		entry(v.NomineeID).VoteCount++
	}

	stats := make([]entity.CycleStats, 0, len(byNominee))
	for _, s := range byNominee {
		stats = append(stats, *s)
	}
	totalVotes := len(votes)
	for i := range stats {
		stats[i].VoteShare = voteShare(stats[i].VoteCount, totalVotes)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].VoteCount != stats[j].VoteCount {
			return stats[i].VoteCount > stats[j].VoteCount
		}
		if stats[i].NominationCount != stats[j].NominationCount {
			return stats[i].NominationCount > stats[j].NominationCount
		}
		return stats[i].NomineeID < stats[j].NomineeID
	})
	return stats, nil
}

// ComputeLeader devuelve la primera entrada del leaderboard, o nil si está vacío.
func (uc *ResultsUseCase) ComputeLeader(cycleID string) (*entity.CycleStats, error) {
	stats, err := uc.ComputeStats(cycleID)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return nil, nil
	}
	return &stats[0], nil
}

// ComputeEmployeeHistory reporta, por cada ciclo de la historia, la actividad
// del usuario: a quién nominó y por qué, si votó, qué nominaciones recibió y
// cuántos votos recibió. Ordenado por recencia del ciclo.
func (uc *ResultsUseCase) ComputeEmployeeHistory(userID string) ([]entity.EmployeeHistoryEntry, error) {
	cycles, err := uc.cycleRepo.List()
	if err != nil {
		return nil, err
	}
	nominations, err := uc.nomRepo.ListAll()
	if err != nil {
		return nil, err
	}
	votes, err := uc.voteRepo.ListAll()
	if err != nil {
		return nil, err
	}

	history := make([]entity.EmployeeHistoryEntry, 0, len(cycles))
	for _, cycle := range cycles {
		activity := entity.CycleActivity{ReceivedNominations: []entity.ReceivedNomination{}}
		for _, n := range nominations {
			if n.CycleID != cycle.ID {
				continue
			}
			if n.NominatorID == userID {
				activity.Nominated = &entity.GivenNomination{
					NomineeName: uc.resolveName(n.NomineeID),
					Reason:      n.Reason,
				}
			}
			if n.NomineeID == userID {
				activity.ReceivedNominations = append(activity.ReceivedNominations, entity.ReceivedNomination{
					FromName: uc.resolveName(n.NominatorID),
					Reason:   n.Reason,
				})
			}
		}
		for _, v := range votes {
			if v.CycleID != cycle.ID {
				continue
			}
			if v.VoterID == userID {
				activity.Voted = true
			}
			if v.NomineeID == userID {
				activity.VotesReceived++
			}
		}
		history = append(history, entity.EmployeeHistoryEntry{Cycle: cycle, Activity: activity})
	}
	// cycleRepo.List ya ordena por (year, month) descendente, que coincide
	// con la recencia year*12+month.
	return history, nil
}

// resolveName busca el nombre en el directorio; si el lookup falla o el usuario
// no existe devuelve el placeholder, nunca un error.
func (uc *ResultsUseCase) resolveName(userID string) string {
	u, err := uc.userRepo.GetByID(userID)
	if err != nil || u == nil {
		return unknownName
	}
	return u.Name
}

// voteShare porcentaje exacto del total de votos, redondeado a un decimal.
func voteShare(count, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred).
		Round(1)
}

// StatsToResponse mapea el leaderboard a su DTO de salida.
func StatsToResponse(stats []entity.CycleStats) []dto.CycleStatsResponse {
	out := make([]dto.CycleStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, dto.CycleStatsResponse{
			NomineeID:       s.NomineeID,
			NomineeName:     s.NomineeName,
			NominationCount: s.NominationCount,
			VoteCount:       s.VoteCount,
			VoteShare:       s.VoteShare.StringFixed(1),
		})
	}
	return out
}

// HistoryToResponse mapea el historial a su DTO de salida.
func HistoryToResponse(history []entity.EmployeeHistoryEntry) []dto.HistoryEntryResponse {
	out := make([]dto.HistoryEntryResponse, 0, len(history))
	for _, h := range history {
		entry := dto.HistoryEntryResponse{
			Cycle:               *ToCycleResponse(h.Cycle),
			Voted:               h.Activity.Voted,
			ReceivedNominations: make([]dto.ReceivedNominationResponse, 0, len(h.Activity.ReceivedNominations)),
			VotesReceived:       h.Activity.VotesReceived,
		}
		if h.Activity.Nominated != nil {
			entry.Nominated = &dto.GivenNominationResponse{
				NomineeName: h.Activity.Nominated.NomineeName,
				Reason:      h.Activity.Nominated.Reason,
			}
		}
		for _, rn := range h.Activity.ReceivedNominations {
			entry.ReceivedNominations = append(entry.ReceivedNominations, dto.ReceivedNominationResponse{
				From:   rn.FromName,
				Reason: rn.Reason,
			})
		}
		out = append(out, entry)
	}
	return out
}

// sortCandidates ordena candidatos por nominaciones desc y nombre asc.
func sortCandidates(candidates []dto.CandidateResponse) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].NominationCount != candidates[j].NominationCount {
			return candidates[i].NominationCount > candidates[j].NominationCount
		}
		return candidates[i].NomineeName < candidates[j].NomineeName
	})
}
