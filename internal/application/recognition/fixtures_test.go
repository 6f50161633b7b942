package recognition_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/application/recognition"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture compartido: repos en memoria + todos los use cases cableados igual
// que en cmd/api/main.go.
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	users       *memory.UserRepo
	cycles      *memory.CycleRepo
	nominations *memory.NominationRepo
	votes       *memory.VoteRepo

	lifecycle  *recognition.LifecycleUseCase
	nomination *recognition.NominationUseCase
	vote       *recognition.VoteUseCase
	results    *recognition.ResultsUseCase
}

func newFixture() *fixture {
	users := memory.NewUserRepository()
	cycles := memory.NewCycleRepository()
	nominations := memory.NewNominationRepository()
	votes := memory.NewVoteRepository()

	results := recognition.NewResultsUseCase(users, cycles, nominations, votes)
	return &fixture{
		users:       users,
		cycles:      cycles,
		nominations: nominations,
		votes:       votes,
		lifecycle:   recognition.NewLifecycleUseCase(cycles, results),
		nomination:  recognition.NewNominationUseCase(cycles, users, nominations),
		vote:        recognition.NewVoteUseCase(cycles, users, nominations, votes),
		results:     results,
	}
}

// addEmployee registra un EMPLOYEE activo en el directorio.
func (f *fixture) addEmployee(t *testing.T, name string) *entity.User {
	t.Helper()
	return f.addUser(t, name, entity.RoleEmployee, entity.UserStatusActive)
}

func (f *fixture) addUser(t *testing.T, name, role, status string) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		Role:         role,
		Department:   "Engineering",
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, f.users.Create(u))
	return u
}

// addCycle inserta un ciclo directamente en el repo, sin pasar por las
// validaciones de CreateCycle, para poder armar historias arbitrarias.
func (f *fixture) addCycle(t *testing.T, month, year int, status string) *entity.Cycle {
	t.Helper()
	now := time.Now()
	c := &entity.Cycle{
		ID:        uuid.New().String(),
		Month:     month,
		Year:      year,
		Status:    entity.CycleStatusNomination,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.cycles.CreateExclusive(context.Background(), c))
	if status != entity.CycleStatusNomination {
		require.NoError(t, f.cycles.UpdateStatus(c.ID, status))
		c.Status = status
	}
	return c
}

// nominate inserta una nominación vía el use case y exige éxito.
func (f *fixture) nominate(t *testing.T, nominator, nominee *entity.User, cycle *entity.Cycle, reason string) {
	t.Helper()
	_, err := f.nomination.Submit(nominator.ID, submitNomination(cycle.ID, nominee.ID, reason))
	require.NoError(t, err)
}

// castVote inserta un voto vía el use case y exige éxito.
func (f *fixture) castVote(t *testing.T, voter, nominee *entity.User, cycle *entity.Cycle) {
	t.Helper()
	_, err := f.vote.Submit(voter.ID, submitVote(cycle.ID, nominee.ID))
	require.NoError(t, err)
}

func submitNomination(cycleID, nomineeID, reason string) dto.SubmitNominationRequest {
	return dto.SubmitNominationRequest{CycleID: cycleID, NomineeID: nomineeID, Reason: reason}
}

func submitVote(cycleID, nomineeID string) dto.SubmitVoteRequest {
	return dto.SubmitVoteRequest{CycleID: cycleID, NomineeID: nomineeID}
}
