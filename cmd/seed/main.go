// Seeder de datos de demostración: crea un admin, empleados de ejemplo y un
// ciclo cerrado con nominaciones y votos, para probar la API sin UI.
// Uso: go run ./cmd/seed (idempotente: si el admin ya existe no hace nada).
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/recognition-api/pkg/config"
	"github.com/tu-usuario/recognition-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "password123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	cycleRepo := postgres.NewCycleRepository(pool)
	nominationRepo := postgres.NewNominationRepository(pool)
	voteRepo := postgres.NewVoteRepository(pool)

	existing, err := userRepo.GetByEmail("admin@example.com")
	if err != nil {
		log.Fatal().Err(err).Msg("verificar admin")
	}
	if existing != nil {
		log.Info().Msg("los datos de demostración ya existen, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	now := time.Now()
	newUser := func(name, email, department, role string) *entity.User {
		return &entity.User{
			ID:           uuid.New().String(),
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			Department:   department,
			Status:       entity.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	admin := newUser("Admin", "admin@example.com", "People", entity.RoleAdmin)
	alice := newUser("Alice Johnson", "alice@example.com", "Engineering", entity.RoleEmployee)
	bob := newUser("Bob Smith", "bob@example.com", "Engineering", entity.RoleEmployee)
	carol := newUser("Carol Pérez", "carol@example.com", "Sales", entity.RoleEmployee)
	dave := newUser("Dave Kim", "dave@example.com", "Support", entity.RoleEmployee)

	for _, u := range []*entity.User{admin, alice, bob, carol, dave} {
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("crear usuario")
		}
	}

	// Ciclo cerrado del mes pasado, con ganador y actividad en ambos ledgers.
	lastMonth := now.AddDate(0, -1, 0)
	cycle := &entity.Cycle{
		ID:        uuid.New().String(),
		Month:     int(lastMonth.Month()) - 1,
		Year:      lastMonth.Year(),
		Status:    entity.CycleStatusNomination,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := cycleRepo.CreateExclusive(ctx, cycle); err != nil {
		log.Fatal().Err(err).Msg("crear ciclo")
	}

	nominate := func(nominator, nominee *entity.User, reason string) {
		n := &entity.Nomination{
			ID:          uuid.New().String(),
			NominatorID: nominator.ID,
			NomineeID:   nominee.ID,
			CycleID:     cycle.ID,
			Reason:      reason,
			CreatedAt:   now,
		}
		if err := nominationRepo.Create(n); err != nil {
			log.Fatal().Err(err).Msg("crear nominación")
		}
	}
	nominate(alice, bob, "Sacó adelante la migración sin downtime")
	nominate(carol, bob, "Siempre dispuesto a ayudar al equipo")
	nominate(dave, carol, "Cerró el trimestre con el mejor resultado")

	vote := func(voter, nominee *entity.User) {
		v := &entity.Vote{
			ID:        uuid.New().String(),
			VoterID:   voter.ID,
			NomineeID: nominee.ID,
			CycleID:   cycle.ID,
			CreatedAt: now,
		}
		if err := voteRepo.Create(v); err != nil {
			log.Fatal().Err(err).Msg("crear voto")
		}
	}
	vote(alice, bob)
	vote(carol, bob)
	vote(dave, carol)

	if err := cycleRepo.CloseWithWinner(cycle.ID, bob.ID); err != nil {
		log.Fatal().Err(err).Msg("registrar ganador y cerrar ciclo")
	}

	log.Info().
		Str("admin", admin.Email).
		Str("password", demoPassword).
		Msg("datos de demostración creados")
}
