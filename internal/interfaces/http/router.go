package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/recognition-api/internal/application/auth"
	"github.com/tu-usuario/recognition-api/internal/application/recognition"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *recognition.UserUseCase
	LifecycleUC  *recognition.LifecycleUseCase
	NominationUC *recognition.NominationUseCase
	VoteUC       *recognition.VoteUseCase
	ResultsUC    *recognition.ResultsUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Cycles
	cycleHandler := NewCycleHandler(deps.LifecycleUC, deps.ResultsUC)
	cycles := protected.Group("/cycles")
	cycles.Get("/active", cycleHandler.Active)
	cycles.Get("/", adminOnly, cycleHandler.List)
	cycles.Post("/", adminOnly, cycleHandler.Create)
	cycles.Patch("/:id/status", adminOnly, cycleHandler.AdvanceStatus)
	cycles.Post("/:id/winner", adminOnly, cycleHandler.DeclareWinner)
	cycles.Get("/:id/stats", cycleHandler.Stats)
	cycles.Get("/:id/leader", cycleHandler.Leader)

	// Nominations
	nominationHandler := NewNominationHandler(deps.NominationUC)
	nominations := protected.Group("/nominations")
	nominations.Post("/", nominationHandler.Submit)
	nominations.Get("/mine", nominationHandler.Mine)
	cycles.Get("/:id/nominations", adminOnly, nominationHandler.ListForCycle)

	// Votes
	voteHandler := NewVoteHandler(deps.VoteUC)
	votes := protected.Group("/votes")
	votes.Post("/", voteHandler.Submit)
	votes.Get("/mine", voteHandler.Mine)
	cycles.Get("/:id/candidates", voteHandler.Candidates)
	cycles.Get("/:id/votes", adminOnly, voteHandler.ListForCycle)

	// Users / directorio
	userHandler := NewUserHandler(deps.UserUC, deps.ResultsUC)
	protected.Get("/employees", userHandler.ListEmployees)
	protected.Get("/me/history", userHandler.MyHistory)
	users := protected.Group("/users", adminOnly)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/status", userHandler.SetStatus)
	users.Get("/:id/history", userHandler.History)
}
