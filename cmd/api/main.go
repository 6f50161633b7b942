package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/recognition-api/internal/application/auth"
	"github.com/tu-usuario/recognition-api/internal/application/recognition"
	"github.com/tu-usuario/recognition-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/recognition-api/internal/interfaces/http"
	"github.com/tu-usuario/recognition-api/pkg/config"
	"github.com/tu-usuario/recognition-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

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

	resultsUC := recognition.NewResultsUseCase(userRepo, cycleRepo, nominationRepo, voteRepo)
	lifecycleUC := recognition.NewLifecycleUseCase(cycleRepo, resultsUC)
	nominationUC := recognition.NewNominationUseCase(cycleRepo, userRepo, nominationRepo)
	voteUC := recognition.NewVoteUseCase(cycleRepo, userRepo, nominationRepo, voteRepo)
	userUC := recognition.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if mw := swaggerMiddleware("./docs/swagger.json"); mw != nil {
		app.Use(mw)
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		LifecycleUC:  lifecycleUC,
		NominationUC: nominationUC,
		VoteUC:       voteUC,
		ResultsUC:    resultsUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// swaggerMiddleware monta la UI de swagger solo si el spec existe en disco.
// swagger.New lee el archivo al construirse y entra en pánico si falta, así
// que un despliegue sin docs/ no debe intentar montarlo.
func swaggerMiddleware(filePath string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Recognition API",
	})
}
