package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/ligaspequenas/liga-api/internal/application/auth"
	"github.com/ligaspequenas/liga-api/internal/application/usecase"
	"github.com/ligaspequenas/liga-api/internal/infrastructure/authgw"
	infrapdf "github.com/ligaspequenas/liga-api/internal/infrastructure/pdf"
	"github.com/ligaspequenas/liga-api/internal/infrastructure/postgres"
	httpRouter "github.com/ligaspequenas/liga-api/internal/interfaces/http"
	"github.com/ligaspequenas/liga-api/internal/metrics"
	"github.com/ligaspequenas/liga-api/pkg/config"
	"github.com/ligaspequenas/liga-api/pkg/logger"
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

	if cfg.DB.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	rolRepo := postgres.NewRolRepository(pool)
	usuarioRolRepo := postgres.NewUsuarioRolRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	equipoRepo := postgres.NewEquipoRepository(pool)
	jugadorRepo := postgres.NewJugadorRepository(pool)
	posicionRepo := postgres.NewPosicionRepository(pool)

	gateway := authgw.NewLocalGateway(pool, authgw.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	gate := auth.NewRoleGate(cfg.Auth.SuperAdminEmail)

	sessionStore := auth.NewSessionStore(gateway, gate, log)
	defer sessionStore.Cerrar()

	// Bitácora de cambios de sesión del proceso.
	sessionStore.Observar(func(identidad *auth.Identidad, esSuperAdmin bool) {
		ev := log.Info().Bool("super_admin", esSuperAdmin)
		if identidad == nil {
			ev.Msg("sesión anónima")
			return
		}
		ev.Str("usuario_id", identidad.ID).Msg("sesión autenticada")
	})
	sessionStore.Inicializar(ctx)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	usuarioUC := usecase.NewUsuarioUseCase(gateway, usuarioRepo, rolRepo, usuarioRolRepo, log, collector)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	equipoUC := usecase.NewEquipoUseCase(equipoRepo, categoriaRepo)
	jugadorUC := usecase.NewJugadorUseCase(jugadorRepo, equipoRepo)
	posicionUC := usecase.NewPosicionUseCase(posicionRepo)

	rosterGenerator := infrapdf.NewMarotoRosterGenerator(cfg.App.Name)

	rateLimiter := httpRouter.NewRateLimiter(httpRouter.RateLimiterConfig{
		LoginRate:       rate.Limit(float64(cfg.Rate.LoginPerMinute) / 60.0),
		LoginBurst:      cfg.Rate.LoginBurst,
		CleanupInterval: 5 * time.Minute,
	})
	defer rateLimiter.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware(collector))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Liga Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(registry)))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionStore: sessionStore,
		RoleGate:     gate,
		UsuarioUC:    usuarioUC,
		CategoriaUC:  categoriaUC,
		EquipoUC:     equipoUC,
		JugadorUC:    jugadorUC,
		PosicionUC:   posicionUC,
		EquipoRepo:   equipoRepo,
		JugadorRepo:  jugadorRepo,
		Roster:       rosterGenerator,
		Metricas:     collector,
		RateLimiter:  rateLimiter,
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
