package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ligaspequenas/liga-api/internal/application/auth"
	"github.com/ligaspequenas/liga-api/internal/application/usecase"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
	"github.com/ligaspequenas/liga-api/internal/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionStore *auth.SessionStore
	RoleGate     auth.RoleGate
	UsuarioUC    *usecase.UsuarioUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	EquipoUC     *usecase.EquipoUseCase
	JugadorUC    *usecase.JugadorUseCase
	PosicionUC   *usecase.PosicionUseCase
	EquipoRepo   repository.EquipoRepository
	JugadorRepo  repository.JugadorRepository
	Roster       RosterGenerator
	Metricas     *metrics.Collector
	RateLimiter  *RateLimiter
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth. Login y logout son públicos; signup exige un Bearer Token del
	// SuperAdministrador (el SessionStore repite la verificación con su propio
	// flag) y /me responde con la identidad del token de la petición.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.SessionStore, deps.RoleGate, deps.Metricas)
	authGroup.Post("/login", deps.RateLimiter.LoginMiddleware(), authHandler.Login)
	authGroup.Post("/signup", AuthMiddleware(deps.JWTSecret), RequireSuperAdmin(deps.RoleGate), authHandler.SignUp)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (protegido, solo SuperAdministrador)
	usuarios := protected.Group("/usuarios", RequireSuperAdmin(deps.RoleGate))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/roles", usuarioHandler.Roles)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Deactivate)

	// Categorías (protegido)
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Deactivate)

	// Equipos (protegido)
	equipos := protected.Group("/equipos")
	equipoHandler := NewEquipoHandler(deps.EquipoUC, deps.EquipoRepo, deps.JugadorRepo, deps.Roster)
	equipos.Post("/", equipoHandler.Create)
	equipos.Get("/", equipoHandler.List)
	equipos.Get("/:id", equipoHandler.GetByID)
	equipos.Put("/:id", equipoHandler.Update)
	equipos.Delete("/:id", equipoHandler.Deactivate)
	equipos.Get("/:id/roster.pdf", equipoHandler.Roster)

	// Jugadores (protegido)
	jugadores := protected.Group("/jugadores")
	jugadorHandler := NewJugadorHandler(deps.JugadorUC)
	jugadores.Post("/", jugadorHandler.Create)
	jugadores.Get("/", jugadorHandler.List)
	jugadores.Get("/:id", jugadorHandler.GetByID)
	jugadores.Put("/:id", jugadorHandler.Update)
	jugadores.Delete("/:id", jugadorHandler.Deactivate)

	// Posiciones (protegido, solo lectura)
	posiciones := protected.Group("/posiciones")
	posicionHandler := NewPosicionHandler(deps.PosicionUC)
	posiciones.Get("/", posicionHandler.List)
}
