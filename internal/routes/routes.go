package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/instaguera/turnos-api/internal/config"
	"github.com/instaguera/turnos-api/internal/handlers"
	infraRepo "github.com/instaguera/turnos-api/internal/infra/repository"
	"github.com/instaguera/turnos-api/internal/middleware"
	"github.com/instaguera/turnos-api/internal/storage"
	"github.com/instaguera/turnos-api/internal/token"
	ucauth "github.com/instaguera/turnos-api/internal/usecase/auth"
	ucturno "github.com/instaguera/turnos-api/internal/usecase/turno"
	ucusuario "github.com/instaguera/turnos-api/internal/usecase/usuario"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *logrus.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	usuarioRepo := infraRepo.NewUsuarioGormRepository(db)
	turnoRepo := infraRepo.NewTurnoGormRepository(db)

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	uploader := storage.NewS3Uploader(cfg)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	loginUC := ucauth.NewLogin(usuarioRepo, tokens)
	registerUC := ucauth.NewRegister(usuarioRepo, cfg.VerifyEmailDomains)

	listUsuariosUC := ucusuario.NewListUsuarios(usuarioRepo)
	listByRoleUC := ucusuario.NewListUsuariosByRole(usuarioRepo)
	createUsuarioUC := ucusuario.NewCreateUsuario(usuarioRepo)
	updateUsuarioUC := ucusuario.NewUpdateUsuario(usuarioRepo)
	deleteUsuarioUC := ucusuario.NewDeleteUsuario(usuarioRepo)

	listTurnosUC := ucturno.NewListTurnos(turnoRepo)
	getTurnoUC := ucturno.NewGetTurno(turnoRepo)
	createTurnoUC := ucturno.NewCreateTurno(turnoRepo)
	updateTurnoUC := ucturno.NewUpdateTurno(turnoRepo)
	deleteTurnoUC := ucturno.NewDeleteTurno(turnoRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, registerUC, log)

	usuarioHandler := handlers.NewUsuarioHandler(
		listUsuariosUC,
		listByRoleUC,
		createUsuarioUC,
		updateUsuarioUC,
		deleteUsuarioUC,
		log,
	)

	turnoHandler := handlers.NewTurnoHandler(
		listTurnosUC,
		getTurnoUC,
		createTurnoUC,
		updateTurnoUC,
		deleteTurnoUC,
		log,
	)

	uploadHandler := handlers.NewUploadHandler(uploader, log)

	// ======================================================
	// 🌐 RUTAS
	// ======================================================

	// Guard permisivo: parsea identidad si hay token, nunca rechaza.
	// Toda ruta queda abierta a propósito (ver SecurityConfig original).
	r.Use(middleware.Identity(tokens))

	auth := r.Group("/auth")
	{
		auth.POST(
			"/login",
			middleware.LoginRateLimit(rdb, cfg.LoginRateMax, cfg.LoginRateWindow),
			authHandler.Login,
		)
		auth.POST("/register", authHandler.Register)
	}

	usuarios := r.Group("/usuarios")
	{
		usuarios.GET("", usuarioHandler.List)
		usuarios.GET("/clientes", usuarioHandler.ListClientes)
		usuarios.POST("", usuarioHandler.Create)
		usuarios.PATCH("/:id", usuarioHandler.Update)
		usuarios.DELETE("/:id", usuarioHandler.Delete)
	}

	turnos := r.Group("/turnos")
	{
		turnos.GET("", turnoHandler.List)
		turnos.GET("/:id", turnoHandler.Get)
		turnos.POST("", turnoHandler.Create)
		turnos.PATCH("/:id", turnoHandler.Update)
		turnos.DELETE("/:id", turnoHandler.Delete)
	}

	r.POST("/tatuajes", uploadHandler.UploadTatuaje)
}
