package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/httpresp"
	"github.com/instaguera/turnos-api/internal/models"
	ucauth "github.com/instaguera/turnos-api/internal/usecase/auth"
)

type AuthHandler struct {
	loginUC    *ucauth.Login
	registerUC *ucauth.Register
	log        *logrus.Logger
}

func NewAuthHandler(
	loginUC *ucauth.Login,
	registerUC *ucauth.Register,
	log *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		loginUC:    loginUC,
		registerUC: registerUC,
		log:        log,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Celular  string `json:"celular"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
}

// --------- Responses ---------

// AuthResponse replica el contrato que el frontend guarda en local:
// token más el usuario logueado (sin hash, via json:"-").
type AuthResponse struct {
	Token string          `json:"token"`
	User  *models.Usuario `json:"user"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	out, err := h.loginUC.Execute(c.Request.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_credentials") {
			httperr.Unauthorized(c, "invalid_credentials", "Email o contraseña incorrectos.")
			return
		}
		h.log.WithError(err).Error("login failed")
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.OK(c, AuthResponse{
		Token: out.Token,
		User:  out.Usuario,
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	_, err := h.registerUC.Execute(c.Request.Context(), ucauth.RegisterInput{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Celular:  req.Celular,
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "email_already_registered"):
			httperr.BadRequest(c, "email_already_registered", "El email ya está registrado")
		case httperr.IsBusiness(err, "invalid_role"):
			httperr.BadRequest(c, "invalid_role", "Rol inválido: debe ser CLIENTE o DUENO.")
		case httperr.IsBusiness(err, "invalid_email_domain"):
			httperr.BadRequest(c, "invalid_email_domain", "El dominio del email no parece válido.")
		default:
			h.log.WithError(err).Error("register failed")
			httperr.Internal(c, "internal_error", "Error interno.")
		}
		return
	}

	httpresp.Message(c, "Usuario registrado con éxito")
}
