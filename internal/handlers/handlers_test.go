package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainturno "github.com/instaguera/turnos-api/internal/domain/turno"
	domainusuario "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/middleware"
	"github.com/instaguera/turnos-api/internal/models"
	"github.com/instaguera/turnos-api/internal/token"
	ucauth "github.com/instaguera/turnos-api/internal/usecase/auth"
	ucturno "github.com/instaguera/turnos-api/internal/usecase/turno"
	ucusuario "github.com/instaguera/turnos-api/internal/usecase/usuario"
)

// ======================================================
// STORE EN MEMORIA
// ======================================================

// fakeStore respalda los dos repositorios de los tests con mapas en
// memoria, manteniendo la semántica del esquema real: borrar un usuario
// arrastra sus turnos, y los turnos cargan cliente y dueño anidados.
type fakeStore struct {
	usuarioSeq uint
	turnoSeq   uint
	usuarios   map[uint]*models.Usuario
	turnos     map[uint]*models.Turno
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		usuarios: map[uint]*models.Usuario{},
		turnos:   map[uint]*models.Turno{},
	}
}

type fakeUsuarioRepo struct{ s *fakeStore }

func (r *fakeUsuarioRepo) FindByID(ctx context.Context, id uint) (*models.Usuario, error) {
	if u, ok := r.s.usuarios[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, httperr.ErrBusiness("usuario_not_found")
}

func (r *fakeUsuarioRepo) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	for _, u := range r.s.usuarios {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("usuario_not_found")
}

func (r *fakeUsuarioRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range r.s.usuarios {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUsuarioRepo) List(ctx context.Context) ([]models.Usuario, error) {
	var out []models.Usuario
	for _, u := range r.s.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) ListByRole(ctx context.Context, role domainusuario.Role) ([]models.Usuario, error) {
	var out []models.Usuario
	for _, u := range r.s.usuarios {
		if u.Role == string(role) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Create(ctx context.Context, u *models.Usuario) error {
	r.s.usuarioSeq++
	u.ID = r.s.usuarioSeq
	cp := *u
	r.s.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) Save(ctx context.Context, u *models.Usuario) error {
	cp := *u
	r.s.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) DeleteWithTurnos(ctx context.Context, id uint) error {
	if _, ok := r.s.usuarios[id]; !ok {
		return httperr.ErrBusiness("usuario_not_found")
	}
	for tid, t := range r.s.turnos {
		if t.ClienteID == id || t.DuenoID == id {
			delete(r.s.turnos, tid)
		}
	}
	delete(r.s.usuarios, id)
	return nil
}

var _ domainusuario.Repository = (*fakeUsuarioRepo)(nil)

type fakeTurnoRepo struct{ s *fakeStore }

func (r *fakeTurnoRepo) decorate(t models.Turno) models.Turno {
	if u, ok := r.s.usuarios[t.ClienteID]; ok {
		t.Cliente = *u
	}
	if u, ok := r.s.usuarios[t.DuenoID]; ok {
		t.Dueno = *u
	}
	return t
}

func (r *fakeTurnoRepo) List(ctx context.Context) ([]models.Turno, error) {
	var out []models.Turno
	for _, t := range r.s.turnos {
		out = append(out, r.decorate(*t))
	}
	return out, nil
}

func (r *fakeTurnoRepo) GetByID(ctx context.Context, id uint) (*models.Turno, error) {
	if t, ok := r.s.turnos[id]; ok {
		cp := r.decorate(*t)
		return &cp, nil
	}
	return nil, httperr.ErrBusiness("turno_not_found")
}

func (r *fakeTurnoRepo) Create(ctx context.Context, t *models.Turno) error {
	r.s.turnoSeq++
	t.ID = r.s.turnoSeq
	cp := *t
	cp.Cliente = models.Usuario{}
	cp.Dueno = models.Usuario{}
	r.s.turnos[t.ID] = &cp
	return nil
}

func (r *fakeTurnoRepo) Save(ctx context.Context, t *models.Turno) error {
	cp := *t
	cp.Cliente = models.Usuario{}
	cp.Dueno = models.Usuario{}
	r.s.turnos[t.ID] = &cp
	return nil
}

func (r *fakeTurnoRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.s.turnos[id]; !ok {
		return httperr.ErrBusiness("turno_not_found")
	}
	delete(r.s.turnos, id)
	return nil
}

func (r *fakeTurnoRepo) UsuarioExists(ctx context.Context, id uint) (bool, error) {
	_, ok := r.s.usuarios[id]
	return ok, nil
}

var _ domainturno.Repository = (*fakeTurnoRepo)(nil)

// ======================================================
// ROUTER DE PRUEBA
// ======================================================

// newTestRouter arma el árbol de rutas real sobre los repos en memoria.
func newTestRouter(t *testing.T) (*gin.Engine, *fakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	usuarioRepo := &fakeUsuarioRepo{s: store}
	turnoRepo := &fakeTurnoRepo{s: store}

	log := logrus.New()
	log.SetOutput(io.Discard)

	tokens := token.NewManager("test-secret", time.Hour)

	authHandler := NewAuthHandler(
		ucauth.NewLogin(usuarioRepo, tokens),
		ucauth.NewRegister(usuarioRepo, false),
		log,
	)
	usuarioHandler := NewUsuarioHandler(
		ucusuario.NewListUsuarios(usuarioRepo),
		ucusuario.NewListUsuariosByRole(usuarioRepo),
		ucusuario.NewCreateUsuario(usuarioRepo),
		ucusuario.NewUpdateUsuario(usuarioRepo),
		ucusuario.NewDeleteUsuario(usuarioRepo),
		log,
	)
	turnoHandler := NewTurnoHandler(
		ucturno.NewListTurnos(turnoRepo),
		ucturno.NewGetTurno(turnoRepo),
		ucturno.NewCreateTurno(turnoRepo),
		ucturno.NewUpdateTurno(turnoRepo),
		ucturno.NewDeleteTurno(turnoRepo),
		log,
	)

	r := gin.New()
	r.Use(middleware.Identity(tokens))

	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
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

	return r, store
}

// ======================================================
// HELPERS
// ======================================================

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var e httperr.HTTPError
	decodeJSON(t, w, &e)
	return e.Code
}

func seedUsuario(t *testing.T, store *fakeStore, username, email string, role domainusuario.Role) uint {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)

	store.usuarioSeq++
	store.usuarios[store.usuarioSeq] = &models.Usuario{
		ID:           store.usuarioSeq,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(role),
	}
	return store.usuarioSeq
}
