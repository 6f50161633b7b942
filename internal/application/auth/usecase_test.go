package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/recognition-api/internal/application/auth"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/domain"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/infrastructure/memory"
	"github.com/tu-usuario/recognition-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func newAuthUseCase() (*auth.AuthUseCase, *memory.UserRepo) {
	users := memory.NewUserRepository()
	uc := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "recognition-api",
	})
	return uc, users
}

func register(t *testing.T, uc *auth.AuthUseCase, name string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		Name:       name,
		Email:      name + "@example.com",
		Password:   "password123",
		Department: "Engineering",
	})
	require.NoError(t, err)
	return out
}

// El primer usuario registrado arranca como ADMIN; los siguientes como EMPLOYEE.
func TestRegister_PrimerUsuarioEsAdmin(t *testing.T) {
	uc, _ := newAuthUseCase()

	first := register(t, uc, "alice")
	assert.Equal(t, entity.RoleAdmin, first.Role)
	assert.Equal(t, entity.UserStatusActive, first.Status)

	second := register(t, uc, "bob")
	assert.Equal(t, entity.RoleEmployee, second.Role)
}

func TestRegister_RechazaEmailDuplicado(t *testing.T) {
	uc, _ := newAuthUseCase()
	register(t, uc, "alice")

	_, err := uc.Register(dto.RegisterRequest{
		Name:     "alice clon",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenValido(t *testing.T) {
	uc, _ := newAuthUseCase()
	created := register(t, uc, "alice")

	out, err := uc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, created.ID, out.User.ID)
	assert.Equal(t, entity.UserStatusActive, out.User.Status)

	// El token contiene la identidad y el rol del usuario.
	userID, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUseCase()
	register(t, uc, "alice")

	_, err := uc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un usuario desactivado no puede iniciar sesión aunque sus credenciales sean válidas.
func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, users := newAuthUseCase()
	created := register(t, uc, "alice")

	u, err := users.GetByID(created.ID)
	require.NoError(t, err)
	u.Status = entity.UserStatusInactive
	require.NoError(t, users.Update(u))

	_, err = uc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
