package auth_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-pro/internal/application/auth"
	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/sqlite"
	"github.com/tu-usuario/tienda-pro/pkg/config"
	"github.com/tu-usuario/tienda-pro/pkg/logger"
)

// newAuthUseCase levanta un store real en un archivo temporal con la cuenta
// admin sembrada (admin / admin123).
func newAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store := sqlite.NewStore(config.StoreConfig{
		Path:         filepath.Join(t.TempDir(), "store.db"),
		BusyTimeout:  5 * time.Second,
		MaxRetries:   5,
		RetryBackoff: 10 * time.Millisecond,
	})
	seed := config.SeedConfig{AdminUsername: "admin", AdminPassword: "admin123", AdminName: "Administrador"}
	require.NoError(t, sqlite.NewSchemaManager(store, seed, logger.Nop()).InitSchema(context.Background()))

	userRepo := sqlite.NewUserRepository(sqlite.NewExecutor(store, logger.Nop()))
	return auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "tienda-pro-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: La cuenta admin sembrada entra con sus credenciales.
func TestLogin_AdminSembrado(t *testing.T) {
	uc := newAuthUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token, "debe emitirse un JWT")
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, "admin", out.User.Role)
}

// Caso 2: Password incorrecto y usuario inexistente fallan idéntico, sin
// filtrar qué cuentas existen.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "fantasma", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 3: Credenciales vacías se rechazan antes de tocar el store.
func TestLogin_CamposVacios(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Username: "x", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateUser
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: Alta completa — el usuario nuevo puede loguearse con su password.
func TestCreateUser_YLogin(t *testing.T) {
	uc := newAuthUseCase(t)

	out, err := uc.CreateUser(dto.CreateUserRequest{
		Username:  "maria",
		Password:  "secreta123",
		Role:      "cliente",
		Name:      "María Clara",
		BirthDate: "1990-05-12",
	})
	require.NoError(t, err)
	assert.Positive(t, out.ID)
	assert.Equal(t, "cliente", out.Role)

	login, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "maria", login.User.Username)
}

// Caso 5: Sin rol explícito, el alta queda como cliente.
func TestCreateUser_RolDefaultCliente(t *testing.T) {
	uc := newAuthUseCase(t)

	out, err := uc.CreateUser(dto.CreateUserRequest{Username: "joana", Password: "pw12345"})
	require.NoError(t, err)
	assert.Equal(t, "cliente", out.Role)
}

// Caso 6: Username repetido → ErrDuplicate; rol desconocido → ErrInvalidInput.
func TestCreateUser_Invalidos(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "admin", Password: "pw12345"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el username del admin sembrado ya existe")

	_, err = uc.CreateUser(dto.CreateUserRequest{Username: "x", Password: "pw", Role: "superusuario"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateUserImage
// ──────────────────────────────────────────────────────────────────────────────

// Caso 7: La imagen se persiste y la respuesta lo refleja; id inexistente falla
// tipado.
func TestUpdateUserImage(t *testing.T) {
	uc := newAuthUseCase(t)

	created, err := uc.CreateUser(dto.CreateUserRequest{Username: "maria", Password: "pw12345"})
	require.NoError(t, err)
	assert.False(t, created.HasProfileImage)

	out, err := uc.UpdateUserImage(created.ID, []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.True(t, out.HasProfileImage, "tras la actualización debe haber imagen")

	_, err = uc.UpdateUserImage(9999, []byte{0x01})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
