package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-pro/internal/application/usecase"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/sqlite"
	"github.com/tu-usuario/tienda-pro/pkg/config"
	"github.com/tu-usuario/tienda-pro/pkg/logger"
)

func newUserUseCase(t *testing.T) (*usecase.UserUseCase, *sqlite.UserRepo) {
	t.Helper()
	store := sqlite.NewStore(config.StoreConfig{
		Path:         filepath.Join(t.TempDir(), "store.db"),
		BusyTimeout:  5 * time.Second,
		MaxRetries:   5,
		RetryBackoff: 10 * time.Millisecond,
	})
	seed := config.SeedConfig{AdminUsername: "admin", AdminPassword: "admin123", AdminName: "Administrador"}
	require.NoError(t, sqlite.NewSchemaManager(store, seed, logger.Nop()).InitSchema(context.Background()))
	repo := sqlite.NewUserRepository(sqlite.NewExecutor(store, logger.Nop()))
	return usecase.NewUserUseCase(repo), repo
}

func createClient(t *testing.T, repo *sqlite.UserRepo, username, birthDate string) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.User{
		Username:     username,
		PasswordHash: "$2a$10$hashfalsoperovalido",
		Role:         entity.RoleCliente,
		Name:         username,
		BirthDate:    birthDate,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UserUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: List trae admin sembrado + altas, en la proyección administrativa.
func TestUserList(t *testing.T) {
	uc, repo := newUserUseCase(t)
	createClient(t, repo, "maria", "1990-05-12")

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "admin", out[0].Username)
	assert.Equal(t, "maria", out[1].Username)
}

// Caso 2: Los cumpleañeros se comparan por día y mes, en cualquiera de los dos
// formatos de fecha aceptados.
func TestBirthdayClients(t *testing.T) {
	uc, repo := newUserUseCase(t)
	createClient(t, repo, "iso", "1990-05-12")     // 12 de mayo, formato ISO
	createClient(t, repo, "br", "12/05/1985")      // 12 de mayo, formato dd/mm/aaaa
	createClient(t, repo, "otra", "1990-11-30")    // otro día
	createClient(t, repo, "invalida", "mayo doce") // no parseable: se omite

	hoy := time.Date(2026, time.May, 12, 10, 0, 0, 0, time.UTC)
	out, err := uc.BirthdayClients(hoy)
	require.NoError(t, err)
	require.Len(t, out, 2, "sólo los que cumplen el 12 de mayo")

	usernames := []string{out[0].Username, out[1].Username}
	assert.ElementsMatch(t, []string{"iso", "br"}, usernames)
}

// Caso 3: Sin clientes con fecha, el resultado es vacío y sin error.
func TestBirthdayClients_Vacio(t *testing.T) {
	uc, _ := newUserUseCase(t)

	out, err := uc.BirthdayClients(time.Now())
	require.NoError(t, err)
	assert.Empty(t, out)
}
