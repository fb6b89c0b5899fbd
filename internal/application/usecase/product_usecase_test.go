package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/application/usecase"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/sqlite"
	"github.com/tu-usuario/tienda-pro/pkg/config"
	"github.com/tu-usuario/tienda-pro/pkg/logger"
)

func newProductUseCase(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	store := sqlite.NewStore(config.StoreConfig{
		Path:         filepath.Join(t.TempDir(), "store.db"),
		BusyTimeout:  5 * time.Second,
		MaxRetries:   5,
		RetryBackoff: 10 * time.Millisecond,
	})
	seed := config.SeedConfig{AdminUsername: "admin", AdminPassword: "admin123", AdminName: "Administrador"}
	require.NoError(t, sqlite.NewSchemaManager(store, seed, logger.Nop()).InitSchema(context.Background()))
	repo := sqlite.NewProductRepository(sqlite.NewExecutor(store, logger.Nop()))
	return usecase.NewProductUseCase(repo)
}

func upsertRequest(name string) dto.UpsertProductRequest {
	return dto.UpsertProductRequest{
		Name:     name,
		Brand:    "Natura",
		Style:    "Perfumaria",
		Type:     "Eau de parfum",
		Price:    decimal.RequireFromString("89.90"),
		Quantity: 12,
		Image:    []byte{0x01},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Upsert
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Sin ID se inserta; con el mismo ID después, se actualiza en el lugar.
func TestUpsert_InsertaYActualiza(t *testing.T) {
	uc := newProductUseCase(t)

	created, err := uc.Upsert(upsertRequest("Perfume Floral"))
	require.NoError(t, err)
	require.Positive(t, created.ID)

	mod := upsertRequest("Perfume Amadeirado")
	mod.ID = &created.ID
	mod.Image = nil
	updated, err := uc.Upsert(mod)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "el upsert sobre id existente no crea fila nueva")

	p, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Perfume Amadeirado", p.Name)
	assert.Equal(t, []byte{0x01}, p.Image, "sin bytes nuevos la imagen previa se conserva")
}

// Caso 2: ID explícito inexistente — se inserta con esa clave.
func TestUpsert_IDExplicitoAusente(t *testing.T) {
	uc := newProductUseCase(t)

	id := int64(42)
	in := upsertRequest("Batom")
	in.ID = &id
	out, err := uc.Upsert(in)
	require.NoError(t, err)
	assert.EqualValues(t, 42, out.ID)
}

// Caso 3: Marca/estilo/tipo desconocidos se coercen, nunca se rechazan.
func TestUpsert_CoerceCatalogo(t *testing.T) {
	uc := newProductUseCase(t)

	in := upsertRequest("Crema")
	in.Brand = "Marca Inventada"
	in.Style = "???"
	in.Type = "misterioso"
	out, err := uc.Upsert(in)
	require.NoError(t, err)

	p, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, "Outra", p.Brand)
	assert.Equal(t, "Outro", p.Style)
	assert.Equal(t, "Outro", p.Type)
}

// Caso 4: Datos inválidos — nombre vacío, precio negativo o cantidad negativa.
func TestUpsert_DatosInvalidos(t *testing.T) {
	uc := newProductUseCase(t)

	sinNombre := upsertRequest("")
	_, err := uc.Upsert(sinNombre)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	precioNegativo := upsertRequest("X")
	precioNegativo.Price = decimal.RequireFromString("-1")
	_, err = uc.Upsert(precioNegativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cantidadNegativa := upsertRequest("X")
	cantidadNegativa.Quantity = -1
	_, err = uc.Upsert(cantidadNegativa)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / GetByID / Delete
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: El filtro de listado ignora mayúsculas y acentos, y busca en nombre,
// marca, estilo y tipo. El listado omite el blob de imagen.
func TestList_FiltroSinAcentos(t *testing.T) {
	uc := newProductUseCase(t)

	perfume := upsertRequest("Perfume Lançamento")
	_, err := uc.Upsert(perfume)
	require.NoError(t, err)

	crema := upsertRequest("Crema Hidratante")
	crema.Brand = "Avon"
	_, err = uc.Upsert(crema)
	require.NoError(t, err)

	todos, err := uc.List("")
	require.NoError(t, err)
	assert.Len(t, todos, 2, "query vacío lista todo")
	assert.Nil(t, todos[0].Image, "el listado no incluye el blob")

	porNombre, err := uc.List("lancamento")
	require.NoError(t, err)
	require.Len(t, porNombre, 1)
	assert.Equal(t, "Perfume Lançamento", porNombre[0].Name)

	porMarca, err := uc.List("AVON")
	require.NoError(t, err)
	require.Len(t, porMarca, 1)
	assert.Equal(t, "Crema Hidratante", porMarca[0].Name)

	ninguno, err := uc.List("inexistente")
	require.NoError(t, err)
	assert.Empty(t, ninguno)
}

// Caso 6: GetByID inexistente es (nil, nil); Delete saca el producto del listado.
func TestGetYDelete(t *testing.T) {
	uc := newProductUseCase(t)

	p, err := uc.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, p)

	created, err := uc.Upsert(upsertRequest("Efímero"))
	require.NoError(t, err)
	require.NoError(t, uc.Delete(created.ID))

	p, err = uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, p)
}
