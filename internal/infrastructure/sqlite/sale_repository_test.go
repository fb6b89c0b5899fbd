package sqlite

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests SaleRepo (reporte)
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El reporte junta nombre de producto y de usuario de cada venta.
func TestSaleRepo_Report(t *testing.T) {
	store := newInitializedStore(t)
	exec := NewExecutor(store, logger.Nop())
	repo := NewSaleRepository(exec)
	runner := NewSaleTxRunner(store, logger.Nop())

	seedProduct(t, store, 1, "10.00", 5)
	adminID := int64(1)
	_, err := runner.RegisterSale(context.Background(), 1, 2, &adminID)
	require.NoError(t, err)

	rows, err := repo.Report()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.NotNil(t, row.ProductName)
	assert.Equal(t, "Batom Vermelho", *row.ProductName)
	require.NotNil(t, row.UserName)
	assert.Equal(t, "Administrador", *row.UserName)
	assert.EqualValues(t, 2, row.Quantity)
	assert.True(t, row.TotalValue.Equal(decimal.RequireFromString("20.00")),
		"total leído: %s", row.TotalValue)
	assert.False(t, row.SaleDate.IsZero())
}

// Caso 2: Referencias colgantes — un producto eliminado no borra sus ventas del
// reporte: la fila aparece con el nombre en nil.
func TestSaleRepo_ReportToleraProductoEliminado(t *testing.T) {
	store := newInitializedStore(t)
	exec := NewExecutor(store, logger.Nop())
	saleRepo := NewSaleRepository(exec)
	productRepo := NewProductRepository(exec)
	runner := NewSaleTxRunner(store, logger.Nop())

	seedProduct(t, store, 1, "10.00", 5)
	_, err := runner.RegisterSale(context.Background(), 1, 1, nil)
	require.NoError(t, err)
	require.NoError(t, productRepo.Delete(1))

	rows, err := saleRepo.Report()
	require.NoError(t, err)
	require.Len(t, rows, 1, "la venta histórica no debe desaparecer del reporte")
	assert.Nil(t, rows[0].ProductName, "producto eliminado aparece con nombre nil")
	assert.Nil(t, rows[0].UserName, "venta sin usuario aparece con nombre nil")
}

// Caso 3: Sin ventas, el reporte es vacío y sin error.
func TestSaleRepo_ReportVacio(t *testing.T) {
	_, exec := newTestExecutor(t)
	repo := NewSaleRepository(exec)

	rows, err := repo.Report()
	require.NoError(t, err)
	assert.Empty(t, rows)
}
