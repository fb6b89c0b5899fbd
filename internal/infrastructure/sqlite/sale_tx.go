package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
	"github.com/tu-usuario/tienda-pro/pkg/logger"
)

var _ repository.SaleRegistrar = (*SaleTxRunner)(nil)

// SaleTxRunner ejecuta el protocolo de venta: verificar stock, descontar e
// insertar la venta en una única transacción sobre una única sesión. No pasa
// por el Executor de sentencia única porque necesita mantener la sesión
// abierta entre sentencias.
//
// Ante contención de locks se descarta la transacción completa y se reinicia
// el protocolo desde cero, releyendo el stock: un reintento nunca opera sobre
// una lectura vieja. Ante cualquier otro fallo se hace rollback y se devuelve
// el error sin reintentar.
type SaleTxRunner struct {
	store *Store
	log   *logger.Logger
}

// NewSaleTxRunner construye el runner del protocolo de venta.
func NewSaleTxRunner(store *Store, log *logger.Logger) *SaleTxRunner {
	return &SaleTxRunner{store: store, log: log}
}

// RegisterSale registra una venta de quantity unidades del producto, atribuida
// opcionalmente a un usuario. En éxito existe exactamente una fila nueva en
// sales y el stock bajó exactamente quantity; en cualquier fallo el store
// queda exactamente como estaba.
func (r *SaleTxRunner) RegisterSale(ctx context.Context, productID, quantity int64, userID *int64) (*entity.Sale, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var lastErr error
	for attempt := 1; attempt <= r.store.maxRetries; attempt++ {
		sale, err := r.attempt(ctx, productID, quantity, userID)
		if err == nil {
			return sale, nil
		}
		if !isLockContention(err) {
			return nil, err
		}
		lastErr = err
		if attempt < r.store.maxRetries {
			r.log.Warn().Err(err).Int64("product_id", productID).Int("attempt", attempt).
				Msg("venta bloqueada por contención, se reinicia el protocolo")
			time.Sleep(r.store.retryBackoff)
		}
	}
	r.log.Error().Err(lastErr).Int64("product_id", productID).
		Int("attempts", r.store.maxRetries).Msg("venta abandonada: presupuesto de reintentos agotado")
	return nil, domain.ErrSystemBusy
}

// attempt corre una pasada completa del protocolo: Started → StockChecked →
// StockUpdated → SaleInserted → Committed. La sesión y la conexión se liberan
// en todos los caminos; si no se llegó a commit, se hace rollback explícito.
func (r *SaleTxRunner) attempt(ctx context.Context, productID, quantity int64, userID *int64) (sale *entity.Sale, err error) {
	sess, err := r.store.OpenSession()
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	conn, err := sess.DB().Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("tomar conexión: %w", err)
	}
	defer conn.Close()

	// BEGIN IMMEDIATE toma el lock de escritura desde la primera sentencia
	// (el equivalente SQLite de SELECT ... FOR UPDATE): ningún otro escritor
	// puede colarse entre el check de stock y el descuento.
	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return nil, fmt.Errorf("begin venta: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_, _ = conn.ExecContext(ctx, "ROLLBACK")
		}
	}()

	// StockChecked: precio y stock dentro de la transacción.
	var price decimal.Decimal
	var available int64
	err = conn.QueryRowContext(ctx,
		"SELECT price, quantity FROM products WHERE id = ?", productID,
	).Scan(&price, &available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer stock: %w", err)
	}
	if available < quantity {
		// Regla de negocio, no condición transitoria: no se reintenta. Cada
		// reintento por lock relee el stock, así que una venta concurrente
		// que agotó el producto entre intentos termina clasificada acá.
		return nil, domain.ErrInsufficientStock
	}

	totalValue := price.Mul(decimal.NewFromInt(quantity))
	saleDate := time.Now().UTC()

	// StockUpdated: descuento en la misma transacción.
	if _, err := conn.ExecContext(ctx,
		"UPDATE products SET quantity = quantity - ? WHERE id = ?", quantity, productID,
	); err != nil {
		return nil, fmt.Errorf("descontar stock: %w", err)
	}

	// SaleInserted.
	res, err := conn.ExecContext(ctx,
		"INSERT INTO sales (product_id, quantity, total_value, sale_date, user_id) VALUES (?, ?, ?, ?, ?)",
		productID, quantity, totalValue, saleDate, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("insertar venta: %w", err)
	}
	saleID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("id de venta: %w", err)
	}

	// Committed.
	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return nil, fmt.Errorf("commit venta: %w", err)
	}
	committed = true

	return &entity.Sale{
		ID:         saleID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalValue: totalValue,
		SaleDate:   saleDate,
		UserID:     userID,
	}, nil
}
