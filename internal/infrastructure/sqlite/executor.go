package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/pkg/logger"
)

// Executor es la primitiva de resiliencia compartida por toda lectura o
// escritura simple (una sola sentencia). Cada intento abre una sesión propia,
// la cierra antes de volver y clasifica el fallo: contención de locks se
// reintenta con pausa fija hasta agotar el presupuesto; cualquier otro fallo
// (constraint, sentencia malformada, I/O) se devuelve sin reintentar.
type Executor struct {
	store *Store
	log   *logger.Logger
}

// NewExecutor construye el ejecutor sobre el store.
func NewExecutor(store *Store, log *logger.Logger) *Executor {
	return &Executor{store: store, log: log}
}

// withRetry ejecuta fn con la política de reintentos. La sesión de cada
// intento se cierra en todos los caminos (éxito, error o pánico en fn).
func (e *Executor) withRetry(ctx context.Context, op string, fn func(db *sql.DB) error) error {
	var lastErr error
	for attempt := 1; attempt <= e.store.maxRetries; attempt++ {
		err := func() error {
			sess, err := e.store.OpenSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			return fn(sess.DB())
		}()
		if err == nil {
			return nil
		}
		if !isLockContention(err) {
			return err
		}
		lastErr = err
		if attempt < e.store.maxRetries {
			e.log.Warn().Err(err).Str("op", op).Int("attempt", attempt).
				Msg("store ocupado, reintentando")
			time.Sleep(e.store.retryBackoff)
		}
	}
	e.log.Error().Err(lastErr).Str("op", op).Int("attempts", e.store.maxRetries).
		Msg("presupuesto de reintentos agotado")
	return fmt.Errorf("%s: %w", op, domain.ErrSystemBusy)
}

// Write ejecuta una única sentencia de escritura en autocommit.
// No hay éxito parcial posible: la sentencia entra completa o no entra.
func (e *Executor) Write(ctx context.Context, query string, args ...any) error {
	return e.withRetry(ctx, "write", func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, query, args...)
		return err
	})
}

// WriteWithID ejecuta una sentencia INSERT y devuelve el id asignado.
func (e *Executor) WriteWithID(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := e.withRetry(ctx, "write", func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

// QueryRow ejecuta un SELECT de una fila y delega el Scan en scan.
// Propaga sql.ErrNoRows tal cual; los repositorios lo traducen a (nil, nil).
func (e *Executor) QueryRow(ctx context.Context, query string, scan func(row *sql.Row) error, args ...any) error {
	return e.withRetry(ctx, "query_row", func(db *sql.DB) error {
		return scan(db.QueryRowContext(ctx, query, args...))
	})
}

// Query ejecuta un SELECT de varias filas; scan recorre el cursor completo.
// Las filas se cierran antes de cerrar la sesión del intento.
func (e *Executor) Query(ctx context.Context, query string, scan func(rows *sql.Rows) error, args ...any) error {
	return e.withRetry(ctx, "query", func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		if err := scan(rows); err != nil {
			return err
		}
		return rows.Err()
	})
}
