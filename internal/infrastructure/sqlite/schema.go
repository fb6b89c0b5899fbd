package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/pkg/config"
	"github.com/tu-usuario/tienda-pro/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// SchemaManager crea y evoluciona el esquema persistente de forma idempotente.
// Seguro de invocar en cada arranque: tablas con IF NOT EXISTS, columnas
// aditivas con el "ya existe" tragado, y siembra de la cuenta admin sólo si
// falta. La evolución es aditiva: columnas nuevas anulables, nunca cambios
// destructivos.
type SchemaManager struct {
	store *Store
	seed  config.SeedConfig
	log   *logger.Logger
}

// NewSchemaManager construye el manager con la cuenta a sembrar.
func NewSchemaManager(store *Store, seed config.SeedConfig, log *logger.Logger) *SchemaManager {
	return &SchemaManager{store: store, seed: seed, log: log}
}

// Columnas opcionales de users añadidas después del despliegue inicial.
// El orden importa sólo para los logs; cada ALTER es independiente.
var userColumnsToAdd = []struct{ name, typ string }{
	{"birth_date", "TEXT"},
	{"email", "TEXT"},
	{"phone", "TEXT"},
	{"cpf", "TEXT"},
	{"profile_image", "BLOB"},
	{"preferred_type", "TEXT"},
	{"preferred_brand", "TEXT"},
	{"preferred_style", "TEXT"},
}

// InitSchema inicializa el esquema completo, reintentando la inicialización
// entera ante contención de locks (hasta agotar el presupuesto del store).
// Cualquier otro fallo es fatal: la aplicación no debe arrancar con un esquema
// a medio crear.
func (m *SchemaManager) InitSchema(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= m.store.maxRetries; attempt++ {
		err := m.initOnce(ctx)
		if err == nil {
			return nil
		}
		if !isLockContention(err) {
			return fmt.Errorf("inicializar esquema: %w", err)
		}
		lastErr = err
		if attempt < m.store.maxRetries {
			m.log.Warn().Err(err).Int("attempt", attempt).
				Msg("store ocupado al inicializar esquema, reintentando")
			time.Sleep(m.store.retryBackoff)
		}
	}
	return fmt.Errorf("inicializar esquema tras %d intentos: %w", m.store.maxRetries, lastErr)
}

func (m *SchemaManager) initOnce(ctx context.Context) error {
	sess, err := m.store.OpenSession()
	if err != nil {
		return err
	}
	defer sess.Close()
	db := sess.DB()

	// WAL permite lectores concurrentes mientras hay un escritor activo.
	// El modo queda persistido en el archivo, repetirlo es inocuo.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("habilitar WAL: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL,
			name TEXT
		)`); err != nil {
		return fmt.Errorf("crear tabla users: %w", err)
	}

	// Evolución aditiva: el "duplicate column" es el resultado esperado en
	// estado estable; otro fallo se loguea y se sigue con la próxima columna.
	for _, col := range userColumnsToAdd {
		_, err := db.ExecContext(ctx, fmt.Sprintf("ALTER TABLE users ADD COLUMN %s %s", col.name, col.typ))
		switch {
		case err == nil, isDuplicateColumn(err):
			// ok
		case isLockContention(err):
			return err
		default:
			m.log.Warn().Err(err).Str("column", col.name).
				Msg("no se pudo añadir columna opcional, se omite")
		}
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			brand TEXT,
			style TEXT,
			type TEXT,
			price REAL,
			quantity INTEGER,
			expiration_date TEXT,
			image BLOB
		)`); err != nil {
		return fmt.Errorf("crear tabla products: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sales (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_id INTEGER,
			quantity INTEGER,
			total_value REAL,
			sale_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			user_id INTEGER,
			FOREIGN KEY(product_id) REFERENCES products(id),
			FOREIGN KEY(user_id) REFERENCES users(id)
		)`); err != nil {
		return fmt.Errorf("crear tabla sales: %w", err)
	}

	return m.seedAdmin(ctx, db)
}

// seedAdmin siembra la cuenta administradora si y sólo si no existe todavía.
// El password se hashea con bcrypt antes de persistir.
func (m *SchemaManager) seedAdmin(ctx context.Context, db *sql.DB) error {
	var id int64
	err := db.QueryRowContext(ctx, "SELECT id FROM users WHERE username = ?", m.seed.AdminUsername).Scan(&id)
	if err == nil {
		return nil // ya existe
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("buscar cuenta admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(m.seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear password admin: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		"INSERT INTO users (username, password, role, name) VALUES (?, ?, ?, ?)",
		m.seed.AdminUsername, string(hash), entity.RoleAdmin, m.seed.AdminName,
	); err != nil {
		return fmt.Errorf("sembrar cuenta admin: %w", err)
	}
	m.log.Info().Str("username", m.seed.AdminUsername).Msg("cuenta admin sembrada")
	return nil
}
