package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/glebarez/go-sqlite" // registra el driver "sqlite" (pure Go, sin cgo)
	"github.com/tu-usuario/tienda-pro/pkg/config"
)

// Store describe el almacén embebido: un único archivo SQLite con un escritor
// a la vez. No hay pool ni handle compartido: cada operación abre su propia
// sesión y la cierra en todos los caminos de salida. El store tolera mejor
// muchas conexiones cortas que una conexión larga compartida entre goroutines.
type Store struct {
	path         string
	busyTimeout  time.Duration
	maxRetries   int
	retryBackoff time.Duration
}

// NewStore construye el descriptor del store con la configuración dada.
// Valores en cero caen a los defaults: busy timeout 30s, 5 intentos, pausa 1s.
func NewStore(cfg config.StoreConfig) *Store {
	s := &Store{
		path:         cfg.Path,
		busyTimeout:  cfg.BusyTimeout,
		maxRetries:   cfg.MaxRetries,
		retryBackoff: cfg.RetryBackoff,
	}
	if s.busyTimeout <= 0 {
		s.busyTimeout = 30 * time.Second
	}
	if s.maxRetries <= 0 {
		s.maxRetries = 5
	}
	if s.retryBackoff <= 0 {
		s.retryBackoff = time.Second
	}
	return s
}

// Path devuelve la ruta del archivo del store.
func (s *Store) Path() string { return s.path }

// dsn arma el DSN con el busy timeout como pragma: el propio store espera ese
// tiempo ante un lock antes de reportar busy, y recién encima de eso actúa la
// capa de reintentos.
func (s *Store) dsn() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", s.path, s.busyTimeout.Milliseconds())
}

// OpenSession abre una conexión nueva al store. El caller es responsable de
// cerrarla en todos los caminos (defer Close); nunca se comparte ni reutiliza.
func (s *Store) OpenSession() (*Session, error) {
	db, err := sql.Open("sqlite", s.dsn())
	if err != nil {
		return nil, fmt.Errorf("abrir sesión: %w", err)
	}
	// Una sesión = una conexión: sin pooling interno de database/sql.
	db.SetMaxOpenConns(1)
	return &Session{db: db}, nil
}

// Session es una conexión al store con alcance de una sola operación.
type Session struct {
	db *sql.DB
}

// DB expone el handle database/sql de la sesión.
func (s *Session) DB() *sql.DB { return s.db }

// Close libera la conexión. Un error al cerrar no es accionable para el
// caller: se descarta para que la liberación sea incondicional.
func (s *Session) Close() {
	_ = s.db.Close()
}
