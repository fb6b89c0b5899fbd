package sqlite

import "strings"

// isLockContention verifica si un error es la señal busy/locked del store
// (SQLITE_BUSY o SQLITE_LOCKED). Es la única clase de fallo que se reintenta.
func isLockContention(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "sqlite_busy")
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}

// isDuplicateColumn verifica el fallo esperado del ALTER TABLE aditivo cuando
// la columna ya existe (resultado normal en estado estable).
func isDuplicateColumn(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column name")
}
