package core

import (
	"fmt"
	"strings"
)

// Dialect encapsula las diferencias de SQL entre drivers: el estilo de
// placeholder y cómo recuperar el id autogenerado de un INSERT en un solo
// viaje a la base de datos.
type Dialect interface {
	// Placeholder devuelve el marcador para el parámetro n (base 1).
	Placeholder(n int) string
	// InsertReturningID construye la sentencia que inserta y devuelve el
	// id generado como única fila/columna del result set.
	InsertReturningID(table, idColumn string, columns []string) string
}

// DialectFor devuelve el dialecto para un nombre de driver registrado en
// database/sql.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "sqlserver":
		return sqlServerDialect{}, nil
	case "sqlite3":
		return sqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("driver no soportado: %q", driver)
	}
}

// sqlServerDialect usa parámetros @pN y el lote INSERT + SCOPE_IDENTITY()
// sobre la misma conexión, igual que hacía la API original.
type sqlServerDialect struct{}

func (sqlServerDialect) Placeholder(n int) string {
	return fmt.Sprintf("@p%d", n)
}

func (d sqlServerDialect) InsertReturningID(table, idColumn string, columns []string) string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s); SELECT CAST(SCOPE_IDENTITY() AS INT)",
		table, strings.Join(columns, ", "), placeholderList(d, 1, len(columns)),
	)
}

// sqliteDialect cubre los tests y el modo local sin servidor.
type sqliteDialect struct{}

func (sqliteDialect) Placeholder(n int) string {
	return "?"
}

func (d sqliteDialect) InsertReturningID(table, idColumn string, columns []string) string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table, strings.Join(columns, ", "), placeholderList(d, 1, len(columns)), idColumn,
	)
}

func placeholderList(d Dialect, from, count int) string {
	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		parts = append(parts, d.Placeholder(from+i))
	}
	return strings.Join(parts, ", ")
}
