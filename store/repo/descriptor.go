package repo

// RowScanner es lo mínimo que comparten *sql.Row y *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// Descriptor describe declarativamente la tabla de una entidad: con esto el
// repositorio genérico cubre las diez tablas sin duplicar código. Columns
// fija el orden de columnas que Scan y Values deben respetar (Scan recibe
// además la columna id en primera posición).
type Descriptor[T any] struct {
	// Name es el nombre visible del recurso en los mensajes de la API
	// ("Tipo no encontrado", "Tipo eliminado").
	Name     string
	Table    string
	IDColumn string
	Columns  []string

	Scan   func(row RowScanner) (*T, error)
	Values func(e *T) []any
	SetID  func(e *T, id int)
}
