package types

import (
	"errors"
	"fmt"
)

// ErrNotFound indica que el id solicitado no tiene fila en la tabla.
// Se compara con errors.Is.
var ErrNotFound = errors.New("registro no encontrado")

// DataAccessError envuelve cualquier fallo originado en la capa de base de
// datos: conectividad, violación de constraint, sentencia malformada.
// Nunca se reintenta; sube tal cual hasta el dispatcher.
type DataAccessError struct {
	Op    string // operación del repositorio: "list", "get", "create"...
	Table string
	Err   error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// NewDataAccessError construye el error de acceso a datos para una tabla.
func NewDataAccessError(op, table string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Table: table, Err: err}
}
