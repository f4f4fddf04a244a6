package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/numiscat/numisapi/store/core"
	"github.com/numiscat/numisapi/store/types"
)

// Repository es el contrato CRUD genérico instanciado una vez por entidad.
// Cada operación hace exactamente un viaje a la base de datos; la conexión
// se toma y se devuelve al pool dentro de cada llamada, nunca se retiene
// entre operaciones.
type Repository[T any] struct {
	desc     Descriptor[T]
	provider *core.Provider

	// Sentencias precalculadas en New a partir del descriptor.
	listQuery   string
	getQuery    string
	insertQuery string
	updateQuery string
	deleteQuery string
}

// New construye el repositorio de una entidad sobre el pool compartido.
func New[T any](provider *core.Provider, desc Descriptor[T]) *Repository[T] {
	d := provider.Dialect()

	selectCols := desc.IDColumn + ", " + strings.Join(desc.Columns, ", ")

	sets := make([]string, len(desc.Columns))
	for i, col := range desc.Columns {
		sets[i] = fmt.Sprintf("%s = %s", col, d.Placeholder(i+1))
	}

	return &Repository[T]{
		desc:     desc,
		provider: provider,
		listQuery: fmt.Sprintf("SELECT %s FROM %s",
			selectCols, desc.Table),
		getQuery: fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s",
			selectCols, desc.Table, desc.IDColumn, d.Placeholder(1)),
		insertQuery: d.InsertReturningID(desc.Table, desc.IDColumn, desc.Columns),
		updateQuery: fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
			desc.Table, strings.Join(sets, ", "), desc.IDColumn, d.Placeholder(len(desc.Columns)+1)),
		deleteQuery: fmt.Sprintf("DELETE FROM %s WHERE %s = %s",
			desc.Table, desc.IDColumn, d.Placeholder(1)),
	}
}

// Name devuelve el nombre visible del recurso.
func (r *Repository[T]) Name() string {
	return r.desc.Name
}

// List devuelve todas las filas de la tabla, en el orden natural del scan.
// Nunca devuelve nil: sin filas, el resultado es un slice vacío.
func (r *Repository[T]) List(ctx context.Context) ([]*T, error) {
	db, err := r.provider.DB()
	if err != nil {
		return nil, types.NewDataAccessError("list", r.desc.Table, err)
	}

	rows, err := db.QueryContext(ctx, r.listQuery)
	if err != nil {
		return nil, types.NewDataAccessError("list", r.desc.Table, err)
	}
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		e, err := r.desc.Scan(rows)
		if err != nil {
			return nil, types.NewDataAccessError("list", r.desc.Table, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewDataAccessError("list", r.desc.Table, err)
	}
	return out, nil
}

// GetByID devuelve la fila con ese id o types.ErrNotFound.
func (r *Repository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	db, err := r.provider.DB()
	if err != nil {
		return nil, types.NewDataAccessError("get", r.desc.Table, err)
	}

	e, err := r.desc.Scan(db.QueryRowContext(ctx, r.getQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, types.NewDataAccessError("get", r.desc.Table, err)
	}
	return e, nil
}

// Create inserta la entidad y devuelve el id asignado por la base de datos.
// El insert y la lectura del identity van en el mismo lote, sobre la misma
// conexión, para no mezclar identities de inserts concurrentes.
func (r *Repository[T]) Create(ctx context.Context, e *T) (int, error) {
	db, err := r.provider.DB()
	if err != nil {
		return 0, types.NewDataAccessError("create", r.desc.Table, err)
	}

	var id int
	if err := db.QueryRowContext(ctx, r.insertQuery, r.desc.Values(e)...).Scan(&id); err != nil {
		return 0, types.NewDataAccessError("create", r.desc.Table, err)
	}
	if r.desc.SetID != nil {
		r.desc.SetID(e, id)
	}
	return id, nil
}

// Update reemplaza la fila completa (no hay semántica de patch). Cero filas
// afectadas se reporta como types.ErrNotFound, de forma uniforme para todas
// las entidades.
func (r *Repository[T]) Update(ctx context.Context, id int, e *T) error {
	db, err := r.provider.DB()
	if err != nil {
		return types.NewDataAccessError("update", r.desc.Table, err)
	}

	args := append(r.desc.Values(e), id)
	res, err := db.ExecContext(ctx, r.updateQuery, args...)
	if err != nil {
		return types.NewDataAccessError("update", r.desc.Table, err)
	}
	return r.checkAffected("update", res)
}

// Delete borra la fila con ese id; types.ErrNotFound si no existía.
func (r *Repository[T]) Delete(ctx context.Context, id int) error {
	db, err := r.provider.DB()
	if err != nil {
		return types.NewDataAccessError("delete", r.desc.Table, err)
	}

	res, err := db.ExecContext(ctx, r.deleteQuery, id)
	if err != nil {
		return types.NewDataAccessError("delete", r.desc.Table, err)
	}
	return r.checkAffected("delete", res)
}

func (r *Repository[T]) checkAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return types.NewDataAccessError(op, r.desc.Table, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
