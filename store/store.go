package store

import (
	"github.com/numiscat/numisapi/internal/model"
	"github.com/numiscat/numisapi/store/repo"
)

// Store es la interfaz unificada de acceso a datos del catálogo: un
// repositorio tipado por cada uno de los diez recursos, todos sobre el
// mismo pool de conexiones.
type Store interface {
	Acabados() *repo.Repository[model.Acabado]
	Continentes() *repo.Repository[model.Continente]
	Emisores() *repo.Repository[model.Emisor]
	Materiales() *repo.Repository[model.Material]
	Paises() *repo.Repository[model.Pais]
	Productos() *repo.Repository[model.Producto]
	Roles() *repo.Repository[model.Rol]
	Tiempos() *repo.Repository[model.Tiempo]
	Tipos() *repo.Repository[model.Tipo]
	Usuarios() *repo.Repository[model.Usuario]

	// Close libera el pool de conexiones.
	Close() error
}
