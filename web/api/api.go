package api

import (
	"github.com/numiscat/numisapi/internal/model"
	"github.com/numiscat/numisapi/store"
)

// API agrupa los manejadores HTTP de los diez recursos del catálogo.
// Todos comparten la misma implementación genérica; aquí solo se fija cada
// uno a su repositorio.
type API struct {
	Acabados    *Resource[model.Acabado]
	Continentes *Resource[model.Continente]
	Emisores    *Resource[model.Emisor]
	Materiales  *Resource[model.Material]
	Paises      *Resource[model.Pais]
	Productos   *Resource[model.Producto]
	Roles       *Resource[model.Rol]
	Tiempos     *Resource[model.Tiempo]
	Tipos       *Resource[model.Tipo]
	Usuarios    *Resource[model.Usuario]
}

// NewAPI crea los manejadores sobre el almacén dado.
func NewAPI(st store.Store) *API {
	return &API{
		Acabados:    NewResource(st.Acabados()),
		Continentes: NewResource(st.Continentes()),
		Emisores:    NewResource(st.Emisores()),
		Materiales:  NewResource(st.Materiales()),
		Paises:      NewResource(st.Paises()),
		Productos:   NewResource(st.Productos()),
		Roles:       NewResource(st.Roles()),
		Tiempos:     NewResource(st.Tiempos()),
		Tipos:       NewResource(st.Tipos()),
		Usuarios:    NewResource(st.Usuarios()),
	}
}
