package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/numiscat/numisapi/store/repo"
	"github.com/numiscat/numisapi/store/types"
	"github.com/numiscat/numisapi/web/transport"
)

// Resource es el manejador HTTP genérico de un recurso del catálogo: liga
// las cinco operaciones del repositorio a sus rutas. La única validación de
// entrada es la coerción de tipos del binding JSON y del parámetro id;
// cualquier otra entrada inválida la rechaza la propia base de datos.
type Resource[T any] struct {
	repo *repo.Repository[T]
}

// NewResource crea el manejador de un recurso.
func NewResource[T any](r *repo.Repository[T]) *Resource[T] {
	return &Resource[T]{repo: r}
}

// List maneja GET /{recurso}.
func (h *Resource[T]) List(c *gin.Context) {
	records, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	transport.SendJSON(c, records)
}

// Get maneja GET /{recurso}/{id}.
func (h *Resource[T]) Get(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	record, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	transport.SendJSON(c, record)
}

// Create maneja POST /{recurso}. El id lo asigna la base de datos y se
// devuelve en la respuesta.
func (h *Resource[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		transport.BadRequest(c, "cuerpo JSON inválido: "+err.Error())
		return
	}

	id, err := h.repo.Create(c.Request.Context(), &record)
	if err != nil {
		h.fail(c, err)
		return
	}
	transport.SendCreated(c, id)
}

// Update maneja PUT /{recurso}/{id}: reemplazo de fila completa, todos los
// campos deben venir en el cuerpo.
func (h *Resource[T]) Update(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		transport.BadRequest(c, "cuerpo JSON inválido: "+err.Error())
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, &record); err != nil {
		h.fail(c, err)
		return
	}
	transport.SendMessage(c, "success")
}

// Delete maneja DELETE /{recurso}/{id}.
func (h *Resource[T]) Delete(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	transport.SendMessage(c, h.repo.Name()+" eliminado")
}

func (h *Resource[T]) id(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		transport.BadRequest(c, "id inválido: "+c.Param("id"))
		return 0, false
	}
	return id, true
}

// fail traduce los errores del repositorio a códigos HTTP: ErrNotFound a
// 404 con mensaje por recurso, cualquier otro fallo a 500 con el texto del
// error subyacente.
func (h *Resource[T]) fail(c *gin.Context, err error) {
	if errors.Is(err, types.ErrNotFound) {
		transport.NotFound(c, h.repo.Name()+" no encontrado")
		return
	}
	log.Error().Err(err).Str("recurso", h.repo.Name()).Msg("Error de acceso a datos")
	transport.InternalServerError(c, err.Error())
}
