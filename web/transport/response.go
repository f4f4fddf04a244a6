package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse es la respuesta de las operaciones que no devuelven
// registro: update y delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse acompaña al alta de un recurso con el id asignado por la
// base de datos.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// SendJSON responde 200 OK con el cuerpo tal cual, sin envoltorio. Las
// lecturas del catálogo exponen los registros directamente.
func SendJSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated responde 201 con el id recién asignado.
func SendCreated(c *gin.Context, id int) {
	c.JSON(http.StatusCreated, CreatedResponse{Message: "success", ID: id})
}

// SendMessage responde 200 con un mensaje informativo.
func SendMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}
