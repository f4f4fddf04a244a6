package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/numiscat/numisapi/web/api"
)

// setupRoutes monta las rutas de los diez recursos en la raíz, con la
// superficie uniforme de cinco operaciones, más el health check. El cache
// de respuestas solo envuelve los GET de listado.
func (s *Service) setupRoutes() {
	listCache := s.cache.Handler()

	mountResource(s.router, "/acabados", s.api.Acabados, listCache)
	mountResource(s.router, "/continentes", s.api.Continentes, listCache)
	mountResource(s.router, "/emisores", s.api.Emisores, listCache)
	mountResource(s.router, "/materiales", s.api.Materiales, listCache)
	mountResource(s.router, "/paises", s.api.Paises, listCache)
	mountResource(s.router, "/productos", s.api.Productos, listCache)
	mountResource(s.router, "/roles", s.api.Roles, listCache)
	mountResource(s.router, "/tiempos", s.api.Tiempos, listCache)
	mountResource(s.router, "/tipos", s.api.Tipos, listCache)
	mountResource(s.router, "/usuarios", s.api.Usuarios, listCache)

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// mountResource registra las cinco rutas de un recurso.
func mountResource[T any](r *gin.Engine, path string, h *api.Resource[T], listCache gin.HandlerFunc) {
	r.GET(path, listCache, h.List)
	r.GET(path+"/:id", h.Get)
	r.POST(path, h.Create)
	r.PUT(path+"/:id", h.Update)
	r.DELETE(path+"/:id", h.Delete)
}
