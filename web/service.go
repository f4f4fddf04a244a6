package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/numiscat/numisapi/store"
	"github.com/numiscat/numisapi/web/api"
	"github.com/numiscat/numisapi/web/middleware"
)

// Service es el servicio web del catálogo.
type Service struct {
	store  store.Store
	router *gin.Engine
	server *http.Server
	conf   *Config
	api    *api.API
	cache  *middleware.ResponseCache
}

// Config guarda la configuración del servicio web.
type Config struct {
	ListenAddr string
	// CacheTTL es la ventana del cache de listados; cero aplica el valor
	// por defecto de dos minutos.
	CacheTTL time.Duration
}

// NewService crea el servicio web sobre el almacén dado.
func NewService(st store.Store, conf *Config) *Service {
	gin.SetMode(gin.ReleaseMode)

	s := &Service{
		store:  st,
		router: gin.New(),
		conf:   conf,
		api:    api.NewAPI(st),
		cache:  middleware.NewResponseCache(conf.CacheTTL),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Start arranca el servidor HTTP en segundo plano.
func (s *Service) Start() error {
	s.server = &http.Server{
		Addr:    s.conf.ListenAddr,
		Handler: s.router,
	}

	log.Info().Msg(fmt.Sprintf("Servidor ejecutándose en %s", s.conf.ListenAddr))

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("El servidor web no pudo arrancar")
		}
	}()

	return nil
}

// Stop apaga el servidor de forma ordenada.
func (s *Service) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Fallo en el apagado ordenado del servidor")
		return err
	}

	log.Info().Msg("Servidor detenido")
	return nil
}

// GetRouter expone el motor Gin, principalmente para tests.
func (s *Service) GetRouter() *gin.Engine {
	return s.router
}
