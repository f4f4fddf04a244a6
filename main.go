package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/numiscat/numisapi/store"
	"github.com/numiscat/numisapi/store/core"
	"github.com/numiscat/numisapi/web"
)

func main() {
	// --- Cargar configuración: .env + variables de entorno ---
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn().Err(err).Msg("No se pudo leer el archivo .env; se usarán las variables de entorno")
		}
	}

	viper.SetDefault("DB_DRIVER", "sqlserver")
	viper.SetDefault("DB_HOST", "localhost")

	// Puerto: LISTEN_ADDR tiene prioridad, después PORT, por defecto 9000.
	listenAddr := viper.GetString("LISTEN_ADDR")
	if listenAddr == "" {
		port := viper.GetString("PORT")
		if port == "" {
			port = "9000"
		}
		listenAddr = ":" + port
	}

	cacheTTL := time.Duration(0)
	if raw := viper.GetString("CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatal().Err(err).Str("CACHE_TTL", raw).Msg("CACHE_TTL inválido")
		}
		cacheTTL = parsed
	}

	// --- Proveedor de conexiones y almacén ---
	provider, err := core.NewProvider(core.Config{
		Driver:   viper.GetString("DB_DRIVER"),
		Host:     viper.GetString("DB_HOST"),
		Port:     viper.GetString("DB_PORT"),
		User:     viper.GetString("DB_USER"),
		Password: viper.GetString("DB_PASSWORD"),
		Database: viper.GetString("DB_NAME"),
		DSN:      viper.GetString("DB_DSN"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Configuración de base de datos inválida")
	}

	st := store.NewStore(provider)
	defer st.Close()

	// --- Servicio web ---
	webService := web.NewService(st, &web.Config{
		ListenAddr: listenAddr,
		CacheTTL:   cacheTTL,
	})

	if err := webService.Start(); err != nil {
		log.Fatal().Err(err).Msg("No se pudo arrancar el servicio web")
	}

	// --- Esperar señal de interrupción para el apagado ordenado ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Señal de apagado recibida, cerrando el servicio...")

	if err := webService.Stop(); err != nil {
		log.Fatal().Err(err).Msg("Error al cerrar el servicio web")
	}
}
