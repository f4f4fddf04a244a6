package core

import (
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/microsoft/go-mssqldb"
)

// Config describe la conexión a la base de datos. Con DSN vacío, la cadena
// de conexión se ensambla a partir de los campos individuales.
type Config struct {
	Driver   string // "sqlserver" o "sqlite3"
	Host     string
	Port     string
	User     string
	Password string
	Database string
	DSN      string // DSN explícito; tiene prioridad sobre el resto

	// Límites del pool. Los valores cero aplican los defaults históricos:
	// máximo 10 conexiones, reciclado de inactivas a los 30s.
	MaxOpenConns    int
	ConnMaxIdleTime time.Duration
}

const (
	defaultMaxOpenConns    = 10
	defaultConnMaxIdleTime = 30 * time.Second
)

// Provider es el proveedor de conexiones de todo el proceso: un único pool
// *sql.DB creado perezosamente en el primer uso y compartido por todos los
// repositorios. Un fallo al conectar no tumba el proceso; se registra, se
// devuelve al llamador y el siguiente uso reintenta.
type Provider struct {
	mu      sync.Mutex
	cfg     Config
	dialect Dialect
	db      *sql.DB
}

// NewProvider crea el proveedor. Falla solo si el driver no es conocido;
// la conexión real se difiere hasta el primer DB().
func NewProvider(cfg Config) (*Provider, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = defaultMaxOpenConns
	}
	if cfg.ConnMaxIdleTime == 0 {
		cfg.ConnMaxIdleTime = defaultConnMaxIdleTime
	}
	return &Provider{cfg: cfg, dialect: dialect}, nil
}

// Dialect devuelve el dialecto SQL del driver configurado.
func (p *Provider) Dialect() Dialect {
	return p.dialect
}

// DB devuelve el pool compartido, abriéndolo si aún no existe.
// Es seguro para uso concurrente.
func (p *Provider) DB() (*sql.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	db, err := p.open()
	if err != nil {
		log.Error().Err(err).Str("driver", p.cfg.Driver).Msg("Error en la base de datos")
		return nil, err
	}

	log.Info().Str("driver", p.cfg.Driver).Msg("Conectado a la base de datos")
	p.db = db
	return p.db, nil
}

func (p *Provider) open() (*sql.DB, error) {
	db, err := sql.Open(p.cfg.Driver, p.connString())
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir la base de datos: %w", err)
	}

	db.SetMaxOpenConns(p.cfg.MaxOpenConns)
	db.SetConnMaxIdleTime(p.cfg.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("la prueba de conexión falló: %w", err)
	}
	return db, nil
}

// connString ensambla la cadena de conexión según el driver.
func (p *Provider) connString() string {
	if p.cfg.DSN != "" {
		return p.cfg.DSN
	}

	switch p.cfg.Driver {
	case "sqlserver":
		host := p.cfg.Host
		if host == "" {
			host = "localhost"
		}
		u := &url.URL{
			Scheme: "sqlserver",
			User:   url.UserPassword(p.cfg.User, p.cfg.Password),
			Host:   host,
		}
		if p.cfg.Port != "" {
			u.Host = host + ":" + p.cfg.Port
		}
		q := url.Values{}
		q.Set("database", p.cfg.Database)
		// encrypt activo con certificado autofirmado aceptado; poner
		// trustservercertificate=false en producción con certificado real.
		q.Set("encrypt", "true")
		q.Set("trustservercertificate", "true")
		u.RawQuery = q.Encode()
		return u.String()
	case "sqlite3":
		return fmt.Sprintf("file:%s?mode=rwc&cache=shared", p.cfg.Database)
	default:
		return ""
	}
}

// Close cierra el pool si llegó a abrirse.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
