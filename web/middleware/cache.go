package middleware

import (
	"bytes"
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viccon/sturdyc"
)

// Parámetros del cache de respuestas. La capacidad sobra para los diez
// endpoints de listado; sturdyc exige shards y porcentaje de desalojo.
const (
	cacheCapacity        = 128
	cacheShards          = 8
	cacheEvictionPercent = 10

	// DefaultCacheTTL es la ventana histórica de la API: dos minutos.
	DefaultCacheTTL = 2 * time.Minute
)

// cachedResponse es la captura completa de una respuesta: dentro de la
// ventana se reproduce byte a byte, estado incluido.
type cachedResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// ResponseCache memoiza respuestas por (método, ruta) durante una ventana
// fija. Se aplica solo a los listados; las escrituras NO invalidan, así que
// un listado puede quedarse obsoleto hasta que expire la ventana. Es un
// compromiso deliberado de simplicidad, no un defecto.
type ResponseCache struct {
	client *sturdyc.Client[cachedResponse]
}

// NewResponseCache crea el cache con la ventana dada; con ttl cero aplica
// DefaultCacheTTL.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResponseCache{
		client: sturdyc.New[cachedResponse](cacheCapacity, cacheShards, ttl, cacheEvictionPercent),
	}
}

// Handler devuelve el middleware. En fallo de cache ejecuta el resto de la
// cadena capturando la respuesta; en acierto la reproduce sin tocar el
// repositorio. sturdyc además deduplica peticiones concurrentes sobre la
// misma clave, así que como mucho una llega a la base de datos.
func (rc *ResponseCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Request.Method + " " + c.Request.URL.Path

		fetched := false
		entry, err := rc.client.GetOrFetch(c.Request.Context(), key, func(ctx context.Context) (cachedResponse, error) {
			fetched = true
			rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
			c.Writer = rec
			c.Next()
			return cachedResponse{
				Status:      rec.Status(),
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			}, nil
		})
		if fetched {
			// La cadena ya se ejecutó y escribió la respuesta real.
			return
		}
		if err != nil {
			c.Next()
			return
		}

		c.Data(entry.Status, entry.ContentType, entry.Body)
		c.Abort()
	}
}

// bodyRecorder duplica lo escrito hacia el cliente en un buffer.
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
