package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numiscat/numisapi/store"
	"github.com/numiscat/numisapi/store/core"
)

// newTestService levanta el servicio completo sobre una base SQLite
// temporal con el esquema del catálogo.
func newTestService(t *testing.T, cacheTTL time.Duration) *Service {
	t.Helper()

	provider, err := core.NewProvider(core.Config{
		Driver:   "sqlite3",
		Database: filepath.Join(t.TempDir(), "catalogo.db"),
	})
	require.NoError(t, err)

	db, err := provider.DB()
	require.NoError(t, err)

	schema := []string{
		"CREATE TABLE acabado (idAcabado INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL, descripcion TEXT)",
		"CREATE TABLE continente (idContinente INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)",
		"CREATE TABLE emisor (idEmisor INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL, descripcion TEXT)",
		"CREATE TABLE material (idMaterial INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)",
		"CREATE TABLE pais (idPais INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL, idContinente INTEGER)",
		"CREATE TABLE producto (idProducto INTEGER PRIMARY KEY AUTOINCREMENT, valor TEXT, nombre TEXT NOT NULL, fechaEmision TEXT, precio NUMERIC, cantidad INTEGER, medidas TEXT, detalles TEXT, pureza REAL, idTiempo INTEGER, idAcabado INTEGER, idPais INTEGER, idEmisor INTEGER, idMaterial INTEGER, idTipo INTEGER)",
		"CREATE TABLE rol (idRol INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL, descripcion TEXT)",
		"CREATE TABLE tiempo (idTiempo INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL, descripcion TEXT)",
		"CREATE TABLE tipo (idTipo INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)",
		"CREATE TABLE usuario (idUsuario INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL, apellido TEXT NOT NULL, correo TEXT NOT NULL, contra TEXT NOT NULL, idRol INTEGER)",
	}
	for _, stmt := range schema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	st := store.NewStore(provider)
	t.Cleanup(func() { st.Close() })

	return NewService(st, &Config{ListenAddr: ":0", CacheTTL: cacheTTL})
}

func doRequest(t *testing.T, s *Service, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.GetRouter().ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestTipoLifecycle(t *testing.T) {
	s := newTestService(t, time.Minute)

	created := doRequest(t, s, http.MethodPost, "/tipos", `{"nombre":"Medalla"}`)
	require.Equal(t, http.StatusCreated, created.Code)
	body := decodeJSON(t, created)
	assert.Equal(t, "success", body["message"])
	id := int(body["id"].(float64))
	require.Greater(t, id, 0)

	got := doRequest(t, s, http.MethodGet, "/tipos/1", "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.JSONEq(t, `{"idTipo":1,"nombre":"Medalla"}`, got.Body.String())

	deleted := doRequest(t, s, http.MethodDelete, "/tipos/1", "")
	require.Equal(t, http.StatusOK, deleted.Code)
	assert.JSONEq(t, `{"message":"Tipo eliminado"}`, deleted.Body.String())

	missing := doRequest(t, s, http.MethodGet, "/tipos/1", "")
	require.Equal(t, http.StatusNotFound, missing.Code)
	assert.JSONEq(t, `{"message":"Tipo no encontrado"}`, missing.Body.String())
}

func TestPaisForeignKeyIsInteger(t *testing.T) {
	s := newTestService(t, time.Minute)

	created := doRequest(t, s, http.MethodPost, "/paises", `{"nombre":"México","idContinente":2}`)
	require.Equal(t, http.StatusCreated, created.Code)

	got := doRequest(t, s, http.MethodGet, "/paises/1", "")
	require.Equal(t, http.StatusOK, got.Code)

	body := decodeJSON(t, got)
	// Entero JSON, no cadena "2".
	assert.Equal(t, float64(2), body["idContinente"])
	assert.Equal(t, "México", body["nombre"])
}

func TestPaisNullForeignKey(t *testing.T) {
	s := newTestService(t, time.Minute)

	doRequest(t, s, http.MethodPost, "/paises", `{"nombre":"Atlántida"}`)

	got := doRequest(t, s, http.MethodGet, "/paises/1", "")
	require.Equal(t, http.StatusOK, got.Code)

	body := decodeJSON(t, got)
	val, present := body["idContinente"]
	require.True(t, present, "la clave foránea nula debe serializarse explícitamente")
	assert.Nil(t, val)
}

func TestUpdateIsFullReplace(t *testing.T) {
	s := newTestService(t, time.Minute)

	doRequest(t, s, http.MethodPost, "/emisores", `{"nombre":"Casa de Moneda","descripcion":"ceca"}`)

	updated := doRequest(t, s, http.MethodPut, "/emisores/1", `{"nombre":"Banco Central"}`)
	require.Equal(t, http.StatusOK, updated.Code)
	assert.JSONEq(t, `{"message":"success"}`, updated.Body.String())

	got := decodeJSON(t, doRequest(t, s, http.MethodGet, "/emisores/1", ""))
	assert.Equal(t, "Banco Central", got["nombre"])
	assert.Nil(t, got["descripcion"])
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	s := newTestService(t, time.Minute)

	w := doRequest(t, s, http.MethodPut, "/acabados/999", `{"nombre":"Proof"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Acabado no encontrado"}`, w.Body.String())
}

func TestDeleteMissingIDIsNotFound(t *testing.T) {
	s := newTestService(t, time.Minute)

	w := doRequest(t, s, http.MethodDelete, "/usuarios/42", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Usuario no encontrado"}`, w.Body.String())
}

func TestBadIDAndBadBody(t *testing.T) {
	s := newTestService(t, time.Minute)

	assert.Equal(t, http.StatusBadRequest, doRequest(t, s, http.MethodGet, "/tipos/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(t, s, http.MethodPost, "/tipos", `{"nombre":`).Code)
}

func TestProductoWireFormat(t *testing.T) {
	s := newTestService(t, time.Minute)

	payload := `{
		"valor": "1 onza",
		"nombre": "Libertad",
		"fechaEmision": "1982-01-01",
		"precio": 950.5,
		"cantidad": 3,
		"medidas": "36 mm",
		"detalles": "canto estriado",
		"pureza": 99.9,
		"idPais": 1,
		"idMaterial": 2
	}`
	created := doRequest(t, s, http.MethodPost, "/productos", payload)
	require.Equal(t, http.StatusCreated, created.Code)

	got := doRequest(t, s, http.MethodGet, "/productos/1", "")
	require.Equal(t, http.StatusOK, got.Code)

	body := decodeJSON(t, got)
	assert.Equal(t, float64(950.5), body["precio"], "precio debe ser número JSON")
	assert.Equal(t, float64(99.9), body["pureza"])
	assert.Equal(t, float64(3), body["cantidad"])

	// Los campos no enviados se serializan como null explícito.
	for _, campo := range []string{"idTiempo", "idAcabado", "idEmisor", "idTipo"} {
		val, present := body[campo]
		require.True(t, present, "falta el campo %s", campo)
		assert.Nil(t, val, "el campo %s debe ser null", campo)
	}
}

func TestListCacheStaleness(t *testing.T) {
	s := newTestService(t, 100*time.Millisecond)

	first := doRequest(t, s, http.MethodGet, "/tipos", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "[]", first.Body.String())

	doRequest(t, s, http.MethodPost, "/tipos", `{"nombre":"Moneda"}`)

	// Dentro de la ventana: respuesta idéntica byte a byte, aún sin el alta.
	second := doRequest(t, s, http.MethodGet, "/tipos", "")
	assert.Equal(t, first.Body.String(), second.Body.String())

	// Tras expirar la ventana se refleja el estado nuevo.
	time.Sleep(150 * time.Millisecond)
	third := doRequest(t, s, http.MethodGet, "/tipos", "")
	assert.Contains(t, third.Body.String(), "Moneda")
}

func TestListReflectsAllRecords(t *testing.T) {
	s := newTestService(t, time.Minute)

	doRequest(t, s, http.MethodPost, "/materiales", `{"nombre":"Plata"}`)
	doRequest(t, s, http.MethodPost, "/materiales", `{"nombre":"Oro"}`)

	w := doRequest(t, s, http.MethodGet, "/materiales", "")
	require.Equal(t, http.StatusOK, w.Code)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 2)
}

func TestHealth(t *testing.T) {
	s := newTestService(t, time.Minute)

	w := doRequest(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestService(t, time.Minute)

	w := doRequest(t, s, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
