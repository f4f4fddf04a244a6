package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor_UnknownDriver(t *testing.T) {
	_, err := DialectFor("oracle")
	assert.Error(t, err)
}

func TestSQLServerDialect(t *testing.T) {
	d, err := DialectFor("sqlserver")
	require.NoError(t, err)

	assert.Equal(t, "@p1", d.Placeholder(1))
	assert.Equal(t, "@p3", d.Placeholder(3))

	stmt := d.InsertReturningID("tipo", "idTipo", []string{"nombre"})
	assert.Equal(t,
		"INSERT INTO tipo (nombre) VALUES (@p1); SELECT CAST(SCOPE_IDENTITY() AS INT)",
		stmt)
}

func TestSQLiteDialect(t *testing.T) {
	d, err := DialectFor("sqlite3")
	require.NoError(t, err)

	assert.Equal(t, "?", d.Placeholder(1))
	assert.Equal(t, "?", d.Placeholder(7))

	stmt := d.InsertReturningID("pais", "idPais", []string{"nombre", "idContinente"})
	assert.Equal(t,
		"INSERT INTO pais (nombre, idContinente) VALUES (?, ?) RETURNING idPais",
		stmt)
}
