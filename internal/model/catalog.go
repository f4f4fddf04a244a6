package model

import "github.com/shopspring/decimal"

func init() {
	// precio must reach the wire as a JSON number, matching the SQL
	// Server DECIMAL columns it round-trips through.
	decimal.MarshalJSONWithoutQuotes = true
}

// Acabado es el acabado superficial de una pieza (proof, BU, circulado...).
type Acabado struct {
	ID          int     `json:"idAcabado"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// Continente agrupa países por continente.
type Continente struct {
	ID     int    `json:"idContinente"`
	Nombre string `json:"nombre"`
}

// Emisor es la entidad emisora de una pieza (ceca, banco central...).
type Emisor struct {
	ID          int     `json:"idEmisor"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// Material es el metal o soporte de una pieza.
type Material struct {
	ID     int    `json:"idMaterial"`
	Nombre string `json:"nombre"`
}

// Pais referencia opcionalmente a su continente.
type Pais struct {
	ID           int    `json:"idPais"`
	Nombre       string `json:"nombre"`
	IDContinente *int   `json:"idContinente"`
}

// Producto es la pieza catalogada: moneda o billete, con sus dimensiones
// de referencia como claves foráneas opcionales. La integridad referencial
// la garantiza el esquema de la base de datos, no la aplicación.
type Producto struct {
	ID           int              `json:"idProducto"`
	Valor        *string          `json:"valor"`
	Nombre       string           `json:"nombre"`
	FechaEmision *string          `json:"fechaEmision"`
	Precio       *decimal.Decimal `json:"precio"`
	Cantidad     *int             `json:"cantidad"`
	Medidas      *string          `json:"medidas"`
	Detalles     *string          `json:"detalles"`
	Pureza       *float64         `json:"pureza"`
	IDTiempo     *int             `json:"idTiempo"`
	IDAcabado    *int             `json:"idAcabado"`
	IDPais       *int             `json:"idPais"`
	IDEmisor     *int             `json:"idEmisor"`
	IDMaterial   *int             `json:"idMaterial"`
	IDTipo       *int             `json:"idTipo"`
}

// Rol es el rol de un usuario de la aplicación.
type Rol struct {
	ID          int     `json:"idRol"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// Tiempo es la época o periodo histórico de emisión.
type Tiempo struct {
	ID          int     `json:"idTiempo"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// Tipo clasifica la pieza (moneda, billete, medalla...).
type Tipo struct {
	ID     int    `json:"idTipo"`
	Nombre string `json:"nombre"`
}

// Usuario de la aplicación. La contraseña viaja y se almacena tal cual
// llega; este servicio no hace hashing ni validación de credenciales.
type Usuario struct {
	ID       int    `json:"idUsuario"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Contra   string `json:"contra"`
	IDRol    *int   `json:"idRol"`
}
