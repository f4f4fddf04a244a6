package repo

import "github.com/numiscat/numisapi/internal/model"

// Descriptores de las diez tablas del catálogo. El orden de Columns es el
// contrato entre Scan y Values; la columna id va aparte y siempre primera
// en los SELECT.

// AcabadoDescriptor describe la tabla acabado.
func AcabadoDescriptor() Descriptor[model.Acabado] {
	return Descriptor[model.Acabado]{
		Name:     "Acabado",
		Table:    "acabado",
		IDColumn: "idAcabado",
		Columns:  []string{"nombre", "descripcion"},
		Scan: func(row RowScanner) (*model.Acabado, error) {
			var e model.Acabado
			if err := row.Scan(&e.ID, &e.Nombre, &e.Descripcion); err != nil {
				return nil, err
			}
			return &e, nil
		},
		Values: func(e *model.Acabado) []any {
			return []any{e.Nombre, e.Descripcion}
		},
		SetID: func(e *model.Acabado, id int) { e.ID = id },
	}
}

// ContinenteDescriptor describe la tabla continente.
func ContinenteDescriptor() Descriptor[model.Continente] {
	return Descriptor[model.Continente]{
		Name:     "Continente",
		Table:    "continente",
		IDColumn: "idContinente",
		Columns:  []string{"nombre"},
		Scan: func(row RowScanner) (*model.Continente, error) {
			var e model.Continente
			if err := row.Scan(&e.ID, &e.Nombre); err != nil {
				return nil, err
			}
			return &e, nil
		},
		Values: func(e *model.Continente) []any {
			return []any{e.Nombre}
		},
		SetID: func(e *model.Continente, id int) { e.ID = id },
	}
}

// EmisorDescriptor describe la tabla emisor.
func EmisorDescriptor() Descriptor[model.Emisor] {
	return Descriptor[model.Emisor]{
		Name:     "Emisor",
		Table:    "emisor",
		IDColumn: "idEmisor",
		Columns:  []string{"nombre", "descripcion"},
		Scan: func(row RowScanner) (*model.Emisor, error) {
			var e model.Emisor
			if err := row.Scan(&e.ID, &e.Nombre, &e.Descripcion); err != nil {
				return nil, err
			}
			return &e, nil
		},
		Values: func(e *model.Emisor) []any {
			return []any{e.Nombre, e.Descripcion}
		},
		SetID: func(e *model.Emisor, id int) { e.ID = id },
	}
}

// MaterialDescriptor describe la tabla material.
func MaterialDescriptor() Descriptor[model.Material] {
	return Descriptor[model.Material]{
		Name:     "Material",
		Table:    "material",
		IDColumn: "idMaterial",
		Columns:  []string{"nombre"},
		Scan: func(row RowScanner) (*model.Material, error) {
			var e model.Material
			if err := row.Scan(&e.ID, &e.Nombre); err != nil {
				return nil, err
			}
			return &e, nil
		},
		Values: func(e *model.Material) []any {
			return []any{e.Nombre}
		},
		SetID: func(e *model.Material, id int) { e.ID = id },
	}
}

// PaisDescriptor describe la tabla pais.
func PaisDescriptor() Descriptor[model.Pais] {
	return Descriptor[model.Pais]{
		Name:     "Pais",
		Table:    "pais",
		IDColumn: "idPais",
		Columns:  []string{"nombre", "idContinente"},
		Scan: func(row RowScanner) (*model.Pais, error) {
			var e model.Pais
			if err := row.Scan(&e.ID, &e.Nombre, &e.IDContinente); err != nil {
				return nil, err
			}
			return &e, nil
		},
		Values: func(e *model.Pais) []any {
			return []any{e.Nombre, e.IDContinente}
		},
		SetID: func(e *model.Pais, id int) { e.ID = id },
	}
}

// ProductoDescriptor describe la tabla producto, la única con el juego
// completo de campos y las seis claves foráneas.
func ProductoDescriptor() Descriptor[model.Producto] {
	return Descriptor[model.Producto]{
		Name:     "Producto",
		Table:    "producto",
		IDColumn: "idProducto",
		Columns: []string{
			"valor", "nombre", "fechaEmision", "precio", "cantidad",
			"medidas", "detalles", "pureza", "idTiempo", "idAcabado",
			"idPais", "idEmisor", "idMaterial", "idTipo",
		},
		Scan: func(row RowScanner) (*model.Producto, error) {
			var e model.Producto
			err := row.Scan(
				&e.ID, &e.Valor, &e.Nombre, &e.FechaEmision, &e.Precio,
				&e.Cantidad, &e.Medidas, &e.Detalles, &e.Pureza,
				&e.IDTiempo, &e.IDAcabado, &e.IDPais, &e.IDEmisor,
				&e.IDMaterial, &e.IDTipo,
			)
			if err != nil {
				return nil, err
			}
			return &e, nil
		},
		Values: func(e *model.Producto) []any {
			return []any{
				e.Valor, e.Nombre, e.FechaEmision, e.Precio, e.Cantidad,
				e.Medidas, e.Detalles, e.Pureza, e.IDTiempo, e.IDAcabado,
				e.IDPais, e.IDEmisor, e.IDMaterial, e.IDTipo,
			}
		},
		SetID: func(e *model.Producto, id int) { e.ID = id },
	}
}

// RolDescriptor describe la tabla rol.
func RolDescriptor() Descriptor[model.Rol] {
	return Descriptor[model.Rol]{
		Name:     "Rol",
		Table:    "rol",
		IDColumn: "idRol",
		Columns:  []string{"nombre", "descripcion"},
		Scan: func(row RowScanner) (*model.Rol, error) {
			var e model.Rol
			if err := row.Scan(&e.ID, &e.Nombre, &e.Descripcion); err != nil {
				return nil, err
			}
			return &e, nil
		},
		Values: func(e *model.Rol) []any {
			return []any{e.Nombre, e.Descripcion}
		},
		SetID: func(e *model.Rol, id int) { e.ID = id },
	}
}

// TiempoDescriptor describe la tabla tiempo.
func TiempoDescriptor() Descriptor[model.Tiempo] {
	return Descriptor[model.Tiempo]{
		Name:     "Tiempo",
		Table:    "tiempo",
		IDColumn: "idTiempo",
		Columns:  []string{"nombre", "descripcion"},
		Scan: func(row RowScanner) (*model.Tiempo, error) {
			var e model.Tiempo
			if err := row.Scan(&e.ID, &e.Nombre, &e.Descripcion); err != nil {
				return nil, err
			}
			return &e, nil
		},
		Values: func(e *model.Tiempo) []any {
			return []any{e.Nombre, e.Descripcion}
		},
		SetID: func(e *model.Tiempo, id int) { e.ID = id },
	}
}

// TipoDescriptor describe la tabla tipo.
func TipoDescriptor() Descriptor[model.Tipo] {
	return Descriptor[model.Tipo]{
		Name:     "Tipo",
		Table:    "tipo",
		IDColumn: "idTipo",
		Columns:  []string{"nombre"},
		Scan: func(row RowScanner) (*model.Tipo, error) {
			var e model.Tipo
			if err := row.Scan(&e.ID, &e.Nombre); err != nil {
				return nil, err
			}
			return &e, nil
		},
		Values: func(e *model.Tipo) []any {
			return []any{e.Nombre}
		},
		SetID: func(e *model.Tipo, id int) { e.ID = id },
	}
}

// UsuarioDescriptor describe la tabla usuario.
func UsuarioDescriptor() Descriptor[model.Usuario] {
	return Descriptor[model.Usuario]{
		Name:     "Usuario",
		Table:    "usuario",
		IDColumn: "idUsuario",
		Columns:  []string{"nombre", "apellido", "correo", "contra", "idRol"},
		Scan: func(row RowScanner) (*model.Usuario, error) {
			var e model.Usuario
			if err := row.Scan(&e.ID, &e.Nombre, &e.Apellido, &e.Correo, &e.Contra, &e.IDRol); err != nil {
				return nil, err
			}
			return &e, nil
		},
		Values: func(e *model.Usuario) []any {
			return []any{e.Nombre, e.Apellido, e.Correo, e.Contra, e.IDRol}
		},
		SetID: func(e *model.Usuario, id int) { e.ID = id },
	}
}
