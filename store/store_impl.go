package store

import (
	"github.com/numiscat/numisapi/internal/model"
	"github.com/numiscat/numisapi/store/core"
	"github.com/numiscat/numisapi/store/repo"
)

// DefaultStore es la implementación por defecto de Store: construye los
// diez repositorios sobre un único proveedor de conexiones. La conexión
// física se abre perezosamente en la primera operación, no aquí.
type DefaultStore struct {
	provider *core.Provider

	acabados    *repo.Repository[model.Acabado]
	continentes *repo.Repository[model.Continente]
	emisores    *repo.Repository[model.Emisor]
	materiales  *repo.Repository[model.Material]
	paises      *repo.Repository[model.Pais]
	productos   *repo.Repository[model.Producto]
	roles       *repo.Repository[model.Rol]
	tiempos     *repo.Repository[model.Tiempo]
	tipos       *repo.Repository[model.Tipo]
	usuarios    *repo.Repository[model.Usuario]
}

// NewStore inicializa el almacén sobre el proveedor dado.
func NewStore(provider *core.Provider) *DefaultStore {
	return &DefaultStore{
		provider:    provider,
		acabados:    repo.New(provider, repo.AcabadoDescriptor()),
		continentes: repo.New(provider, repo.ContinenteDescriptor()),
		emisores:    repo.New(provider, repo.EmisorDescriptor()),
		materiales:  repo.New(provider, repo.MaterialDescriptor()),
		paises:      repo.New(provider, repo.PaisDescriptor()),
		productos:   repo.New(provider, repo.ProductoDescriptor()),
		roles:       repo.New(provider, repo.RolDescriptor()),
		tiempos:     repo.New(provider, repo.TiempoDescriptor()),
		tipos:       repo.New(provider, repo.TipoDescriptor()),
		usuarios:    repo.New(provider, repo.UsuarioDescriptor()),
	}
}

func (s *DefaultStore) Acabados() *repo.Repository[model.Acabado] { return s.acabados }

func (s *DefaultStore) Continentes() *repo.Repository[model.Continente] { return s.continentes }

func (s *DefaultStore) Emisores() *repo.Repository[model.Emisor] { return s.emisores }

func (s *DefaultStore) Materiales() *repo.Repository[model.Material] { return s.materiales }

func (s *DefaultStore) Paises() *repo.Repository[model.Pais] { return s.paises }

func (s *DefaultStore) Productos() *repo.Repository[model.Producto] { return s.productos }

func (s *DefaultStore) Roles() *repo.Repository[model.Rol] { return s.roles }

func (s *DefaultStore) Tiempos() *repo.Repository[model.Tiempo] { return s.tiempos }

func (s *DefaultStore) Tipos() *repo.Repository[model.Tipo] { return s.tipos }

func (s *DefaultStore) Usuarios() *repo.Repository[model.Usuario] { return s.usuarios }

func (s *DefaultStore) Close() error {
	return s.provider.Close()
}
