package ports

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// HeaderDatabaseType cabecera con la que el cliente pide un motor (postgres | sqlite).
const HeaderDatabaseType = "x-database-type"

// DatabaseClient es el cliente de base de datos de una petición.
// Connect y Disconnect son idempotentes; usar Repos antes de Connect devuelve domain.ErrNotConnected.
type DatabaseClient interface {
	Backend() string
	Connect(ctx context.Context) error
	Disconnect() error
	// Ping ejecuta una consulta trivial para comprobar conectividad.
	Ping(ctx context.Context) error
	Repos() repository.Set
	// InTx ejecuta fn con repositorios atados a una transacción.
	InTx(ctx context.Context, fn func(repository.Set) error) error
}

// ClientProvider resuelve el motor a partir del valor de x-database-type.
type ClientProvider interface {
	ClientFor(databaseType string) DatabaseClient
}
