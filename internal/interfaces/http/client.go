package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/ports"
)

// LocalBackend motor que atendió la petición (para logs).
const LocalBackend = "db_backend"

// clientFor resuelve el cliente según x-database-type. Un valor desconocido o
// ausente cae al backend por defecto.
func clientFor(c *fiber.Ctx, clients ports.ClientProvider) ports.DatabaseClient {
	db := clients.ClientFor(c.Get(ports.HeaderDatabaseType))
	c.Locals(LocalBackend, db.Backend())
	return db
}

// withClient conecta un cliente exclusivo de la petición, ejecuta fn y lo
// desconecta siempre, también si fn falla o entra en pánico.
func withClient(c *fiber.Ctx, clients ports.ClientProvider, fn func(db ports.DatabaseClient) error) (err error) {
	db := clientFor(c, clients)
	defer func() {
		if derr := db.Disconnect(); derr != nil && err == nil {
			err = derr
		}
	}()
	if err := db.Connect(c.UserContext()); err != nil {
		return err
	}
	return fn(db)
}
