package repository

// Set agrupa los repositorios atados a una misma conexión (o transacción).
type Set struct {
	Users      UserRepository
	Tasks      TaskRepository
	Orders     OrderRepository
	Documents  DocumentRepository
	Activities ActivityRepository
	Stats      StatsRepository
}
