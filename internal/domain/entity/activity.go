package entity

import "time"

// Activity es un evento de auditoría. UserID referencia al usuario que actuó
// (muchas actividades por usuario, sin composición).
type Activity struct {
	ID          string
	Type        string
	Title       string
	Description string
	UserID      string
	CreatedAt   time.Time
}

// ActivityWithUser es la vista de lectura: la actividad más los datos públicos del autor.
type ActivityWithUser struct {
	Activity
	UserName  string
	UserEmail string
	UserImage string
}
