package dto

// CountsDTO totales por entidad.
type CountsDTO struct {
	Users      int `json:"users"`
	Tasks      int `json:"tasks"`
	Orders     int `json:"orders"`
	Documents  int `json:"documents"`
	Activities int `json:"activities"`
}

// DashboardStatsDTO respuesta de GET /api/dashboard/stats: totales más las
// actividades más recientes.
type DashboardStatsDTO struct {
	Counts           CountsDTO          `json:"counts"`
	RecentActivities []ActivityResponse `json:"recentActivities"`
}
