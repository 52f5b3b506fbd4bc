package dto

// HealthResponse cuerpo de GET /api/health. No usa el envoltorio data: es un
// contrato propio de los monitores.
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"` // connected | disconnected
	Status    string `json:"status"`   // healthy | unhealthy
	Backend   string `json:"backend"`
}

// TestDBCounts totales que reporta GET /api/test-db.
type TestDBCounts struct {
	Users  int `json:"users"`
	Tasks  int `json:"tasks"`
	Orders int `json:"orders"`
}

// TestDBResponse cuerpo exitoso de GET /api/test-db.
type TestDBResponse struct {
	Success      bool         `json:"success"`
	DatabaseType string       `json:"databaseType"`
	Counts       TestDBCounts `json:"counts"`
}

// TestDBFailure cuerpo de error de GET /api/test-db: es la única respuesta que
// expone la traza.
type TestDBFailure struct {
	Success      bool   `json:"success"`
	DatabaseType string `json:"databaseType"`
	Error        string `json:"error"`
	Stack        string `json:"stack,omitempty"`
}

// APIInfo data de GET /api.
type APIInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Backends  []string `json:"backends"`
	Default   string   `json:"defaultBackend"`
	Endpoints []string `json:"endpoints"`
}
