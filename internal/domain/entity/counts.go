package entity

// Counts agregados expuestos por los endpoints de diagnóstico y dashboard.
type Counts struct {
	Users      int
	Tasks      int
	Orders     int
	Documents  int
	Activities int
}
