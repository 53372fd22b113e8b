package domain

// Record is one delinquency report line: an unpaid charge paired with a
// resident of the owing department. A department with several tenants yields
// one line per tenant; a department with none does not appear at all.
type Record struct {
	DepartmentID int64  `json:"iddepto"`
	Floors       int    `json:"piso"`
	ResidentName string `json:"Nombre Residente"`
	Paid         string `json:"pagado"`
	Delinquent   string `json:"moroso"`
}
