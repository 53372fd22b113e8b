package domain

// Tenant is a resident renting a department. Several tenants may share one
// department; no cardinality limit is enforced.
type Tenant struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string `gorm:"not null" json:"nombre"`
	LastName     string `gorm:"not null" json:"apellido"`
	DepartmentID int64  `gorm:"not null;index" json:"iddepto"`
}

func (Tenant) TableName() string {
	return "tenants"
}
