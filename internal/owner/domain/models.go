package domain

// Owner is the registered proprietor of a department.
type Owner struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string `gorm:"not null" json:"nombre"`
	LastName     string `gorm:"not null" json:"apellido"`
	DepartmentID int64  `gorm:"not null;index" json:"iddepto"`
}

func (Owner) TableName() string {
	return "owners"
}
