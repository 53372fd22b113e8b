package domain

// Staff is a building employee (concierge, cleaner, administrator). Staff are
// not attached to a department and never appear on delinquency reports.
type Staff struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"not null" json:"nombre"`
	LastName  string `gorm:"not null" json:"apellido"`
	Role      string `gorm:"not null" json:"funcion"`
}

func (Staff) TableName() string {
	return "staff"
}
