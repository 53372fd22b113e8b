package domain

// Department is one unit of the building. IDs are store-assigned.
type Department struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Floors int   `gorm:"not null" json:"pisos"`
}

func (Department) TableName() string {
	return "departments"
}
