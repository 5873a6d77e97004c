package domain

type Employee struct {
	ID        int64   `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"column:name" json:"name"`
	Position  *string `gorm:"column:position" json:"position"`
	WorkingOn *string `gorm:"column:working_on" json:"working_on"`
	EmpCode   *string `gorm:"column:emp_code" json:"emp_code"`
}

func (Employee) TableName() string { return "employee" }
