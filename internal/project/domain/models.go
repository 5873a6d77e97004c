package domain

// BillingMethod is the unit a project is billed in.
type BillingMethod string

const (
	BillingDays  BillingMethod = "days"
	BillingHours BillingMethod = "hours"
	BillingMonth BillingMethod = "month"

	DefaultBillingMethod = BillingDays
)

func (m BillingMethod) Valid() bool {
	switch m {
	case BillingDays, BillingHours, BillingMonth:
		return true
	default:
		return false
	}
}

type Project struct {
	ID            int64         `gorm:"primaryKey" json:"id"`
	Name          string        `gorm:"column:name" json:"name"`
	ClientID      int64         `gorm:"column:client_id" json:"client_id"`
	EmpID         int64         `gorm:"column:emp_id" json:"emp_id"`
	BillingAmt    float64       `gorm:"column:billing_amt" json:"billing_amt"`
	Active        bool          `gorm:"column:active" json:"active"`
	BillingMethod BillingMethod `gorm:"column:billing_method" json:"billing_method"`
	OvertimeAmt   float64       `gorm:"column:overtime_amt" json:"overtime_amt"`
}

// ProjectListItem is a project joined with its client's name.
type ProjectListItem struct {
	Project
	ClientName *string `gorm:"column:client_name" json:"client_name"`
}
