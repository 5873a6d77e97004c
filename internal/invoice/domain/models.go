package domain

import "time"

type Invoice struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	InvoiceNo    string    `gorm:"column:invoice_no" json:"invoice_no"`
	ProjectID    int64     `gorm:"column:project_id" json:"project_id"`
	IssueDate    time.Time `gorm:"column:issue_date" json:"issue_date"`
	TotalAmount  float64   `gorm:"column:total_amount" json:"total_amount"`
	Days         float64   `gorm:"column:days" json:"days"`
	PaidLeaves   float64   `gorm:"column:paid_leaves" json:"paid_leaves"`
	UnpaidLeaves float64   `gorm:"column:unpaid_leaves" json:"unpaid_leaves"`
	OverTime     float64   `gorm:"column:over_time" json:"over_time"`
}

// InvoiceDetail is an invoice with the names of the records it bills against.
// Names are nil when a parent row is missing.
type InvoiceDetail struct {
	Invoice
	ProjectName  *string `gorm:"column:project_name" json:"project_name"`
	ClientName   *string `gorm:"column:client_name" json:"client_name"`
	CompanyName  *string `gorm:"column:company_name" json:"company_name"`
	EmployeeName *string `gorm:"column:employee_name" json:"employee_name"`
}

// ProjectLink is what a project id resolves to through its client.
type ProjectLink struct {
	ProjectID int64 `gorm:"column:project_id"`
	ClientID  int64 `gorm:"column:client_id"`
	CompanyID int64 `gorm:"column:company_id"`
	EmpID     int64 `gorm:"column:emp_id"`
}

// CreatedInvoice is the stored invoice merged with its resolved project link.
type CreatedInvoice struct {
	Invoice
	ClientID  int64 `json:"client_id"`
	CompanyID int64 `json:"company_id"`
	EmpID     int64 `json:"emp_id"`
}

// RenderedInvoice is a generated document ready to be served.
type RenderedInvoice struct {
	FileName    string
	ContentType string
	Content     []byte
}
