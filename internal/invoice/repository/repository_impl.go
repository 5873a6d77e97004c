package repository

import (
	"context"

	"github.com/smallbiznis/panorama/internal/invoice/domain"
	"github.com/smallbiznis/panorama/pkg/db"
)

const invoiceColumns = `id, invoice_no, project_id, issue_date, total_amount, days, paid_leaves, unpaid_leaves, over_time`

const detailQuery = `SELECT i.id, i.invoice_no, i.project_id, i.issue_date, i.total_amount,
        i.days, i.paid_leaves, i.unpaid_leaves, i.over_time,
        p.name AS project_name,
        c.name AS client_name,
        co.name AS company_name,
        e.name AS employee_name
 FROM invoices i
 LEFT JOIN projects p ON i.project_id = p.id
 LEFT JOIN clients c ON p.client_id = c.id
 LEFT JOIN companies co ON c.company_id = co.id
 LEFT JOIN employee e ON p.emp_id = e.id`

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ResolveProject(ctx context.Context, gw db.Gateway, projectID int64) (*domain.ProjectLink, error) {
	var link domain.ProjectLink
	_, err := gw.Query(ctx, &link,
		`SELECT p.id AS project_id, c.id AS client_id, c.company_id, p.emp_id
		 FROM projects p
		 JOIN clients c ON p.client_id = c.id
		 WHERE p.id = ?`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	if link.ProjectID == 0 {
		return nil, nil
	}
	return &link, nil
}

func (r *repo) Insert(ctx context.Context, gw db.Gateway, invoice *domain.Invoice) error {
	_, err := gw.Query(ctx, invoice,
		`INSERT INTO invoices (invoice_no, project_id, issue_date, total_amount, days, paid_leaves, unpaid_leaves, over_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+invoiceColumns,
		invoice.InvoiceNo,
		invoice.ProjectID,
		invoice.IssueDate,
		invoice.TotalAmount,
		invoice.Days,
		invoice.PaidLeaves,
		invoice.UnpaidLeaves,
		invoice.OverTime,
	)
	return err
}

func (r *repo) List(ctx context.Context, gw db.Gateway) ([]domain.InvoiceDetail, error) {
	invoices := make([]domain.InvoiceDetail, 0)
	if _, err := gw.Query(ctx, &invoices, detailQuery+` ORDER BY i.id ASC`); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) FindByID(ctx context.Context, gw db.Gateway, id int64) (*domain.InvoiceDetail, error) {
	var invoice domain.InvoiceDetail
	if _, err := gw.Query(ctx, &invoice, detailQuery+` WHERE i.id = ?`, id); err != nil {
		return nil, err
	}
	if invoice.ID == 0 {
		return nil, nil
	}
	return &invoice, nil
}

func (r *repo) Update(ctx context.Context, gw db.Gateway, invoice *domain.Invoice) (bool, error) {
	var updated domain.Invoice
	_, err := gw.Query(ctx, &updated,
		`UPDATE invoices
		 SET invoice_no = ?, project_id = ?, issue_date = ?, total_amount = ?,
		     days = ?, paid_leaves = ?, unpaid_leaves = ?, over_time = ?
		 WHERE id = ?
		 RETURNING `+invoiceColumns,
		invoice.InvoiceNo,
		invoice.ProjectID,
		invoice.IssueDate,
		invoice.TotalAmount,
		invoice.Days,
		invoice.PaidLeaves,
		invoice.UnpaidLeaves,
		invoice.OverTime,
		invoice.ID,
	)
	if err != nil {
		return false, err
	}
	if updated.ID == 0 {
		return false, nil
	}
	*invoice = updated
	return true, nil
}

func (r *repo) Delete(ctx context.Context, gw db.Gateway, id int64) (bool, error) {
	affected, err := gw.Exec(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
