package repository

import (
	"context"

	"github.com/smallbiznis/panorama/internal/project/domain"
	"github.com/smallbiznis/panorama/pkg/db"
)

const projectColumns = `id, name, client_id, emp_id, billing_amt, active, billing_method, overtime_amt`

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, gw db.Gateway, project *domain.Project) error {
	_, err := gw.Query(ctx, project,
		`INSERT INTO projects (name, client_id, emp_id, billing_amt, active, billing_method, overtime_amt)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+projectColumns,
		project.Name,
		project.ClientID,
		project.EmpID,
		project.BillingAmt,
		project.Active,
		string(project.BillingMethod),
		project.OvertimeAmt,
	)
	return err
}

func (r *repo) List(ctx context.Context, gw db.Gateway) ([]domain.ProjectListItem, error) {
	projects := make([]domain.ProjectListItem, 0)
	_, err := gw.Query(ctx, &projects,
		`SELECT p.id, p.name, p.client_id, p.emp_id, p.billing_amt, p.active,
		        p.billing_method, p.overtime_amt, c.name AS client_name
		 FROM projects p
		 LEFT JOIN clients c ON p.client_id = c.id
		 ORDER BY p.id ASC`,
	)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *repo) FindByID(ctx context.Context, gw db.Gateway, id int64) (*domain.Project, error) {
	var project domain.Project
	if _, err := gw.Query(ctx, &project, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id); err != nil {
		return nil, err
	}
	if project.ID == 0 {
		return nil, nil
	}
	return &project, nil
}

func (r *repo) Update(ctx context.Context, gw db.Gateway, project *domain.Project) (bool, error) {
	var updated domain.Project
	_, err := gw.Query(ctx, &updated,
		`UPDATE projects
		 SET name = ?, client_id = ?, emp_id = ?, billing_amt = ?, active = ?, billing_method = ?, overtime_amt = ?
		 WHERE id = ?
		 RETURNING `+projectColumns,
		project.Name,
		project.ClientID,
		project.EmpID,
		project.BillingAmt,
		project.Active,
		string(project.BillingMethod),
		project.OvertimeAmt,
		project.ID,
	)
	if err != nil {
		return false, err
	}
	if updated.ID == 0 {
		return false, nil
	}
	*project = updated
	return true, nil
}

func (r *repo) Delete(ctx context.Context, gw db.Gateway, id int64) (bool, error) {
	affected, err := gw.Exec(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
