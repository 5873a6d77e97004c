package repository

import (
	"context"

	"github.com/smallbiznis/panorama/internal/employee/domain"
	"github.com/smallbiznis/panorama/pkg/db"
)

const employeeColumns = `id, name, position, working_on, emp_code`

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, gw db.Gateway, employee *domain.Employee) error {
	_, err := gw.Query(ctx, employee,
		`INSERT INTO employee (name, position, working_on, emp_code)
		 VALUES (?, ?, ?, ?)
		 RETURNING `+employeeColumns,
		employee.Name,
		employee.Position,
		employee.WorkingOn,
		employee.EmpCode,
	)
	return err
}

func (r *repo) List(ctx context.Context, gw db.Gateway) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0)
	if _, err := gw.Query(ctx, &employees, `SELECT `+employeeColumns+` FROM employee ORDER BY id ASC`); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repo) FindByID(ctx context.Context, gw db.Gateway, id int64) (*domain.Employee, error) {
	var employee domain.Employee
	if _, err := gw.Query(ctx, &employee, `SELECT `+employeeColumns+` FROM employee WHERE id = ?`, id); err != nil {
		return nil, err
	}
	if employee.ID == 0 {
		return nil, nil
	}
	return &employee, nil
}

func (r *repo) Update(ctx context.Context, gw db.Gateway, employee *domain.Employee) (bool, error) {
	var updated domain.Employee
	_, err := gw.Query(ctx, &updated,
		`UPDATE employee
		 SET name = ?, position = ?, working_on = ?, emp_code = ?
		 WHERE id = ?
		 RETURNING `+employeeColumns,
		employee.Name,
		employee.Position,
		employee.WorkingOn,
		employee.EmpCode,
		employee.ID,
	)
	if err != nil {
		return false, err
	}
	if updated.ID == 0 {
		return false, nil
	}
	*employee = updated
	return true, nil
}

func (r *repo) Delete(ctx context.Context, gw db.Gateway, id int64) (bool, error) {
	affected, err := gw.Exec(ctx, `DELETE FROM employee WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
