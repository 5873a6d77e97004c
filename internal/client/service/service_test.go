package service

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/panorama/internal/apperror"
	"github.com/smallbiznis/panorama/internal/client/domain"
	"github.com/smallbiznis/panorama/internal/client/repository"
	"github.com/smallbiznis/panorama/internal/clock"
	"github.com/smallbiznis/panorama/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *clock.FakeClock, *gorm.DB) {
	t.Helper()
	gw, conn := dbtest.Gateway(t)
	clk := clock.NewFakeClock(time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC))
	return New(Params{
		DB:    gw,
		Log:   zap.NewNop(),
		Clock: clk,
		Repo:  repository.Provide(),
	}), clk, conn
}

func strPtr(v string) *string { return &v }

func TestCreateThenGet(t *testing.T) {
	svc, clk, conn := newTestService(t)
	ctx := context.Background()
	companyID := dbtest.SeedCompany(t, conn, "Acme")

	created, err := svc.Create(ctx, domain.ClientInput{
		Name:      "  Globex ",
		Address:   strPtr("1 Main St"),
		GSTNumber: strPtr("29ABCDE1234F1Z5"),
		CompanyID: companyID,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Globex", created.Name)
	assert.Nil(t, created.State)
	assert.True(t, clk.Now().Equal(created.CreatedAt))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Address, got.Address)
	assert.Equal(t, created.GSTNumber, got.GSTNumber)
	assert.Equal(t, created.CompanyID, got.CompanyID)
	require.NotNil(t, got.CompanyName)
	assert.Equal(t, "Acme", *got.CompanyName)
}

func TestCreateValidation(t *testing.T) {
	svc, _, conn := newTestService(t)
	ctx := context.Background()
	companyID := dbtest.SeedCompany(t, conn, "Acme")

	_, err := svc.Create(ctx, domain.ClientInput{Name: " ", CompanyID: companyID})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = svc.Create(ctx, domain.ClientInput{Name: "Globex"})
	assert.ErrorIs(t, err, domain.ErrCompanyRequired)

	_, err = svc.Create(ctx, domain.ClientInput{Name: "Globex", CompanyID: 999})
	assert.Equal(t, apperror.CategoryReference, apperror.CategoryOf(err))
}

func TestListOrdersByID(t *testing.T) {
	svc, _, conn := newTestService(t)
	ctx := context.Background()

	empty, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	companyID := dbtest.SeedCompany(t, conn, "Acme")
	for _, name := range []string{"b", "a", "c"} {
		_, err := svc.Create(ctx, domain.ClientInput{Name: name, CompanyID: companyID})
		require.NoError(t, err)
	}

	clients, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "b", clients[0].Name)
	assert.Less(t, clients[0].ID, clients[1].ID)
	assert.Less(t, clients[1].ID, clients[2].ID)
}

func TestUpdateReplacesRecord(t *testing.T) {
	svc, clk, conn := newTestService(t)
	ctx := context.Background()
	companyID := dbtest.SeedCompany(t, conn, "Acme")

	created, err := svc.Create(ctx, domain.ClientInput{Name: "Globex", State: strPtr("KA"), CompanyID: companyID})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	updated, err := svc.Update(ctx, created.ID, domain.ClientInput{Name: "Globex Ltd", CompanyID: companyID})
	require.NoError(t, err)
	assert.Equal(t, "Globex Ltd", updated.Name)
	assert.Nil(t, updated.State)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, clk.Now().Equal(updated.UpdatedAt))

	_, err = svc.Update(ctx, created.ID+100, domain.ClientInput{Name: "x", CompanyID: companyID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, _, conn := newTestService(t)
	ctx := context.Background()
	companyID := dbtest.SeedCompany(t, conn, "Acme")

	created, err := svc.Create(ctx, domain.ClientInput{Name: "Globex", CompanyID: companyID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestDeleteReferencedClient(t *testing.T) {
	svc, _, conn := newTestService(t)
	ctx := context.Background()
	companyID := dbtest.SeedCompany(t, conn, "Acme")

	created, err := svc.Create(ctx, domain.ClientInput{Name: "Globex", CompanyID: companyID})
	require.NoError(t, err)
	require.NoError(t, conn.Exec(`INSERT INTO employee (name) VALUES ('Ann')`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO projects (name, client_id, emp_id) VALUES ('Site', ?, 1)`, created.ID).Error)

	err = svc.Delete(ctx, created.ID)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CategoryReference, appErr.Category)
	assert.Contains(t, appErr.Message, "Cannot delete")
}

func TestRejectsNonPositiveIDs(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	_, err = svc.Update(ctx, -1, domain.ClientInput{Name: "x", CompanyID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	assert.ErrorIs(t, svc.Delete(ctx, 0), domain.ErrInvalidID)
}
