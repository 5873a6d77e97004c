package repository

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/panorama/internal/client/domain"
	"github.com/smallbiznis/panorama/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByIDMissingCompanyKeepsRow(t *testing.T) {
	gw, conn := dbtest.Gateway(t)
	ctx := context.Background()
	r := Provide()

	companyID := dbtest.SeedCompany(t, conn, "Acme")
	now := time.Now().UTC()
	client := domain.Client{Name: "Globex", CompanyID: companyID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, r.Insert(ctx, gw, &client))
	require.NotZero(t, client.ID)

	found, err := r.FindByID(ctx, gw, client.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Acme", *found.CompanyName)

	missing, err := r.FindByID(ctx, gw, client.ID+1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateAndDeleteReportMissingRows(t *testing.T) {
	gw, _ := dbtest.Gateway(t)
	ctx := context.Background()
	r := Provide()

	found, err := r.Update(ctx, gw, &domain.Client{ID: 42, Name: "x", CompanyID: 1, UpdatedAt: time.Now()})
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err := r.Delete(ctx, gw, 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}
