package server

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	authrepo "github.com/smallbiznis/panorama/internal/auth/repository"
	authservice "github.com/smallbiznis/panorama/internal/auth/service"
	"github.com/smallbiznis/panorama/internal/auth/token"
	clientrepo "github.com/smallbiznis/panorama/internal/client/repository"
	clientservice "github.com/smallbiznis/panorama/internal/client/service"
	"github.com/smallbiznis/panorama/internal/clock"
	"github.com/smallbiznis/panorama/internal/config"
	employeerepo "github.com/smallbiznis/panorama/internal/employee/repository"
	employeeservice "github.com/smallbiznis/panorama/internal/employee/service"
	"github.com/smallbiznis/panorama/internal/invoice/render"
	invoicerepo "github.com/smallbiznis/panorama/internal/invoice/repository"
	invoiceservice "github.com/smallbiznis/panorama/internal/invoice/service"
	"github.com/smallbiznis/panorama/internal/observability"
	projectrepo "github.com/smallbiznis/panorama/internal/project/repository"
	projectservice "github.com/smallbiznis/panorama/internal/project/service"
	"github.com/smallbiznis/panorama/pkg/db/dbtest"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testServer struct {
	engine *gin.Engine
	conn   *gorm.DB
}

func newTestServer(t *testing.T, cfg config.Config) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if cfg.AuthJWTSecret == "" {
		cfg.AuthJWTSecret = "test-signing-secret"
	}
	gw, conn := dbtest.Gateway(t)
	clk := clock.NewFakeClock(time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC))
	log := zap.NewNop()

	engine := NewEngine(observability.Config{}, nil)
	NewServer(ServerParams{
		Gin: engine,
		Cfg: cfg,
		Log: log,
		AuthSvc: authservice.New(authservice.Params{
			DB:     gw,
			Log:    log,
			Clock:  clk,
			Repo:   authrepo.Provide(),
			Tokens: token.NewManager(cfg, clk),
		}),
		ClientSvc: clientservice.New(clientservice.Params{
			DB:    gw,
			Log:   log,
			Clock: clk,
			Repo:  clientrepo.Provide(),
		}),
		EmployeeSvc: employeeservice.New(employeeservice.Params{
			DB:   gw,
			Log:  log,
			Repo: employeerepo.Provide(),
		}),
		ProjectSvc: projectservice.New(projectservice.Params{
			DB:   gw,
			Log:  log,
			Repo: projectrepo.Provide(),
		}),
		InvoiceSvc: invoiceservice.New(invoiceservice.Params{
			DB:       gw,
			Log:      log,
			Clock:    clk,
			Repo:     invoicerepo.Provide(),
			Renderer: render.NewPDFRenderer(),
		}),
	})

	return testServer{engine: engine, conn: conn}
}

func (ts testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
