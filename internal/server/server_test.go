package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/panorama/internal/config"
	"github.com/smallbiznis/panorama/internal/observability"
	"github.com/smallbiznis/panorama/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Error   string `json:"error"`
}

func TestLivenessAndHealth(t *testing.T) {
	ts := newTestServer(t, config.Config{})

	rec := ts.do(t, http.MethodGet, "/", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, livenessMessage, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/health", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/nope", nil)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestRegisterGinUsesReleaseModeInProduction(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	gin.SetMode(gin.DebugMode)
	registerGin(config.Config{Environment: "staging"}, observability.Config{}, nil)
	assert.Equal(t, gin.DebugMode, gin.Mode())

	registerGin(config.Config{Environment: "production"}, observability.Config{}, nil)
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, config.Config{})

	rec := ts.do(t, http.MethodOptions, "/api/clients", nil, "Origin", "http://localhost:5173")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t, config.Config{})
	creds := map[string]string{"email": "ops@acme.io", "password": "hunter22"}

	rec := ts.do(t, http.MethodPost, "/adminLogin", creds)
	requireStatus(t, rec, http.StatusCreated)
	created := decode[struct {
		Message string `json:"message"`
		Admin   struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		} `json:"admin"`
	}](t, rec)
	assert.Equal(t, "ops@acme.io admin created successfully", created.Message)
	assert.NotZero(t, created.Admin.ID)
	assert.Equal(t, "ops@acme.io", created.Admin.Email)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = ts.do(t, http.MethodPost, "/adminLogin", creds)
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "Admin already exists", decode[errorBody](t, rec).Message)

	rec = ts.do(t, http.MethodPost, "/login", creds)
	requireStatus(t, rec, http.StatusOK)
	login := decode[struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}](t, rec)
	assert.Equal(t, "User ops@acme.io logged in successfully", login.Message)
	assert.NotEmpty(t, login.Token)

	rec = ts.do(t, http.MethodPost, "/login", map[string]string{"email": "ops@acme.io", "password": "wrong-pass"})
	requireStatus(t, rec, http.StatusLengthRequired)
	assert.Equal(t, "InvalidCredential", decode[errorBody](t, rec).Type)

	rec = ts.do(t, http.MethodPost, "/login", map[string]string{"email": "ghost@acme.io", "password": "hunter22"})
	requireStatus(t, rec, http.StatusNotFound)

	rec = ts.do(t, http.MethodPost, "/login", map[string]string{"email": "not-an-email", "password": "hunter22"})
	requireStatus(t, rec, http.StatusLengthRequired)
	assert.Equal(t, "Invalid input / incorrect credentials", decode[errorBody](t, rec).Message)

	rec = ts.do(t, http.MethodPost, "/login", "{")
	requireStatus(t, rec, http.StatusLengthRequired)
}

func TestEmptyListShapes(t *testing.T) {
	ts := newTestServer(t, config.Config{})

	for _, path := range []string{"/api/clients", "/api/employee"} {
		rec := ts.do(t, http.MethodGet, path, nil)
		requireStatus(t, rec, http.StatusOK)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}

	rec := ts.do(t, http.MethodGet, "/api/projects", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"message":"No projects found in the database.","projects":[]}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/invoices", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"message":"No invoices found.","invoices":[]}`, rec.Body.String())
}

func TestInvoicingFlow(t *testing.T) {
	ts := newTestServer(t, config.Config{})
	companyID := dbtest.SeedCompany(t, ts.conn, "Acme")

	rec := ts.do(t, http.MethodPost, "/api/clients", map[string]any{
		"name":       "Globex",
		"state":      "KA",
		"company_id": companyID,
	})
	requireStatus(t, rec, http.StatusCreated)
	client := decode[struct {
		Message string `json:"message"`
		Client  struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"client"`
	}](t, rec)
	assert.Equal(t, "Client created successfully", client.Message)

	rec = ts.do(t, http.MethodPost, "/api/employee", map[string]any{"name": "Ann", "position": "Engineer"})
	requireStatus(t, rec, http.StatusCreated)
	employee := decode[struct {
		Employee struct {
			ID int64 `json:"id"`
		} `json:"employee"`
	}](t, rec)

	rec = ts.do(t, http.MethodPost, "/api/projects", map[string]any{
		"name":        "Portal",
		"client_id":   client.Client.ID,
		"emp_id":      employee.Employee.ID,
		"billing_amt": 350,
	})
	requireStatus(t, rec, http.StatusCreated)
	project := decode[struct {
		Project struct {
			ID            int64  `json:"id"`
			Active        bool   `json:"active"`
			BillingMethod string `json:"billing_method"`
		} `json:"project"`
	}](t, rec)
	assert.True(t, project.Project.Active)
	assert.Equal(t, "days", project.Project.BillingMethod)

	invoiceBody := map[string]any{
		"invoice_no":   "INV-0001",
		"project_id":   project.Project.ID,
		"issue_date":   "2025-04-30",
		"total_amount": 7350,
		"days":         21,
	}
	rec = ts.do(t, http.MethodPost, "/api/invoices", invoiceBody)
	requireStatus(t, rec, http.StatusCreated)
	invoice := decode[struct {
		Message string `json:"message"`
		Invoice struct {
			ID        int64   `json:"id"`
			InvoiceNo string  `json:"invoice_no"`
			ClientID  int64   `json:"client_id"`
			CompanyID int64   `json:"company_id"`
			EmpID     int64   `json:"emp_id"`
			Days      float64 `json:"days"`
		} `json:"invoice"`
	}](t, rec)
	assert.Equal(t, "Invoice created successfully", invoice.Message)
	assert.Equal(t, client.Client.ID, invoice.Invoice.ClientID)
	assert.Equal(t, companyID, invoice.Invoice.CompanyID)
	assert.Equal(t, employee.Employee.ID, invoice.Invoice.EmpID)
	assert.InDelta(t, 21, invoice.Invoice.Days, 0.001)

	rec = ts.do(t, http.MethodPost, "/api/invoices", invoiceBody)
	requireStatus(t, rec, http.StatusBadRequest)
	dup := decode[errorBody](t, rec)
	assert.Equal(t, "DuplicateError", dup.Type)
	assert.Equal(t, "Duplicate invoice_no - must be unique.", dup.Message)
	assert.NotEmpty(t, dup.Error)

	rec = ts.do(t, http.MethodPost, "/api/invoices", map[string]any{"invoice_no": "INV-0002", "project_id": project.Project.ID + 50})
	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "Project does not exist.", decode[errorBody](t, rec).Message)

	rec = ts.do(t, http.MethodGet, fmt.Sprintf("/api/invoices/%d", invoice.Invoice.ID), nil)
	requireStatus(t, rec, http.StatusOK)
	detail := decode[map[string]any](t, rec)
	assert.Equal(t, "Portal", detail["project_name"])
	assert.Equal(t, "Globex", detail["client_name"])
	assert.Equal(t, "Acme", detail["company_name"])
	assert.Equal(t, "Ann", detail["employee_name"])

	rec = ts.do(t, http.MethodGet, fmt.Sprintf("/api/invoices/%d/pdf", invoice.Invoice.ID), nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="inv-0001.pdf"`)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = ts.do(t, http.MethodGet, "/api/projects", nil)
	requireStatus(t, rec, http.StatusOK)
	projects := decode[[]map[string]any](t, rec)
	require.Len(t, projects, 1)
	assert.Equal(t, "Globex", projects[0]["client_name"])

	rec = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.Project.ID), nil)
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "ReferenceError", decode[errorBody](t, rec).Type)

	rec = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/invoices/%d", invoice.Invoice.ID), nil)
	requireStatus(t, rec, http.StatusOK)
	rec = ts.do(t, http.MethodGet, fmt.Sprintf("/api/invoices/%d", invoice.Invoice.ID), nil)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestRequestValidation(t *testing.T) {
	ts := newTestServer(t, config.Config{})
	companyID := dbtest.SeedCompany(t, ts.conn, "Acme")

	rec := ts.do(t, http.MethodGet, "/api/clients/abc", nil)
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "Invalid client ID provided.", decode[errorBody](t, rec).Message)

	rec = ts.do(t, http.MethodPost, "/api/clients", map[string]any{"name": "Globex", "company_id": "one"})
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "TypeError", decode[errorBody](t, rec).Type)

	rec = ts.do(t, http.MethodPost, "/api/clients", map[string]any{"name": "Globex", "company_id": companyID + 9})
	requireStatus(t, rec, http.StatusBadRequest)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "ReferenceError", body.Type)
	assert.NotEmpty(t, body.Error)

	rec = ts.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Portal", "client_id": 1, "emp_id": 1, "billing_method": "weekly"})
	requireStatus(t, rec, http.StatusBadRequest)
	body = decode[errorBody](t, rec)
	assert.Equal(t, "ValidationError", body.Type)
	assert.Empty(t, body.Error)

	rec = ts.do(t, http.MethodPost, "/api/invoices", map[string]any{"invoice_no": "INV-1", "project_id": 1, "issue_date": "yesterday"})
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "TypeError", decode[errorBody](t, rec).Type)

	rec = ts.do(t, http.MethodGet, "/api/employee/42", nil)
	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "Employee not found", decode[errorBody](t, rec).Message)
}

func TestEmptyBodyReportsMissingFields(t *testing.T) {
	ts := newTestServer(t, config.Config{})

	for _, path := range []string{"/api/clients", "/api/employee", "/api/projects", "/api/invoices"} {
		for _, body := range []any{nil, "{}"} {
			rec := ts.do(t, http.MethodPost, path, body)
			requireStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, "ValidationError", decode[errorBody](t, rec).Type, path)
		}
	}

	rec := ts.do(t, http.MethodPost, "/login", nil)
	requireStatus(t, rec, http.StatusLengthRequired)
	assert.Equal(t, "InvalidInput", decode[errorBody](t, rec).Type)
}

func TestAdminRegisterKeepsShortPasswords(t *testing.T) {
	ts := newTestServer(t, config.Config{})

	rec := ts.do(t, http.MethodPost, "/adminLogin", map[string]string{"email": "a@b.co", "password": "abc"})
	requireStatus(t, rec, http.StatusCreated)

	var stored string
	require.NoError(t, ts.conn.Raw(`SELECT password FROM admins WHERE email = ?`, "a@b.co").Scan(&stored).Error)
	assert.NotEqual(t, "abc", stored)

	rec = ts.do(t, http.MethodPost, "/adminLogin", nil)
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "ValidationError", decode[errorBody](t, rec).Type)
}

func TestBearerAuthGate(t *testing.T) {
	ts := newTestServer(t, config.Config{AuthRequireToken: true})

	rec := ts.do(t, http.MethodGet, "/api/clients", nil)
	requireStatus(t, rec, http.StatusUnauthorized)

	rec = ts.do(t, http.MethodGet, "/api/clients", nil, "Authorization", "Bearer not.a.token")
	requireStatus(t, rec, http.StatusUnauthorized)

	creds := map[string]string{"email": "ops@acme.io", "password": "hunter22"}
	requireStatus(t, ts.do(t, http.MethodPost, "/adminLogin", creds), http.StatusCreated)
	rec = ts.do(t, http.MethodPost, "/login", creds)
	requireStatus(t, rec, http.StatusOK)
	tok := decode[struct {
		Token string `json:"token"`
	}](t, rec).Token

	rec = ts.do(t, http.MethodGet, "/api/clients", nil, "Authorization", "Bearer "+tok)
	requireStatus(t, rec, http.StatusOK)

	rec = ts.do(t, http.MethodGet, "/", nil)
	requireStatus(t, rec, http.StatusOK)
}
