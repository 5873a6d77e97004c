package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/panorama/internal/auth"
	authdomain "github.com/smallbiznis/panorama/internal/auth/domain"
	"github.com/smallbiznis/panorama/internal/client"
	clientdomain "github.com/smallbiznis/panorama/internal/client/domain"
	"github.com/smallbiznis/panorama/internal/config"
	"github.com/smallbiznis/panorama/internal/employee"
	employeedomain "github.com/smallbiznis/panorama/internal/employee/domain"
	"github.com/smallbiznis/panorama/internal/invoice"
	invoicedomain "github.com/smallbiznis/panorama/internal/invoice/domain"
	"github.com/smallbiznis/panorama/internal/observability"
	obsmiddleware "github.com/smallbiznis/panorama/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/panorama/internal/observability/metrics"
	obstracing "github.com/smallbiznis/panorama/internal/observability/tracing"
	"github.com/smallbiznis/panorama/internal/project"
	projectdomain "github.com/smallbiznis/panorama/internal/project/domain"
	"github.com/smallbiznis/panorama/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	auth.Module,
	client.Module,
	employee.Module,
	project.Module,
	invoice.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

const livenessMessage = "Invoice server is running..."

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORS())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	if httpMetrics != nil {
		r.Use(httpMetrics.GinMiddleware())
	}
	r.Use(ErrorHandlingMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, livenessMessage)
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("http server listening", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	authSvc      authdomain.Service
	clientSvc    clientdomain.Service
	employeeSvc  employeedomain.Service
	projectSvc   projectdomain.Service
	invoiceSvc   invoicedomain.Service
	loginLimiter *ratelimit.LoginLimiter
	obsMetrics   *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	AuthSvc      authdomain.Service
	ClientSvc    clientdomain.Service
	EmployeeSvc  employeedomain.Service
	ProjectSvc   projectdomain.Service
	InvoiceSvc   invoicedomain.Service
	LoginLimiter *ratelimit.LoginLimiter `optional:"true"`
	ObsMetrics   *obsmetrics.Metrics     `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		log:          p.Log.Named("http.server"),
		authSvc:      p.AuthSvc,
		clientSvc:    p.ClientSvc,
		employeeSvc:  p.EmployeeSvc,
		projectSvc:   p.ProjectSvc,
		invoiceSvc:   p.InvoiceSvc,
		loginLimiter: p.LoginLimiter,
		obsMetrics:   p.ObsMetrics,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()
	svc.registerFallback()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	s.engine.POST("/adminLogin", s.RegisterAdmin)
	s.engine.POST("/login", s.LoginRateLimit(), s.Login)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")
	if s.cfg.AuthRequireToken {
		api.Use(s.BearerAuth())
	}

	// -------- Clients --------
	api.POST("/clients", s.CreateClient)
	api.GET("/clients", s.ListClients)
	api.GET("/clients/:id", s.GetClientByID)
	api.PUT("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)

	// -------- Employees --------
	api.POST("/employee", s.CreateEmployee)
	api.GET("/employee", s.ListEmployees)
	api.GET("/employee/:id", s.GetEmployeeByID)
	api.PUT("/employee/:id", s.UpdateEmployee)
	api.DELETE("/employee/:id", s.DeleteEmployee)

	// -------- Projects --------
	api.POST("/projects", s.CreateProject)
	api.GET("/projects", s.ListProjects)
	api.GET("/projects/:id", s.GetProjectByID)
	api.PUT("/projects/:id", s.UpdateProject)
	api.DELETE("/projects/:id", s.DeleteProject)

	// -------- Invoices --------
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.GET("/invoices/:id/pdf", s.DownloadInvoicePDF)
	api.PUT("/invoices/:id", s.UpdateInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
}

func (s *Server) registerFallback() {
	s.engine.NoRoute(func(c *gin.Context) {
		AbortWithError(c, errRouteNotFound)
	})
}
