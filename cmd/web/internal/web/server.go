package web

import (
	"log/slog"
	"net/http"

	"checkershub.com/checkers/cmd/web/ctxkeys"
	"checkershub.com/checkers/cmd/web/handlers/content"
	"checkershub.com/checkers/cmd/web/handlers/menu"
	"checkershub.com/checkers/cmd/web/handlers/panel"
	"checkershub.com/checkers/cmd/web/internal/visitors"
	staticpkg "checkershub.com/checkers/cmd/web/internal/web/utils/static"
	"checkershub.com/checkers/cmd/web/templates"
	"checkershub.com/checkers/cmd/web/visitor"
	"checkershub.com/checkers/internal/metrics"
	"checkershub.com/checkers/static"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Webserver struct {
	*echo.Echo
	sessionManager *visitor.SessionManager
	hub            *visitors.Hub
	staticCache    *staticpkg.Cache
	footer         templates.FooterView
}

func NewWebserver(sessionManager *visitor.SessionManager, hub *visitors.Hub, footer templates.FooterView) (*Webserver, error) {
	e := echo.New()

	staticCache, err := staticpkg.NewCache(static.FS)
	if err != nil {
		return nil, err
	}

	webserver := &Webserver{
		Echo:           e,
		sessionManager: sessionManager,
		hub:            hub,
		staticCache:    staticCache,
		footer:         footer,
	}

	if err = webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	if err = webserver.registerRoutes(); err != nil {
		return nil, err
	}

	return webserver, nil
}

// skipVisitor lists paths that never touch visitor state.
func skipVisitor(c echo.Context) bool {
	switch c.Path() {
	case "/healthz", "/metrics", "/static/*":
		return true
	default:
		return false
	}
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("64K"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz" || c.Path() == "/metrics"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	// Every page and panel request belongs to a visitor; issue one on first contact.
	s.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipVisitor(c) {
				return next(c)
			}

			visitorID, err := s.sessionManager.EnsureVisitor(c.Response().Writer, c.Request())
			if err != nil {
				slog.Error("failed to issue visitor session", "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
			}

			c.Set(ctxkeys.EchoVisitorID, visitorID)

			return next(c)
		}
	})

	return nil
}

func (s *Webserver) registerRoutes() error {
	panelGroup := s.Group("/panel")
	panelGroup.POST("/buy/open", panel.HandleOpenBuy(s.hub))
	panelGroup.POST("/retrieve/open", panel.HandleOpenRetrieve(s.hub))
	panelGroup.POST("/close", panel.HandleClose(s.hub))
	panelGroup.POST("/buy", panel.HandleBuySubmit(s.hub))
	panelGroup.POST("/retrieve", panel.HandleRetrieveSubmit(s.hub))

	menuGroup := s.Group("/menu")
	menuGroup.POST("/toggle", menu.HandleToggle(s.hub))
	menuGroup.POST("/select/:item", menu.HandleSelect(s.hub))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	s.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Static file serving
	s.GET("/static/*", s.staticCache.Handler("/static/"))

	// Content routes
	s.GET("/buy", content.HandleBuyPage(s.hub, s.footer))
	s.GET("/retrieve", content.HandleRetrievePage(s.hub, s.footer))
	s.GET("/", content.HandleHomePage(s.hub, s.footer))

	return nil
}
