package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"nightnurse/internal/store"
	"nightnurse/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

// Notifier is the best-effort side channel fired after a successful upsert.
// Implementations must contain their own failures.
type Notifier interface {
	Notify(kind string, fields map[string]string)
}

type Service struct {
	logger     *logrus.Logger
	config     *types.Config
	parents    store.ParentRecorder
	caregivers store.CaregiverRecorder
	notifier   Notifier
	templates  *template.Template

	cookie  *securecookie.SecureCookie
	limiter *rateLimiter

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	parents store.ParentRecorder,
	caregivers store.CaregiverRecorder,
	notifier Notifier,
) (*Service, error) {
	mux := flow.New()

	hashKey, err := base64.StdEncoding.DecodeString(config.CookieHashKey)
	if err != nil {
		return nil, fmt.Errorf("decode cookie hash key: %w", err)
	}
	blockKey, err := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	if err != nil {
		return nil, fmt.Errorf("decode cookie block key: %w", err)
	}

	s := &Service{
		logger:     logger,
		config:     config,
		parents:    parents,
		caregivers: caregivers,
		notifier:   notifier,
		cookie:     securecookie.New(hashKey, blockKey),
		limiter:    newRateLimiter(),
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.RequestID)
	r.Use(s.LoggingMiddleware)
	r.Use(s.SecurityHeaders)
	r.Use(s.RateLimit)

	r.HandleFunc("/", s.handleHome, http.MethodGet)
	r.HandleFunc("/parents", s.handleParentsPage, http.MethodGet)
	r.HandleFunc("/caregivers", s.handleCaregiversPage, http.MethodGet)
	r.HandleFunc("/join", s.handleNannyNetworkPage, http.MethodGet)
	r.HandleFunc("/nanny-network", s.handleNannyNetworkPage, http.MethodGet)
	r.HandleFunc("/thank-you", s.handleThankYouPage, http.MethodGet)

	r.HandleFunc("/api/parents", s.handleParentSubmit, http.MethodPost)
	r.HandleFunc("/api/caregivers", s.handleCaregiverSubmit, http.MethodPost)
	r.HandleFunc("/api/caregivers/apply", s.handleApplicationSubmit, http.MethodPost)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/admin/login", s.handleGetAdminLogin, http.MethodGet)
	r.HandleFunc("/admin/login", s.handlePostAdminLogin, http.MethodPost)
	r.HandleFunc("/admin/logout", s.handleAdminLogout, http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAdmin)

		r.HandleFunc("/admin", s.handleAdminDashboard, http.MethodGet)
		r.HandleFunc("/admin/export.csv", s.handleAdminExport, http.MethodGet)
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	t := template.New("")
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
