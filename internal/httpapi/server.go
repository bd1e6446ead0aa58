package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/hazicy/override-rules/internal/catalog"
	"github.com/hazicy/override-rules/internal/fetch"
	"github.com/hazicy/override-rules/internal/options"
	"github.com/hazicy/override-rules/internal/override"
)

const maxOverrideBody = 8 * 1024 * 1024

type Server struct {
	opt     Options
	cat     catalog.Catalog
	log     *logrus.Logger
	metrics *Metrics
}

// NewRouter returns the production handler.
func NewRouter(opt Options) http.Handler {
	opt = opt.withDefaults()
	s := &Server{
		opt:     opt,
		cat:     catalog.Default(),
		log:     opt.Logger,
		metrics: NewMetrics(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Get("/sub", s.handleSub)
	r.Post("/api/override", s.handleOverride)
	return r
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// handleSub fetches the upstream configuration named by the url query
// parameter, applies the override with the flags from the remaining query
// parameters, and returns the final YAML document.
func (s *Server) handleSub(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.opt.OverrideTimeout)
	defer cancel()

	rawURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if rawURL == "" {
		s.writeError(w, requestError("INVALID_ARGUMENT", "缺少 url 参数", "GET /sub?url=<订阅地址>&landing=true"))
		return
	}

	text, err := fetch.FetchTextWithOptions(ctx, rawURL, fetch.Options{Timeout: s.opt.FetchTimeout})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.run(w, text, options.FromQuery(r.URL.Query()))
}

type overrideRequestJSON struct {
	Config string         `json:"config"`
	Flags  map[string]any `json:"flags"`
}

// handleOverride applies the override to a configuration document supplied
// inline, with flags from the JSON body. Flag values may be booleans,
// numbers or text; coercion is documented in the options package.
func (s *Server) handleOverride(w http.ResponseWriter, r *http.Request) {
	var req overrideRequestJSON
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxOverrideBody))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, requestError("INVALID_ARGUMENT", "请求体不是合法 JSON", err.Error()))
		return
	}

	s.run(w, req.Config, options.FromMap(req.Flags))
}

func (s *Server) run(w http.ResponseWriter, configText string, fl options.Flags) {
	doc, err := override.ParseDocument(configText)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out, err := override.Apply(doc, fl, s.cat)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := override.EncodeDocument(out)
	if err != nil {
		s.writeError(w, err)
		return
	}

	WriteYAML(w, http.StatusOK, data)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, app := classifyErr(err)
	s.metrics.incAppError(app.Stage, app.Code)
	if status >= http.StatusInternalServerError {
		s.log.WithFields(logrus.Fields{"stage": app.Stage, "code": app.Code}).Error(err)
	}
	WriteError(w, status, app)
}

// observe records request metrics and a minimal access log. The query string
// is never logged because subscription URLs may contain secrets.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		dur := time.Since(start)
		s.metrics.observeRequest(route, ww.Status(), dur)

		if r.URL.Path == "/healthz" || r.URL.Path == "/metrics" {
			return
		}
		s.log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"route":  route,
			"status": ww.Status(),
			"bytes":  ww.BytesWritten(),
			"dur":    dur.Round(time.Millisecond).String(),
		}).Info("http request")
	})
}
