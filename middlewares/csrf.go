package middlewares

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/csrf"
)

type csrfTokenKey struct{}

// CSRFConfig configures the CSRF middleware.
type CSRFConfig struct {
	// CookieName is the session-identifier cookie. A session ID is
	// minted and set when the cookie is absent. Default: "session_id".
	CookieName string

	// FormField is the form field carrying the masked token.
	// Default: "csrf_token".
	FormField string

	// Logger receives a warn line for every rejected request.
	// Default: discard.
	Logger *slog.Logger

	// ErrorHandler renders the rejection response. Default: 403 plain
	// text, or 400 when the client accepts JSON.
	ErrorHandler http.HandlerFunc

	// Skipper exempts requests from verification (e.g. token-based API
	// routes that carry their own auth). Default: none.
	Skipper func(*http.Request) bool

	extractorSet bool
	extractor    Extractor
}

// CSRFOption configures CSRFConfig.
type CSRFOption func(*CSRFConfig)

// WithCSRFCookieName sets the session-identifier cookie name.
func WithCSRFCookieName(name string) CSRFOption {
	return func(cfg *CSRFConfig) { cfg.CookieName = name }
}

// WithCSRFFormField sets the form field carrying the masked token.
func WithCSRFFormField(name string) CSRFOption {
	return func(cfg *CSRFConfig) { cfg.FormField = name }
}

// WithCSRFLogger sets the logger for rejected requests.
func WithCSRFLogger(log *slog.Logger) CSRFOption {
	return func(cfg *CSRFConfig) { cfg.Logger = log }
}

// WithCSRFErrorHandler sets a custom rejection response.
func WithCSRFErrorHandler(h http.HandlerFunc) CSRFOption {
	return func(cfg *CSRFConfig) { cfg.ErrorHandler = h }
}

// WithCSRFSkipper exempts matching requests from verification.
func WithCSRFSkipper(skip func(*http.Request) bool) CSRFOption {
	return func(cfg *CSRFConfig) { cfg.Skipper = skip }
}

// WithCSRFExtractor sets a custom token extractor chain.
func WithCSRFExtractor(ext Extractor) CSRFOption {
	return func(cfg *CSRFConfig) {
		cfg.extractor = ext
		cfg.extractorSet = true
	}
}

// CSRF returns middleware that protects state-changing requests with
// masked anti-forgery tokens. Verification strictly precedes the
// handler: a POST, PUT, PATCH or DELETE whose token is missing,
// malformed or mismatched is rejected and the handler never runs.
//
// For every request the middleware issues (or re-reads) the session
// secret, re-masks it, exposes the fresh token via CSRFToken and sets
// it on the X-CSRF-Token response header. The token is looked up in
// the X-CSRF-Token and X-CSRFToken headers, then the csrf_token form
// field.
func CSRF(svc *csrf.Service, opts ...CSRFOption) func(http.Handler) http.Handler {
	cfg := &CSRFConfig{
		CookieName: "session_id",
		FormField:  "csrf_token",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = rejectCSRF
	}
	if !cfg.extractorSet {
		cfg.extractor = NewExtractor(
			FromHeader("X-CSRF-Token"),
			FromHeader("X-CSRFToken"),
			FromPostForm(cfg.FormField),
		)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skipper != nil && cfg.Skipper(r) {
				next.ServeHTTP(w, r)
				return
			}

			sessionID := ensureSessionID(w, r, cfg.CookieName)
			secret, err := svc.Issue(r.Context(), sessionID)
			if err != nil {
				cfg.Logger.Error("csrf: secret store unavailable", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if mutating(r.Method) {
				token, ok := cfg.extractor.Extract(r)
				if !ok || !svc.Verify(token, secret) {
					cfg.Logger.Warn("csrf: request rejected",
						"method", r.Method,
						"path", r.URL.Path,
						"token_present", ok,
					)
					cfg.ErrorHandler(w, r)
					return
				}
			}

			// Fresh mask per response so repeated observations never
			// expose correlated token bytes.
			masked := svc.Mask(secret)
			w.Header().Set("X-CSRF-Token", masked)
			ctx := context.WithValue(r.Context(), csrfTokenKey{}, masked)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CSRFToken returns the masked token for the current request, for
// embedding in rendered pages. Empty when the middleware is not
// installed.
func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(csrfTokenKey{}).(string)
	return token
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// ensureSessionID reads the session cookie, minting a new identifier
// when absent so anonymous visitors get a stable CSRF secret too.
func ensureSessionID(w http.ResponseWriter, r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// rejectCSRF is the default rejection response: 403 for browsers, 400
// for JSON clients.
func rejectCSRF(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid CSRF token"}`))
		return
	}
	http.Error(w, "Forbidden: invalid CSRF token", http.StatusForbidden)
}
