// Package middlewares provides HTTP middleware for formkit applications.
//
// # CSRF
//
// CSRF wires the token service from pkg/csrf into net/http. It mints a
// session cookie when none exists, issues the session secret, verifies
// mutating requests before the handler runs and exposes a freshly
// masked token to handlers via CSRFToken:
//
//	svc, _ := csrf.New(secretKey, csrf.NewMemoryStore())
//
//	r := chi.NewRouter()
//	r.Use(middlewares.CSRF(svc))
//	r.Get("/form", func(w http.ResponseWriter, r *http.Request) {
//	    token := middlewares.CSRFToken(r.Context())
//	    // embed token as a hidden csrf_token field
//	})
//
// Unverified mutating requests are rejected with 403 Forbidden, or
// 400 Bad Request with a JSON body for clients that accept
// application/json. Use WithCSRFSkipper to exempt routes such as
// webhook endpoints, and WithCSRFErrorHandler to customize rejection.
//
// # Extractor
//
// Extractor is the small value-extraction chain the CSRF middleware
// uses to locate tokens. It tries sources in order and can be rewired
// for clients that send tokens in unusual places:
//
//	middlewares.WithCSRFExtractor(middlewares.NewExtractor(
//	    middlewares.FromHeader("X-My-Token"),
//	    middlewares.FromPostForm("my_token"),
//	))
package middlewares
