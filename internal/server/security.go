package server

import "net/http"

// SecurityConfig controls the hardening headers and CORS policy applied to
// every endpoint.
type SecurityConfig struct {
	// EnableCORS toggles Access-Control-* headers.
	EnableCORS bool
	// AllowedOrigins lists origins granted CORS access; "*" allows any.
	AllowedOrigins []string
	// AllowedMethods lists HTTP methods advertised to CORS clients.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the default policy: permissive CORS for the
// read-only metrics endpoints.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware applies standard security headers and the CORS policy
// before delegating to next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := corsOrigin(config, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", joinMethods(config.AllowedMethods))
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// corsOrigin returns the Access-Control-Allow-Origin value for a request
// origin, or "" when the origin is not allowed.
func corsOrigin(config SecurityConfig, origin string) string {
	if origin == "" {
		return ""
	}
	for _, allowed := range config.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin {
			return origin
		}
	}
	return ""
}

// joinMethods renders the allowed method list as a header value.
func joinMethods(methods []string) string {
	out := ""
	for i, m := range methods {
		if i > 0 {
			out += ", "
		}
		out += m
	}
	return out
}
