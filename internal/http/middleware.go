package httpx

import (
	"log"
	"net/http"
	"time"

	"github.com/Sayog-Shendre/bloger-page/internal/auth"
	"github.com/Sayog-Shendre/bloger-page/internal/util"
)

// withAuth reads the token cookie and, when it verifies, injects the
// admin identity into the request context. It never rejects by itself;
// requireAuth does that.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(auth.CookieName); err == nil && c.Value != "" {
			if email, ok := auth.VerifyToken(s.Cfg.TokenSecret, c.Value); ok {
				r = r.WithContext(auth.WithEmail(r.Context(), email))
			} else {
				log.Printf("token FAIL path=%s", r.URL.Path)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.EmailFrom(r.Context()); !ok {
			util.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ——— access log ———

type statusRW struct {
	http.ResponseWriter
	status int
}

func (w *statusRW) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// WithAccessLog logs METHOD PATH -> STATUS (duration) per request.
func WithAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusRW{ResponseWriter: w, status: 200}
		next.ServeHTTP(sw, r)
		log.Printf("%s %s -> %d (%s)", r.Method, r.URL.Path, sw.status, time.Since(start).Truncate(time.Millisecond))
	})
}

// WithTimeout bounds the whole request at 5s.
func WithTimeout(next http.Handler) http.Handler {
	return http.TimeoutHandler(next, 5*time.Second, "request timeout")
}
