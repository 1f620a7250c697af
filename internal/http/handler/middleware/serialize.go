package middleware

import (
	"net/http"
	"sync"
)

// SerializeMiddleware runs one request at a time. Handlers downstream read and
// mutate the in-memory store without their own locking.
type SerializeMiddleware struct {
	mu sync.Mutex
}

func NewSerializeMiddleware() *SerializeMiddleware {
	return &SerializeMiddleware{}
}

func (m *SerializeMiddleware) Serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
