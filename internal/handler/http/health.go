package http

import "net/http"

// health is the unauthenticated reachability probe used by clients to decide
// whether queued answers can be transmitted.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
