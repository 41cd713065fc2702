package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-support-ledger/internal/jwt"
)

const testToken = "valid-token"

// serve routes one request through a chi router so path parameters resolve
// the same way they do in the server.
func serve(method, pattern, path, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req = req.WithContext(jwt.WithToken(req.Context(), testToken))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
