package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/Daskott/kontacts/colors"
	"github.com/Daskott/kontacts/server/auth"
	"github.com/gorilla/mux"
)

type ResponseWriterWithStatus struct {
	http.ResponseWriter
	Status int
}

func (r *ResponseWriterWithStatus) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		responseWriter := &ResponseWriterWithStatus{
			ResponseWriter: w,
			Status:         200,
		}

		defer func() {
			logg.Info(
				r.Method, " ",
				r.RequestURI, " ",
				colors.HTTPStatus(responseWriter.Status), " ",
				colors.Elapsed(time.Since(start)))
		}()

		next.ServeHTTP(responseWriter, r)
	})
}

func contentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// authMiddleware rejects requests without a valid 'Authorization: Bearer <token>' header
func authMiddleware(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if errMsg := decodeAndVerifyAuthHeader(r.Header.Get("Authorization"), secret); errMsg != "" {
				writeResponse(w, ResponsePayload{Errors: []string{errMsg}}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

// decodeAndVerifyAuthHeader returns the reason the header is rejected, empty if it's valid
func decodeAndVerifyAuthHeader(authHeaderValue string, secret string) string {
	authHeaderList := strings.Split(authHeaderValue, "Bearer ")
	if len(authHeaderList) < 2 {
		return "no token provided"
	}

	if _, err := auth.DecodeJWT(authHeaderList[1], secret); err != nil {
		logg.Debug(err)
		return "invalid token provided"
	}

	return ""
}
