package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"coinledger/internal/http/handler/middleware"
	"coinledger/internal/http/handler/middleware/fake"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w        *httptest.ResponseRecorder
		req      *http.Request
		reached  bool
		captured *http.Request
		next     http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/v1/addresses", nil)
		reached = false
		captured = nil
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			captured = r
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			id := middleware.RequestIDFrom(captured.Context())
			Expect(id).NotTo(BeEmpty())
			Expect(w.Header().Get(middleware.RequestHeader)).To(Equal(id))
		})

		It("should keep the caller's id", func() {
			req.Header.Set(middleware.RequestHeader, "abc-123")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(middleware.RequestIDFrom(captured.Context())).To(Equal("abc-123"))
		})
	})

	Describe("Logging", func() {
		It("should pass the response through", func() {
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, req)
			Expect(reached).To(BeTrue())
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("AuthMiddleware", func() {
		var (
			validator *fake.TokenValidator
			auth      *middleware.AuthMiddleware
		)

		BeforeEach(func() {
			validator = new(fake.TokenValidator)
			validator.ValidateReturns(jwt.MapClaims{"sub": "owner-service", "scope": "wallet"}, nil)
			auth = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), validator)
		})

		It("should reject requests without a bearer token", func() {
			auth.Authenticate(next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(reached).To(BeFalse())
			Expect(validator.ValidateCallCount()).To(BeZero())
		})

		It("should reject invalid tokens", func() {
			req.Header.Set("Authorization", "Bearer broken")
			validator.ValidateReturns(nil, errors.New("token is not valid"))

			auth.Authenticate(next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(reached).To(BeFalse())
		})

		It("should pass valid tokens and expose the subject", func() {
			req.Header.Set("Authorization", "Bearer good")

			auth.Authenticate(next).ServeHTTP(w, req)
			Expect(reached).To(BeTrue())
			Expect(validator.ValidateArgsForCall(0)).To(Equal("good"))
			Expect(captured.Context().Value(middleware.SubjectKey)).To(Equal("owner-service"))
		})

		It("should enforce the required scope", func() {
			req.Header.Set("Authorization", "Bearer good")

			auth.RequireScope(middleware.ScopeAdmin, next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(reached).To(BeFalse())

			validator.ValidateReturns(jwt.MapClaims{"sub": "ops", "scope": middleware.ScopeAdmin}, nil)
			w = httptest.NewRecorder()
			auth.RequireScope(middleware.ScopeAdmin, next).ServeHTTP(w, req)
			Expect(reached).To(BeTrue())
		})
	})
})
