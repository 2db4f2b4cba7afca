package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/taskhub/internal/http/handler"
	"basegraph.app/taskhub/internal/model"
	"basegraph.app/taskhub/internal/validation"
)

var _ = Describe("UserHandler", func() {
	var (
		router *gin.Engine
		svc    *mockUserService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockUserService{}
		h := handler.NewUserHandler(svc)
		router.POST("/users", h.Create)
		router.GET("/users", h.List)
	})

	It("returns 200 with the created user", func() {
		svc.createFn = func(_ context.Context, name, email string) (*model.User, error) {
			return &model.User{ID: 1, Name: name, Email: email}, nil
		}

		body, _ := json.Marshal(map[string]string{
			"name":  "Ada",
			"email": "ada@example.com",
		})
		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"id":1,"name":"Ada","email":"ada@example.com"}`))
	})

	It("returns 400 with the field on validation failure", func() {
		svc.createFn = func(_ context.Context, _, _ string) (*model.User, error) {
			return nil, &validation.Error{Field: "email", Message: "Invalid email format"}
		}

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"name":"Ada","email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"Invalid email format","field":"email"}`))
	})

	It("returns 400 on invalid request body", func() {
		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 with an opaque message on store failure", func() {
		svc.createFn = func(_ context.Context, _, _ string) (*model.User, error) {
			return nil, errors.New("pq: connection refused")
		}

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"name":"Ada","email":"a@b.c"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).NotTo(ContainSubstring("connection refused"))
	})

	It("lists an empty table as an empty array", func() {
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`[]`))
	})
})
