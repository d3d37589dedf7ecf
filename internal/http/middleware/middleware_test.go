package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/middleware"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

var _ = Describe("Middleware", func() {
	var router *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		router.Use(middleware.Recovery(), middleware.Logger())
	})

	Describe("RequireActor", func() {
		var seen middleware.Actor

		BeforeEach(func() {
			seen = middleware.Actor{}
			router.GET("/me", middleware.RequireActor(), func(c *gin.Context) {
				seen, _ = middleware.GetActor(c.Request.Context())
				c.Status(http.StatusOK)
			})
		})

		serve := func(headers map[string]string) int {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for k, v := range headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w.Code
		}

		It("rejects requests without identity headers", func() {
			Expect(serve(nil)).To(Equal(http.StatusUnauthorized))
		})

		It("rejects non-positive ids", func() {
			Expect(serve(map[string]string{middleware.HeaderUserID: "0"})).To(Equal(http.StatusUnauthorized))
		})

		It("resolves an internal user as an internal reviewer", func() {
			Expect(serve(map[string]string{middleware.HeaderUserID: "7"})).To(Equal(http.StatusOK))
			Expect(*seen.UserID).To(Equal(int64(7)))

			reviewer, ok := seen.Reviewer()
			Expect(ok).To(BeTrue())
			Expect(reviewer).To(Equal(model.InternalReviewer(7)))
		})

		It("prefers the external reviewer identity for review actions", func() {
			Expect(serve(map[string]string{
				middleware.HeaderUserID:             "7",
				middleware.HeaderExternalReviewerID: "9",
			})).To(Equal(http.StatusOK))

			reviewer, _ := seen.Reviewer()
			Expect(reviewer).To(Equal(model.ExternalReviewerRef(9)))
		})
	})

	Describe("Recovery", func() {
		It("turns a panic into a 500", func() {
			router.GET("/panic", func(c *gin.Context) {
				panic("boom")
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
