package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bakery/internal/checkout"
	"bakery/internal/delivery"
	ordercontroller "bakery/internal/order/controller"
	"bakery/internal/product"
)

// Controllers groups the HTTP handlers. Products is nil when no catalog
// database is configured.
type Controllers struct {
	Orders   *ordercontroller.PlaceOrderController
	Checkout *checkout.Controller
	Delivery *delivery.Controller
	Products *product.Controller
}

func NewRouter(ctrls Controllers, requestTimeout time.Duration, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Post("/orders", ctrls.Orders.PlaceOrder)
		r.Post("/checkout", ctrls.Checkout.HandleCreateCheckout)
		r.Get("/delivery/{zip}", ctrls.Delivery.HandleCheckZip)

		if ctrls.Products != nil {
			r.Get("/products", ctrls.Products.HandleListProducts)
			r.Post("/products/search", ctrls.Products.HandleSearchProducts)
		}
	})

	return r
}

func accessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			if r.URL.Path == "/healthz" || r.URL.Path == "/metrics" {
				return
			}
			logger.Info("request",
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remoteAddr", r.RemoteAddr),
			)
		})
	}
}
