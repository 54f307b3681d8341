package routes

import (
	"net/http"

	"github.com/Rakhulsr/go-cart/app/handlers"
	"github.com/Rakhulsr/go-cart/app/middlewares"
	"github.com/Rakhulsr/go-cart/app/services"
	"github.com/Rakhulsr/go-cart/app/utils/logger"
	"github.com/Rakhulsr/go-cart/app/utils/renderer"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(pricing *services.PricingService, log *logger.Logger, gatherer prometheus.Gatherer) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.RequestLogMiddleware(log))

	quoteHandler := handlers.NewQuoteHandler(renderer.New(), validator.New(), pricing, log)

	router.HandleFunc("/healthz", quoteHandler.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/quote", quoteHandler.Quote).Methods(http.MethodPost)
	if gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return router
}
