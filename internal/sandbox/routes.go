// Package sandbox serves a seeded stand-in for the partner API, so the
// export and update tools can run end to end without live credentials.
package sandbox

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mihalio25/yandex-market-partner-api/internal/config"
)

func AddRoutes(router chi.Router, store *Store, conf *config.SandboxBinConfig, metrics *Metrics) {
	prefix := strings.TrimRight(conf.RoutePrefix, "/")
	pageSize := conf.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	router.Use(logRequest())
	router.Use(TraceMiddleware)
	router.Use(MetricsMiddleware(metrics))

	router.Method(http.MethodGet, "/metrics", metrics.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Route(prefix+"/campaigns", func(r chi.Router) {
		r.Use(AuthenticateMiddleware())
		r.Use(SetContentType)

		r.Get("/", getCampaignsHandler(store))

		r.Route("/{campaignID}", func(r chi.Router) {
			r.Get("/", getCampaignHandler(store))
			r.Get("/settings", getCampaignSettingsHandler(store))

			r.Get("/orders", listOrdersHandler(store))
			r.Route("/orders/{orderID}", func(r chi.Router) {
				r.Get("/", getOrderHandler(store))
				r.Put("/status", updateOrderStatusHandler(store))
				r.Get("/buyer", getOrderBuyerHandler(store))
			})

			r.Post("/offers", campaignOffersHandler(store, pageSize))
			r.Get("/offer-prices", offerPricesHandler(store, pageSize))
			r.Post("/offer-prices/updates", updatePricesHandler(store))

			r.Post("/offers/stocks", stocksHandler(store, pageSize))
			r.Put("/offers/stocks", updateStocksHandler(store))

			r.Get("/hidden-offers", hiddenOffersHandler(store, pageSize))
			r.Post("/hidden-offers", addHiddenOffersHandler(store))
			r.Post("/hidden-offers/delete", deleteHiddenOffersHandler(store))
		})
	})

	router.Route(prefix+"/businesses/{businessID}", func(r chi.Router) {
		r.Use(AuthenticateMiddleware())
		r.Use(SetContentType)

		r.Post("/offer-mappings", offerMappingsHandler(store, pageSize))
		r.Post("/offer-mappings/update", updateOfferMappingsHandler(store))
		r.Post("/offer-prices/updates", updateBusinessPricesHandler(store))
		r.Post("/settings", businessSettingsHandler(store))
	})

	router.Route(prefix+"/reports", func(r chi.Router) {
		r.Use(AuthenticateMiddleware())

		r.With(SetContentType).Post("/{reportType}/generate", generateReportHandler(store, metrics))
		r.With(SetContentType).Get("/info/{reportID}", reportInfoHandler(store, prefix))

		// report files skip SetContentType, they are csv downloads
		r.Get("/files/{reportID}", reportFileHandler(store))
	})
}
