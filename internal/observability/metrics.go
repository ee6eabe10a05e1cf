package observability

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CategoryPagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "category_pages_total",
			Help: "Category pages processed by discovery",
		},
	)
	ProductsExtractedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "products_extracted_total",
			Help: "Product records extracted",
		},
	)
	FetchErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fetch_errors_total",
			Help: "Document fetches that failed after retries",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(CategoryPagesTotal, ProductsExtractedTotal, FetchErrorsTotal)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, nil); err != nil {
			slog.Error("metrics server stopped", "port", port, "error", err)
		}
	}()
}
