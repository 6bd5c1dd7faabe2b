package api

import (
	"net/http"
	"parcel-scheduling-service/internal/api/handlers"
	"parcel-scheduling-service/internal/metrics"
	"parcel-scheduling-service/internal/ports"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.FleetRepository, depot string) http.Handler {
	mux := http.NewServeMux()

	parcelHandler := &handlers.ParcelHandler{Repo: repo}
	experimentHandler := &handlers.ExperimentHandler{
		Repo:         repo,
		DefaultDepot: depot,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/parcels", parcelHandler.List)
	mux.HandleFunc("/experiments", experimentHandler.Run)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
