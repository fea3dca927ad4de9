package api

import (
	"net/http"

	"shipment-pooling-service/internal/api/handlers"
	"shipment-pooling-service/internal/engine"
	"shipment-pooling-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters). locations may be nil when telemetry is disabled.
func NewRouter(
	shipments ports.ShipmentRepository,
	carriers ports.CarrierRepository,
	locations ports.CarrierLocationCache,
	scorer engine.PairScorer,
	cfg engine.Config,
) http.Handler {
	mux := http.NewServeMux()

	shipmentHandler := &handlers.ShipmentHandler{Repo: shipments}
	carrierHandler := &handlers.CarrierHandler{Repo: carriers, Locations: locations}
	planHandler := &handlers.PlanHandler{
		Shipments: shipments,
		Carriers:  carriers,
		Locations: locations,
		Scorer:    scorer,
		Config:    cfg,
	}
	assignmentHandler := &handlers.AssignmentHandler{
		Shipments: shipments,
		Carriers:  carriers,
		Locations: locations,
		Config:    cfg,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/shipments", shipmentHandler.List)
	mux.HandleFunc("/carriers", carrierHandler.List)
	mux.HandleFunc("/carriers/location", carrierHandler.Location)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/assignments", assignmentHandler.Assign)

	return loggingMiddleware(mux)
}
