package handlers

import (
	"net/http"

	"shipment-pooling-service/internal/api/dto"
	"shipment-pooling-service/internal/ports"
)

// ShipmentHandler exposes read-only shipment retrieval endpoints.
type ShipmentHandler struct {
	Repo ports.ShipmentRepository
}

func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	shipments, err := h.Repo.ListPending(r.Context())
	if err != nil {
		writeDomainError(w, r, "list shipments", err)
		return
	}

	res := dto.ListShipmentsResponse{
		Shipments: make([]dto.ShipmentResponse, 0, len(shipments)),
	}
	for _, s := range shipments {
		res.Shipments = append(res.Shipments, dto.ShipmentResponse{
			ShipmentID:          s.ID,
			Pickup:              coordinateResponse(s.Pickup),
			Drop:                coordinateResponse(s.Drop),
			WeightKg:            s.WeightKg,
			ReadyAt:             s.ReadyAt,
			DueBy:               s.DueBy,
			VehicleTypeRequired: string(s.VehicleTypeRequired),
			Priority:            string(s.Priority),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
