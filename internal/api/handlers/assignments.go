package handlers

import (
	"net/http"
	"strings"
	"time"

	"shipment-pooling-service/internal/api/dto"
	"shipment-pooling-service/internal/domain"
	"shipment-pooling-service/internal/engine"
	"shipment-pooling-service/internal/ports"
)

type AssignmentHandler struct {
	Shipments ports.ShipmentRepository
	Carriers  ports.CarrierRepository
	Locations ports.CarrierLocationCache
	Config    engine.Config
}

// Assign matches a single shipment directly against available carriers,
// bypassing pooling. No eligible carrier is a normal outcome and is
// reported in the response body, not as an HTTP error.
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AssignmentRequest
	defer r.Body.Close()
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.ShipmentID) == "" {
		writeError(w, r, http.StatusBadRequest, "shipment_id is required")
		return
	}

	depart := time.Now()
	if req.DepartAt != nil {
		depart = *req.DepartAt
	}

	shipments, err := h.Shipments.ListPending(r.Context())
	if err != nil {
		writeDomainError(w, r, "assign shipment", err)
		return
	}
	var shipment *domain.Shipment
	for i := range shipments {
		if shipments[i].ID == req.ShipmentID {
			shipment = &shipments[i]
			break
		}
	}
	if shipment == nil {
		writeError(w, r, http.StatusNotFound, "shipment not found")
		return
	}

	carriers, _, err := availableCarriers(r.Context(), h.Carriers, h.Locations)
	if err != nil {
		writeDomainError(w, r, "assign shipment", err)
		return
	}

	plan, err := engine.BuildPlan([]domain.Shipment{*shipment}, carriers, depart, nil, h.Config)
	if err != nil {
		writeDomainError(w, r, "assign shipment", err)
		return
	}

	if len(plan.Matches) == 0 {
		writeJSON(w, r, http.StatusOK, dto.AssignmentResponse{
			Assigned: false,
			Reason:   "no carrier met the eligibility threshold",
		})
		return
	}

	m := matchResponse(plan.Matches[0])
	writeJSON(w, r, http.StatusOK, dto.AssignmentResponse{
		Assigned: true,
		Match:    &m,
	})
}
