package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"shipment-pooling-service/internal/api/dto"
	"shipment-pooling-service/internal/domain"
	"shipment-pooling-service/internal/ports"
)

// CarrierHandler exposes carrier listing and location telemetry endpoints.
// Locations may be nil, in which case carriers are served as stored and
// telemetry endpoints report the feature as unavailable.
type CarrierHandler struct {
	Repo      ports.CarrierRepository
	Locations ports.CarrierLocationCache
}

func (h *CarrierHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	carriers, live, err := availableCarriers(r.Context(), h.Repo, h.Locations)
	if err != nil {
		writeDomainError(w, r, "list carriers", err)
		return
	}

	res := dto.ListCarriersResponse{
		Carriers: make([]dto.CarrierResponse, 0, len(carriers)),
	}
	for _, c := range carriers {
		types := make([]string, 0, len(c.VehicleTypes))
		for _, v := range c.VehicleTypes {
			types = append(types, string(v))
		}
		res.Carriers = append(res.Carriers, dto.CarrierResponse{
			CarrierID:        c.ID,
			CurrentLocation:  coordinateResponse(c.CurrentLocation),
			CapacityWeightKg: c.CapacityWeightKg,
			CurrentLoadKg:    c.CurrentLoadKg,
			ServiceRadiusKm:  c.ServiceRadiusKm,
			VehicleTypes:     types,
			TrafficAdaptive:  c.TrafficAdaptive,
			LiveLocation:     live[c.ID],
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Location accepts carrier position telemetry: POST upserts the latest
// position, DELETE marks the carrier offline.
func (h *CarrierHandler) Location(w http.ResponseWriter, r *http.Request) {
	if h.Locations == nil {
		writeError(w, r, http.StatusServiceUnavailable, "location tracking is not enabled")
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.upsertLocation(w, r)
	case http.MethodDelete:
		h.removeLocation(w, r)
	default:
		w.Header().Set("Allow", "POST, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *CarrierHandler) upsertLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.LocationUpdateRequest
	defer r.Body.Close()
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.CarrierID) == "" {
		writeError(w, r, http.StatusBadRequest, "carrier_id is required")
		return
	}
	loc := domain.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	if err := loc.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Locations.Upsert(r.Context(), req.CarrierID, loc); err != nil {
		writeDomainError(w, r, "upsert carrier location", err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *CarrierHandler) removeLocation(w http.ResponseWriter, r *http.Request) {
	carrierID := strings.TrimSpace(r.URL.Query().Get("carrier_id"))
	if carrierID == "" {
		writeError(w, r, http.StatusBadRequest, "carrier_id is required")
		return
	}

	if err := h.Locations.Remove(r.Context(), carrierID); err != nil {
		writeDomainError(w, r, "remove carrier location", err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// availableCarriers loads the carrier snapshot and overlays live telemetry
// positions on top of the stored ones. The returned map records which
// carriers were overlaid.
func availableCarriers(
	ctx context.Context,
	repo ports.CarrierRepository,
	cache ports.CarrierLocationCache,
) ([]domain.Carrier, map[string]bool, error) {
	carriers, err := repo.ListAvailable(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("available carriers: %w", err)
	}

	live := make(map[string]bool, len(carriers))
	if cache == nil || len(carriers) == 0 {
		return carriers, live, nil
	}

	ids := make([]string, 0, len(carriers))
	for _, c := range carriers {
		ids = append(ids, c.ID)
	}
	positions, err := cache.Locations(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("available carriers: %w", err)
	}

	for i := range carriers {
		if loc, ok := positions[carriers[i].ID]; ok {
			carriers[i].CurrentLocation = loc
			live[carriers[i].ID] = true
		}
	}
	return carriers, live, nil
}
