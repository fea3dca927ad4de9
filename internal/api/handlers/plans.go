package handlers

import (
	"net/http"
	"time"

	"shipment-pooling-service/internal/api/dto"
	"shipment-pooling-service/internal/engine"
	"shipment-pooling-service/internal/ports"
)

type PlanHandler struct {
	Shipments ports.ShipmentRepository
	Carriers  ports.CarrierRepository
	Locations ports.CarrierLocationCache
	Scorer    engine.PairScorer
	Config    engine.Config
}

// Plan runs one pooling-and-matching pass over the current snapshot of
// pending shipments and available carriers. The request may override a few
// engine knobs for what-if planning; overrides apply to this run only.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest
	defer r.Body.Close()
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	cfg := h.Config
	if req.MaxPoolSize != 0 {
		if req.MaxPoolSize < 1 || req.MaxPoolSize > 10 {
			writeError(w, r, http.StatusBadRequest, "max_pool_size must be between 1 and 10")
			return
		}
		cfg.MaxPoolSize = req.MaxPoolSize
	}
	if req.MinPairScore != 0 {
		if req.MinPairScore < 0 || req.MinPairScore > 1 {
			writeError(w, r, http.StatusBadRequest, "min_pair_score must be between 0 and 1")
			return
		}
		cfg.MinPairScore = req.MinPairScore
	}

	depart := time.Now()
	if req.DepartAt != nil {
		depart = *req.DepartAt
	}

	shipments, err := h.Shipments.ListPending(r.Context())
	if err != nil {
		writeDomainError(w, r, "build plan", err)
		return
	}
	carriers, _, err := availableCarriers(r.Context(), h.Carriers, h.Locations)
	if err != nil {
		writeDomainError(w, r, "build plan", err)
		return
	}

	scorer := h.Scorer
	if req.MaxPoolSize != 0 || req.MinPairScore != 0 {
		// Per-request overrides need a scorer built from the adjusted
		// config, not the process-wide one.
		scorer = nil
	}
	plan, err := engine.BuildPlan(shipments, carriers, depart, scorer, cfg)
	if err != nil {
		writeDomainError(w, r, "build plan", err)
		return
	}

	res := dto.PlanResponse{
		Pools:   make([]dto.PoolResponse, 0, len(plan.Pools)),
		Matches: make([]dto.MatchResponse, 0, len(plan.Matches)),
		Summary: dto.PlanSummaryResponse{
			TotalShipments:         plan.Summary.TotalShipments,
			TotalPools:             plan.Summary.TotalPools,
			AveragePoolSize:        plan.Summary.AveragePoolSize,
			MatchedPools:           plan.Summary.MatchedPools,
			UnmatchedPools:         plan.Summary.UnmatchedPools,
			TotalDistanceKm:        plan.Summary.TotalDistanceKm,
			TotalTravelTimeHours:   plan.Summary.TotalTravelTimeHours,
			AverageEfficiencyScore: plan.Summary.AverageEfficiencyScore,
		},
	}
	for _, p := range plan.Pools {
		res.Pools = append(res.Pools, dto.PoolResponse{
			PoolID:                 p.ID,
			ShipmentIDs:            p.ShipmentIDs(),
			TotalWeightKg:          p.TotalWeightKg,
			PickupCentroid:         coordinateResponse(p.PickupCentroid),
			DropCentroid:           coordinateResponse(p.DropCentroid),
			BearingDeg:             p.BearingDeg,
			RouteDistanceKm:        p.RouteDistanceKm,
			EstimatedTravelMinutes: p.EstimatedTravelMinutes,
			EfficiencyScore:        p.EfficiencyScore,
		})
	}
	for _, m := range plan.Matches {
		res.Matches = append(res.Matches, matchResponse(m))
	}

	writeJSON(w, r, http.StatusOK, res)
}
