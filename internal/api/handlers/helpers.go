package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"shipment-pooling-service/internal/api/dto"
	"shipment-pooling-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps engine validation failures to 400 and everything
// else to 500. Internal details never leak to clients; operators get the
// full error in the log line.
func writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("%s failed: %v", op, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// decodeStrict decodes a single JSON object, rejecting unknown fields and
// trailing content.
func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

func coordinateResponse(c domain.Coordinate) dto.CoordinateResponse {
	return dto.CoordinateResponse{Latitude: c.Latitude, Longitude: c.Longitude}
}

func matchResponse(m domain.Match) dto.MatchResponse {
	return dto.MatchResponse{
		PoolID:               m.PoolID,
		CarrierID:            m.CarrierID,
		Score:                m.Score,
		Reasons:              m.Reasons,
		EstimatedTimeMinutes: m.EstimatedTimeMinutes,
	}
}
