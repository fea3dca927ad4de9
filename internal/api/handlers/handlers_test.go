package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shipment-pooling-service/internal/domain"
)

type fakeShipmentRepo struct {
	shipments []domain.Shipment
	err       error
}

func (f *fakeShipmentRepo) ListPending(context.Context) ([]domain.Shipment, error) {
	return f.shipments, f.err
}

type fakeCarrierRepo struct {
	carriers []domain.Carrier
	err      error
}

func (f *fakeCarrierRepo) ListAvailable(context.Context) ([]domain.Carrier, error) {
	return f.carriers, f.err
}

type fakeLocationCache struct {
	locations map[string]domain.Coordinate
}

func newFakeLocationCache() *fakeLocationCache {
	return &fakeLocationCache{locations: make(map[string]domain.Coordinate)}
}

func (f *fakeLocationCache) Upsert(_ context.Context, carrierID string, loc domain.Coordinate) error {
	f.locations[carrierID] = loc
	return nil
}

func (f *fakeLocationCache) Locations(_ context.Context, carrierIDs []string) (map[string]domain.Coordinate, error) {
	out := make(map[string]domain.Coordinate)
	for _, id := range carrierIDs {
		if loc, ok := f.locations[id]; ok {
			out[id] = loc
		}
	}
	return out, nil
}

func (f *fakeLocationCache) Remove(_ context.Context, carrierID string) error {
	delete(f.locations, carrierID)
	return nil
}

func testShipment(id string, lat, lng float64) domain.Shipment {
	return domain.Shipment{
		ID:       id,
		Pickup:   domain.Coordinate{Latitude: lat, Longitude: lng},
		Drop:     domain.Coordinate{Latitude: lat + 0.09, Longitude: lng + 0.09},
		WeightKg: 100,
	}
}

func testCarrier(id string, lat, lng float64) domain.Carrier {
	return domain.Carrier{
		ID:              id,
		CurrentLocation: domain.Coordinate{Latitude: lat, Longitude: lng},
	}
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, Health, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, Health, http.MethodPost, "/health", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestListShipments(t *testing.T) {
	ready := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	due := ready.Add(2 * time.Hour)
	s := testShipment("SHP-1", 28.6139, 77.2090)
	s.ReadyAt, s.DueBy = &ready, &due
	s.VehicleTypeRequired = domain.VehicleMedium

	h := &ShipmentHandler{Repo: &fakeShipmentRepo{shipments: []domain.Shipment{s}}}
	rec := doJSON(t, h.List, http.MethodGet, "/shipments", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var res struct {
		Shipments []struct {
			ShipmentID          string  `json:"shipment_id"`
			WeightKg            float64 `json:"weight_kg"`
			VehicleTypeRequired string  `json:"vehicle_type_required"`
			ReadyAt             string  `json:"ready_at"`
		} `json:"shipments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Shipments) != 1 || res.Shipments[0].ShipmentID != "SHP-1" {
		t.Fatalf("unexpected shipments: %+v", res.Shipments)
	}
	if res.Shipments[0].VehicleTypeRequired != "medium" {
		t.Fatalf("vehicle_type_required = %q", res.Shipments[0].VehicleTypeRequired)
	}
	if res.Shipments[0].ReadyAt == "" {
		t.Fatal("ready_at missing from response")
	}
}

func TestListCarriersOverlaysLiveLocation(t *testing.T) {
	cache := newFakeLocationCache()
	cache.locations["CARR-1"] = domain.Coordinate{Latitude: 28.70, Longitude: 77.30}

	h := &CarrierHandler{
		Repo: &fakeCarrierRepo{carriers: []domain.Carrier{
			testCarrier("CARR-1", 28.60, 77.20),
			testCarrier("CARR-2", 28.61, 77.21),
		}},
		Locations: cache,
	}
	rec := doJSON(t, h.List, http.MethodGet, "/carriers", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var res struct {
		Carriers []struct {
			CarrierID       string `json:"carrier_id"`
			CurrentLocation struct {
				Latitude float64 `json:"latitude"`
			} `json:"current_location"`
			LiveLocation bool `json:"live_location"`
		} `json:"carriers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Carriers) != 2 {
		t.Fatalf("got %d carriers, want 2", len(res.Carriers))
	}
	if !res.Carriers[0].LiveLocation || res.Carriers[0].CurrentLocation.Latitude != 28.70 {
		t.Fatalf("CARR-1 not overlaid: %+v", res.Carriers[0])
	}
	if res.Carriers[1].LiveLocation {
		t.Fatalf("CARR-2 should not be live: %+v", res.Carriers[1])
	}
}

func TestUpsertLocation(t *testing.T) {
	cache := newFakeLocationCache()
	h := &CarrierHandler{Repo: &fakeCarrierRepo{}, Locations: cache}

	body := `{"carrier_id":"CARR-1","latitude":28.6139,"longitude":77.2090}`
	rec := doJSON(t, h.Location, http.MethodPost, "/carriers/location", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if loc, ok := cache.locations["CARR-1"]; !ok || loc.Latitude != 28.6139 {
		t.Fatalf("location not stored: %+v", cache.locations)
	}
}

func TestUpsertLocationRejectsBadInput(t *testing.T) {
	h := &CarrierHandler{Repo: &fakeCarrierRepo{}, Locations: newFakeLocationCache()}

	cases := []struct {
		name string
		body string
	}{
		{"missing carrier id", `{"latitude":28.6,"longitude":77.2}`},
		{"latitude out of range", `{"carrier_id":"CARR-1","latitude":91,"longitude":77.2}`},
		{"unknown field", `{"carrier_id":"CARR-1","latitude":28.6,"longitude":77.2,"speed":40}`},
		{"trailing object", `{"carrier_id":"CARR-1","latitude":28.6,"longitude":77.2}{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, h.Location, http.MethodPost, "/carriers/location", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRemoveLocation(t *testing.T) {
	cache := newFakeLocationCache()
	cache.locations["CARR-1"] = domain.Coordinate{Latitude: 28.6, Longitude: 77.2}
	h := &CarrierHandler{Repo: &fakeCarrierRepo{}, Locations: cache}

	rec := doJSON(t, h.Location, http.MethodDelete, "/carriers/location?carrier_id=CARR-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if _, ok := cache.locations["CARR-1"]; ok {
		t.Fatal("location not removed")
	}

	rec = doJSON(t, h.Location, http.MethodDelete, "/carriers/location", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 when carrier_id missing", rec.Code)
	}
}

func TestLocationWithoutCache(t *testing.T) {
	h := &CarrierHandler{Repo: &fakeCarrierRepo{}}

	body := `{"carrier_id":"CARR-1","latitude":28.6,"longitude":77.2}`
	rec := doJSON(t, h.Location, http.MethodPost, "/carriers/location", body)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
