// Package main implements a mock marketplace backend for local development.
// It serves battery, vehicle and listing records from a JSON fixture in the
// response envelopes the real backend uses, and keeps listing and catalog
// mutations in memory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

type fixture struct {
	Batteries []map[string]any `json:"batteries"`
	Vehicles  []map[string]any `json:"vehicles"`
	Listings  []map[string]any `json:"listings"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/marketplace.json", "path to marketplace fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture",
		"batteries", len(fx.Batteries),
		"vehicles", len(fx.Vehicles),
		"listings", len(fx.Listings),
	)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock marketplace server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newBackend(logger, fx).routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// backend holds the fixture records in memory.
type backend struct {
	logger *slog.Logger

	mu        sync.Mutex
	batteries []map[string]any
	vehicles  []map[string]any
	listings  []map[string]any
}

func newBackend(logger *slog.Logger, fx *fixture) *backend {
	return &backend{
		logger:    logger,
		batteries: fx.Batteries,
		vehicles:  fx.Vehicles,
		listings:  fx.Listings,
	}
}

// collection returns the catalog slice for kind. Callers hold mu.
func (b *backend) collection(kind string) *[]map[string]any {
	if kind == "vehicle" {
		return &b.vehicles
	}
	return &b.batteries
}

// newID returns the first unused id after the collection's length.
// Callers hold mu.
func newID(prefix string, records []map[string]any) string {
	n := len(records) + 1
	for find(records, prefix+strconv.Itoa(n), "id") != nil {
		n++
	}
	return prefix + strconv.Itoa(n)
}

func (b *backend) routes() http.Handler {
	mux := http.NewServeMux()
	// Each collection answers in a different envelope, as the real backend does.
	mux.HandleFunc("GET /api/Battery/all", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"isSuccess": true, "result": b.batteries})
	})
	mux.HandleFunc("GET /api/Vehicle/GetAll", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"result": b.vehicles}})
	})
	mux.HandleFunc("GET /api/Listing/all", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.listings)
	})

	mux.HandleFunc("GET /api/Battery/GetById/{id}", b.getByID("battery", "id", "batteryId"))
	mux.HandleFunc("GET /api/Vehicle/GetById/{id}", b.getByID("vehicle", "id", "vehicleId", "_id"))
	mux.HandleFunc("GET /api/Listing/GetByListingById/{id}", b.getListing)

	mux.HandleFunc("POST /api/Listing/create", b.createListing)
	mux.HandleFunc("PUT /api/Listing/update/{id}", b.updateListing)
	mux.HandleFunc("DELETE /api/Listing/delete/{id}", b.deleteListing)

	// Catalog paths are capitalized inconsistently upstream.
	mux.HandleFunc("POST /api/Battery/Create", b.createEntity("battery", "b"))
	mux.HandleFunc("PUT /api/Battery/update/{id}", b.updateEntity("battery"))
	mux.HandleFunc("DELETE /api/Battery/delete/{id}", b.deleteEntity("battery"))
	mux.HandleFunc("PUT /api/Battery/Approve/{id}", b.approveEntity("battery"))
	mux.HandleFunc("POST /api/Vehicle/Create", b.createEntity("vehicle", "v"))
	mux.HandleFunc("PUT /api/Vehicle/Update/{id}", b.updateEntity("vehicle"))
	mux.HandleFunc("DELETE /api/Vehicle/Delete/{id}", b.deleteEntity("vehicle"))
	mux.HandleFunc("PUT /api/Vehicle/Approve/{id}", b.approveEntity("vehicle"))

	mux.HandleFunc("HEAD /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (b *backend) getByID(kind string, keys ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		b.mu.Lock()
		defer b.mu.Unlock()
		if rec := find(*b.collection(kind), id, keys...); rec != nil {
			writeJSON(w, http.StatusOK, map[string]any{"isSuccess": true, "result": rec})
			return
		}
		writeFailure(w, http.StatusNotFound, kind+" "+id+" not found")
	}
}

func (b *backend) getListing(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	if rec := find(b.listings, id, "id"); rec != nil {
		writeJSON(w, http.StatusOK, map[string]any{"isSuccess": true, "result": rec})
		return
	}
	writeFailure(w, http.StatusNotFound, "listing "+id+" not found")
}

// decodeListing accepts the composed payload, which is a one-element array.
func decodeListing(r *http.Request) (map[string]any, error) {
	var payload []map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	if len(payload) != 1 {
		return nil, fmt.Errorf("expected one listing, got %d", len(payload))
	}
	return payload[0], nil
}

func (b *backend) createListing(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeListing(r)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	rec["id"] = newID("l", b.listings)
	b.listings = append(b.listings, rec)
	b.mu.Unlock()

	b.logger.Info("created listing", "id", rec["id"], "title", rec["title"])
	writeJSON(w, http.StatusOK, map[string]any{"isSuccess": true, "result": rec})
}

func (b *backend) updateListing(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rec, err := decodeListing(r)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, l := range b.listings {
		if l["id"] == id {
			rec["id"] = id
			b.listings[i] = rec
			b.logger.Info("updated listing", "id", id)
			writeJSON(w, http.StatusOK, map[string]any{"isSuccess": true, "result": rec})
			return
		}
	}
	writeFailure(w, http.StatusNotFound, "listing "+id+" not found")
}

func (b *backend) deleteListing(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, l := range b.listings {
		if l["id"] == id {
			b.listings = append(b.listings[:i], b.listings[i+1:]...)
			b.logger.Info("deleted listing", "id", id)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeFailure(w, http.StatusNotFound, "listing "+id+" not found")
}

func (b *backend) createEntity(kind, prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := decodeListing(r)
		if err != nil {
			writeFailure(w, http.StatusBadRequest, err.Error())
			return
		}

		b.mu.Lock()
		records := b.collection(kind)
		rec["id"] = newID(prefix, *records)
		rec["isApproved"] = false
		*records = append(*records, rec)
		b.mu.Unlock()

		b.logger.Info("created "+kind, "id", rec["id"])
		writeJSON(w, http.StatusOK, map[string]any{"isSuccess": true, "result": rec})
	}
}

// updateEntity takes a bare object, unlike create.
func (b *backend) updateEntity(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var rec map[string]any
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil || rec == nil {
			writeFailure(w, http.StatusBadRequest, "decoding payload: expected an object")
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		records := *b.collection(kind)
		for i, e := range records {
			if e["id"] == id {
				rec["id"] = id
				rec["isApproved"] = e["isApproved"]
				records[i] = rec
				b.logger.Info("updated "+kind, "id", id)
				writeJSON(w, http.StatusOK, map[string]any{"isSuccess": true, "result": rec})
				return
			}
		}
		writeFailure(w, http.StatusNotFound, kind+" "+id+" not found")
	}
}

func (b *backend) deleteEntity(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		b.mu.Lock()
		defer b.mu.Unlock()
		records := b.collection(kind)
		for i, e := range *records {
			if e["id"] == id {
				*records = append((*records)[:i], (*records)[i+1:]...)
				b.logger.Info("deleted "+kind, "id", id)
				writeJSON(w, http.StatusOK, map[string]any{"isSuccess": true})
				return
			}
		}
		writeFailure(w, http.StatusNotFound, kind+" "+id+" not found")
	}
}

func (b *backend) approveEntity(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		b.mu.Lock()
		defer b.mu.Unlock()
		if rec := find(*b.collection(kind), id, "id"); rec != nil {
			rec["isApproved"] = true
			b.logger.Info("approved "+kind, "id", id)
			writeJSON(w, http.StatusOK, map[string]any{"isSuccess": true, "result": rec})
			return
		}
		writeFailure(w, http.StatusNotFound, kind+" "+id+" not found")
	}
}

func find(records []map[string]any, id string, keys ...string) map[string]any {
	for _, rec := range records {
		for _, k := range keys {
			if v, ok := rec[k].(string); ok && v == id {
				return rec
			}
		}
	}
	return nil
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"isSuccess": false, "errorMessage": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
