// Package server exposes the yard over HTTP: topology queries, loco-only
// shortest paths, and blocking-unaware distance diagnostics.
//
// The facade reuses the layout graph and the plain shortest-path routine
// only; it never invokes the shunting solver. Everything served here is a
// read-only view over structures that are immutable after startup, so the
// handlers need no locking.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Kantarellen1/TrainSystemNL/distance"
	"github.com/Kantarellen1/TrainSystemNL/layout"
	"github.com/Kantarellen1/TrainSystemNL/render"
)

// YardHandler serves the read-only yard endpoints.
type YardHandler struct {
	graph *layout.Graph
	table *distance.Table
}

// NewYardHandler binds the handler to an immutable graph and its table.
func NewYardHandler(graph *layout.Graph, table *distance.Table) *YardHandler {
	return &YardHandler{graph: graph, table: table}
}

// RegisterRoutes attaches the yard endpoints to router.
func (h *YardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/topology", h.Topology).Methods("GET")
	router.HandleFunc("/api/route", h.Route).Methods("GET")
	router.HandleFunc("/api/distance", h.Distance).Methods("GET")
}

// topologyResponse is the JSON shape of the adjacency dump.
type topologyResponse struct {
	Nodes   []string            `json:"nodes"`
	Edges   map[string][]string `json:"edges"`
	Sidings map[string]int      `json:"sidings"`
}

// routeResponse is the JSON shape of a loco-only shortest path.
type routeResponse struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Path []string `json:"path"`
	Hops int      `json:"hops"`
}

// Topology returns the full node list and adjacency of the yard.
func (h *YardHandler) Topology(w http.ResponseWriter, r *http.Request) {
	nodes := h.graph.Nodes()
	edges := make(map[string][]string, len(nodes))
	for _, id := range nodes {
		edges[id] = h.graph.Neighbors(id)
	}
	writeJSON(w, http.StatusOK, topologyResponse{
		Nodes:   nodes,
		Edges:   edges,
		Sidings: h.graph.Sidings(),
	})
}

// Route serves GET /api/route?from=<node>&to=<node>: one shortest node
// sequence for the loco alone, ignoring all cars.
func (h *YardHandler) Route(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to query parameters are required")
		return
	}

	path, err := distance.Path(h.graph, from, to)
	switch {
	case errors.Is(err, distance.ErrNodeNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, distance.ErrNoPath):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, routeResponse{
		From: from,
		To:   to,
		Path: path,
		Hops: len(path) - 1,
	})
}

// Distance serves GET /api/distance?car=<id>&from=<node>&goals=<n1,n2,…>:
// the blocking-unaware hop count from a node to the nearest goal node.
func (h *YardHandler) Distance(w http.ResponseWriter, r *http.Request) {
	car := r.URL.Query().Get("car")
	from := r.URL.Query().Get("from")
	goalsParam := r.URL.Query().Get("goals")
	if from == "" || goalsParam == "" {
		writeError(w, http.StatusBadRequest, "from and goals query parameters are required")
		return
	}
	if !h.graph.HasNode(from) {
		writeError(w, http.StatusNotFound, "unknown node "+from)
		return
	}
	goals := strings.Split(goalsParam, ",")
	for _, id := range goals {
		if !h.graph.HasNode(id) {
			writeError(w, http.StatusNotFound, "unknown node "+id)
			return
		}
	}

	d := h.table.MinTo(from, goals)
	writeJSON(w, http.StatusOK, render.Diagnostic(car, from, d))
}

// errorResponse is the JSON error envelope shared by all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
