package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/navigator"
	"github.com/katalvlaran/campusnav/route"
)

// NodeJSON is one place on the map.
type NodeJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NodesResponse is the body of GET /api/nodes and GET /api/reachable/{id}.
type NodesResponse struct {
	From  *NodeJSON  `json:"from,omitempty"`
	Nodes []NodeJSON `json:"nodes"`
	Count int        `json:"count"`
}

// RouteResponse is the body of GET /api/route.
type RouteResponse struct {
	Found         bool       `json:"found"`
	From          NodeJSON   `json:"from"`
	To            NodeJSON   `json:"to"`
	Path          []NodeJSON `json:"path,omitempty"`
	TotalDistance int64      `json:"total_distance"`
	Unit          string     `json:"unit"`
	Algorithm     string     `json:"algorithm"`
	Text          string     `json:"text"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	nodes := toNodeJSON(s.nav.Nodes())
	s.writeJSON(w, r, http.StatusOK, NodesResponse{Nodes: nodes, Count: len(nodes)})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		s.writeError(w, r, http.StatusBadRequest, errors.New("query parameters from and to are required"))
		return
	}

	algo := string(s.nav.Algorithm())
	start := time.Now()
	res, err := s.nav.Route(from, to)
	s.metrics.queryDuration.WithLabelValues(algo).Observe(time.Since(start).Seconds())
	switch {
	case errors.Is(err, navigator.ErrInvalidNodeID):
		s.metrics.queries.WithLabelValues(algo, "invalid").Inc()
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	case err != nil:
		s.metrics.queries.WithLabelValues(algo, "error").Inc()
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.metrics.queries.WithLabelValues(algo, res.Status.String()).Inc()
	s.metrics.relaxations.Observe(float64(res.Stats.Relaxations))

	s.writeJSON(w, r, http.StatusOK, s.routeResponse(res, algo))
}

func (s *Server) routeResponse(res route.Result, algo string) RouteResponse {
	out := RouteResponse{
		Found:         res.Found(),
		From:          NodeJSON{ID: res.Source, Label: res.SourceLabel},
		To:            NodeJSON{ID: res.Destination, Label: res.DestinationLabel},
		TotalDistance: res.TotalDistance,
		Unit:          s.nav.Unit(),
		Algorithm:     algo,
		Text:          s.nav.FormatResult(res),
	}
	for _, id := range res.Path {
		v, err := s.nav.Node(id)
		if err != nil {
			v = core.Vertex{ID: id, Label: id}
		}
		out.Path = append(out.Path, NodeJSON{ID: v.ID, Label: v.Label})
	}

	return out
}

func (s *Server) handleReachable(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	start, err := s.nav.Node(id)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	places, err := s.nav.Reachable(start.ID)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	nodes := toNodeJSON(places)
	s.writeJSON(w, r, http.StatusOK, NodesResponse{
		From:  &NodeJSON{ID: start.ID, Label: start.Label},
		Nodes: nodes,
		Count: len(nodes),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func toNodeJSON(vs []core.Vertex) []NodeJSON {
	out := make([]NodeJSON, 0, len(vs))
	for _, v := range vs {
		out = append(out, NodeJSON{ID: v.ID, Label: v.Label})
	}

	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn("write response",
			slog.String("request_id", RequestID(r.Context())), slog.Any("err", err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	s.writeJSON(w, r, code, ErrorResponse{Error: err.Error(), RequestID: RequestID(r.Context())})
}
