package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/metroroute/pkg/buildinfo"
	merrors "github.com/matzehuels/metroroute/pkg/errors"
	"github.com/matzehuels/metroroute/pkg/lines"
	"github.com/matzehuels/metroroute/pkg/render"
)

// =============================================================================
// Responses
// =============================================================================

type healthResponse struct {
	Status      string         `json:"status"`
	Network     string         `json:"network"`
	Stations    int            `json:"stations"`
	Connections int            `json:"connections"`
	LoadedAt    time.Time      `json:"loaded_at"`
	Build       buildinfo.Info `json:"build"`
}

type stationResponse struct {
	Name      string   `json:"name"`
	Lines     []string `json:"lines"`
	Neighbors int      `json:"neighbors"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Code: code, Error: msg})
}

// writeErr maps a coded error to an HTTP status.
func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch merrors.GetCode(err) {
	case merrors.ErrCodeUnknownStation:
		status = http.StatusNotFound
	case merrors.ErrCodeTrivialQuery, merrors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case merrors.ErrCodeNoRoute:
		status = http.StatusUnprocessableEntity
	case merrors.ErrCodeInvalidNetwork, merrors.ErrCodeFileNotFound, merrors.ErrCodeInvalidFormat:
		status = http.StatusServiceUnavailable
	}
	code := string(merrors.GetCode(err))
	if code == "" {
		code = string(merrors.ErrCodeInternal)
	}
	writeError(w, status, code, merrors.UserMessage(err))
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	p := s.Planner()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Network:     p.Name(),
		Stations:    p.Graph().StationCount(),
		Connections: p.Graph().ConnectionCount(),
		LoadedAt:    time.Unix(s.loadedAt.Load(), 0).UTC(),
		Build:       buildinfo.Get(),
	})
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	p := s.Planner()
	ids := p.Graph().Stations()
	out := make([]stationResponse, 0, len(ids))
	for _, id := range ids {
		st, _ := p.Graph().Station(id)
		ls := p.Lines().LinesOf(id)
		if ls == nil {
			ls = []string{}
		}
		out = append(out, stationResponse{Name: id, Lines: ls, Neighbors: st.Degree()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleReachable(w http.ResponseWriter, r *http.Request) {
	stops, err := s.Planner().Reachable(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stops)
}

func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	ls := s.Planner().Lines().Lines()
	if ls == nil {
		ls = []lines.Line{}
	}
	writeJSON(w, http.StatusOK, ls)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		writeError(w, http.StatusBadRequest, string(merrors.ErrCodeInvalidInput), "from and to query parameters are required")
		return
	}
	j, err := s.Planner().Plan(r.Context(), from, to)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	p := s.Planner()
	opts := render.Options{Title: p.Name()}

	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from != "" || to != "" {
		j, err := p.Plan(r.Context(), from, to)
		if err != nil {
			writeErr(w, err)
			return
		}
		opts.Route = j.Stations
	}

	svg, err := s.renderer.Render(r.Context(), render.ToDOT(p.Graph(), p.Lines(), opts), render.FormatSVG)
	if err != nil {
		s.logger.Error("render map", "err", err, "id", RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, string(merrors.ErrCodeInternal), "render failed")
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.Reload(r.Context()); err != nil {
		if errors.Is(err, ErrReloadDisabled) {
			writeError(w, http.StatusNotImplemented, "RELOAD_DISABLED", err.Error())
			return
		}
		s.logger.Error("reload failed", "err", err)
		writeErr(w, err)
		return
	}
	p := s.Planner()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "reloaded",
		"network":  p.Name(),
		"stations": p.Graph().StationCount(),
	})
}
