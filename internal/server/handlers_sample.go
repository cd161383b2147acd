package server

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/jonathan/list-bundler/internal/sampling"
)

// sampleList is one sampled list in the API response.
type sampleList struct {
	Title string   `json:"title"`
	Path  string   `json:"path"`
	Items []string `json:"items"`
}

// sampleGroup is one group of sampled lists.
type sampleGroup struct {
	Group string       `json:"group"`
	Lists []sampleList `json:"lists"`
}

// sampleResponse is the payload of GET /api/sample.
type sampleResponse struct {
	K      int           `json:"k"`
	Groups []sampleGroup `json:"groups"`
}

// handleSample renders a fresh sample of every list. The k query parameter
// is coerced the same way the demo page coerces its input: non-numeric or
// out-of-range values fall back rather than fail.
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	k := sampling.DefaultSize
	if v := r.URL.Query().Get("k"); v != "" {
		k = sampling.ParseSize(v)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	instructions := sampling.Render(s.index.Grouped, k, rng)

	resp := sampleResponse{K: k, Groups: []sampleGroup{}}
	for _, ins := range instructions {
		switch ins.Kind {
		case sampling.GroupHeading:
			resp.Groups = append(resp.Groups, sampleGroup{Group: ins.Text, Lists: []sampleList{}})
		case sampling.ListHeading:
			g := &resp.Groups[len(resp.Groups)-1]
			g.Lists = append(g.Lists, sampleList{Title: ins.Text, Path: ins.Path, Items: []string{}})
		case sampling.Item:
			g := &resp.Groups[len(resp.Groups)-1]
			l := &g.Lists[len(g.Lists)-1]
			l.Items = append(l.Items, ins.Text)
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleLookup resolves one item name through the flat index.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	desc, ok := s.index.Lookup(name)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "name not found: "+name)
		return
	}
	s.jsonResponse(w, http.StatusOK, desc)
}
