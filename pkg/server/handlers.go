package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/chartstyle/pkg/buildinfo"
	"github.com/matzehuels/chartstyle/pkg/cache"
	"github.com/matzehuels/chartstyle/pkg/config"
	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/palette"
	"github.com/matzehuels/chartstyle/pkg/render/sink"
	"github.com/matzehuels/chartstyle/pkg/style"
)

const (
	contentJSON = "application/json"
	contentSVG  = "image/svg+xml"
)

// PaletteResponse describes one palette.
type PaletteResponse struct {
	Name   string          `json:"name"`
	Colors []palette.Color `json:"colors"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Current()})
}

func (s *Server) handlePalettes(w http.ResponseWriter, _ *http.Request) {
	names := s.registry.Names()
	out := make([]PaletteResponse, 0, len(names))
	for _, name := range names {
		p, err := s.registry.Lookup(name)
		if err != nil {
			continue
		}
		out = append(out, PaletteResponse{Name: p.Name(), Colors: p.Colors()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	count := -1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "count must be a non-negative integer, got %q", raw))
			return
		}
		count = n
	}

	s.serveCached(w, r, s.keyer.PaletteKey(name, count), contentJSON, func() ([]byte, error) {
		p, err := s.registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		colors := p.Colors()
		if count >= 0 {
			colors = p.Head(count)
		}
		data, err := json.Marshal(PaletteResponse{Name: p.Name(), Colors: colors})
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	})
}

// resolveParams are the query parameters of POST /resolve.
type resolveParams struct {
	format   string
	encoding style.Encoding
	ix       style.Interaction
}

func parseResolveParams(r *http.Request) (resolveParams, error) {
	q := r.URL.Query()
	p := resolveParams{
		format:   q.Get("format"),
		encoding: style.EncodingBar,
		ix:       style.Interaction{SelectedKey: q.Get("select"), HighlightedKey: q.Get("highlight")},
	}
	switch p.format {
	case "":
		p.format = "json"
	case "json", "svg":
	default:
		return p, errors.New(errors.ErrCodeInvalidInput, "format must be json or svg, got %q", p.format)
	}
	if raw := q.Get("encoding"); raw != "" {
		enc, err := style.ParseEncoding(raw)
		if err != nil {
			return p, err
		}
		p.encoding = enc
	}
	return p, nil
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	params, err := parseResolveParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	isJSON, input := false, "toml"
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == contentJSON {
		isJSON, input = true, "json"
	}

	key := s.keyer.ResolveKey(body, cache.ResolveKeyOpts{
		Format:      input + ">" + params.format,
		Encoding:    string(params.encoding),
		Selected:    params.ix.SelectedKey,
		Highlighted: params.ix.HighlightedKey,
	})
	contentType := contentJSON
	if params.format == "svg" {
		contentType = contentSVG
	}
	s.serveCached(w, r, key, contentType, func() ([]byte, error) {
		return s.resolve(body, isJSON, params)
	})
}

// serveCached answers from the cache when possible, otherwise runs build
// and caches its result. Failed builds are never cached; cache errors only
// degrade to a miss.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, key, contentType string, build func() ([]byte, error)) {
	ctx := r.Context()
	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		w.Header().Set("X-Cache", "HIT")
		writeBytes(w, http.StatusOK, contentType, data)
		return
	} else if err != nil {
		s.logger.Warn("cache get failed", "err", err, "request_id", RequestID(ctx))
	}

	data, err := build()
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("cache set failed", "err", err, "request_id", RequestID(ctx))
	}
	w.Header().Set("X-Cache", "MISS")
	writeBytes(w, http.StatusOK, contentType, data)
}

func (s *Server) resolve(body []byte, isJSON bool, p resolveParams) ([]byte, error) {
	parse := config.Parse
	if isJSON {
		parse = config.ParseJSON
	}
	cfg, err := parse(body)
	if err != nil {
		return nil, err
	}
	styler, err := cfg.Styler(s.registry)
	if err != nil {
		return nil, err
	}
	a := styler.Allocator()
	for _, k := range []string{p.ix.SelectedKey, p.ix.HighlightedKey} {
		if k == "" {
			continue
		}
		if _, err := a.Column(k); err != nil {
			return nil, err
		}
	}

	cols, err := cfg.Sources(styler).ResolveAll(a.Keys(), p.encoding, p.ix)
	if err != nil {
		return nil, err
	}
	if p.format == "svg" {
		return sink.RenderSVG(cols), nil
	}
	return sink.RenderJSON(cols,
		sink.WithJSONPalette(a.Palette().Name()),
		sink.WithJSONEncoding(p.encoding),
		sink.WithJSONInteraction(p.ix),
	)
}
