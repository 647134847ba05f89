package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
)

// maxBodyBytes bounds POST /bundles payloads.
const maxBodyBytes = 1 << 20

// Handler serves bundle generation requests. Every request builds its own
// random source through scenario.Generate, so handlers share no state.
type Handler struct {
	base scenario.Config
}

// NewHandler creates a Handler whose POST overrides apply on top of base.
func NewHandler(base scenario.Config) *Handler {
	return &Handler{base: base}
}

type scenarioSummary struct {
	Name   string          `json:"name"`
	Config scenario.Config `json:"config"`
}

// ListScenarios returns every preset with its parameters.
func (h *Handler) ListScenarios(w http.ResponseWriter, _ *http.Request) {
	names := scenario.PresetNames()
	out := make([]scenarioSummary, 0, len(names))
	for _, name := range names {
		cfg, err := scenario.Preset(name)
		if err != nil {
			internalError(w)
			return
		}
		out = append(out, scenarioSummary{Name: name, Config: cfg})
	}
	ok(w, out)
}

// GetScenario returns one preset's parameters.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	cfg, err := scenario.Preset(name)
	if err != nil {
		h.writeGenerateError(w, err)
		return
	}
	ok(w, scenarioSummary{Name: name, Config: cfg})
}

// GenerateScenarioBundle generates a bundle from a preset.
//
// Query params:
//
//	seed: unsigned 64-bit seed; omitted means a fresh random seed
func (h *Handler) GenerateScenarioBundle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	cfg, err := scenario.Preset(name)
	if err != nil {
		h.writeGenerateError(w, err)
		return
	}

	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			badRequest(w, "INVALID_PARAM", "seed must be an unsigned 64-bit integer")
			return
		}
		cfg = cfg.WithSeed(seed)
	}

	h.generate(w, cfg, http.StatusOK)
}

// GenerateBundle decodes a partial Config and generates a bundle from it.
// Fields missing from the body keep the server's configured values.
func (h *Handler) GenerateBundle(w http.ResponseWriter, r *http.Request) {
	cfg := h.base
	if h.base.Seed != nil {
		cfg = cfg.WithSeed(*h.base.Seed)
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		badRequest(w, "INVALID_JSON", fmt.Sprintf("request body must be a scenario config: %v", err))
		return
	}

	h.generate(w, cfg, http.StatusCreated)
}

func (h *Handler) generate(w http.ResponseWriter, cfg scenario.Config, status int) {
	bundle, err := scenario.Generate(cfg)
	if err != nil {
		h.writeGenerateError(w, err)
		return
	}

	common.LogDebug("bundle served", common.Fields{
		"bundle_id": bundle.ID.String(),
		"scenario":  bundle.Scenario,
		"seed":      bundle.Seed,
	})

	if status == http.StatusCreated {
		created(w, bundle)
		return
	}
	ok(w, bundle)
}

func (h *Handler) writeGenerateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrUnknownScenario):
		notFound(w, err.Error())
	case common.IsCallerError(err):
		badRequest(w, "INVALID_SCENARIO", err.Error())
	default:
		common.LogError(err, "bundle generation failed", nil)
		internalError(w)
	}
}
