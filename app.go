package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ernestoCruz05/ligna/pkg/cabinet"
	"github.com/ernestoCruz05/ligna/pkg/engine"
	"github.com/ernestoCruz05/ligna/pkg/kernel"
	"github.com/ernestoCruz05/ligna/pkg/kernel/sdfx"
	"github.com/ernestoCruz05/ligna/pkg/library"
	"github.com/ernestoCruz05/ligna/pkg/preview"
)

// colorPalette is a default palette used to assign distinct colors to panels.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx     context.Context
	engine  *engine.Engine
	kernel  kernel.Kernel
	library *library.Library
}

// NewApp creates a new App with an engine, the sdfx kernel and the built-in
// library.
func NewApp() *App {
	return &App{
		engine:  engine.NewEngine(),
		kernel:  sdfx.New(),
		library: library.Default(),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// LoadLibrary merges the user's JSON library documents from dir on top of
// the built-in defaults. A missing directory is not an error.
func (a *App) LoadLibrary(dir string) error {
	lib, err := library.LoadDir(dir)
	if err != nil {
		log.Printf("LoadLibrary %s: %v", dir, err)
		return err
	}
	a.library = lib
	return nil
}

// Library listings for the frontend pickers.

func (a *App) Materials() []cabinet.Material      { return a.library.Materials }
func (a *App) Joints() []cabinet.JointType        { return a.library.Joints }
func (a *App) RuleSets() []cabinet.RuleSet        { return a.library.RuleSets }
func (a *App) Patterns() []cabinet.CabinetPattern { return a.library.Patterns }

// ValidationData is a JSON-serializable validation finding for the frontend.
type ValidationData struct {
	Rule     string `json:"rule,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// ValidatePattern runs all validation tiers on a library pattern.
func (a *App) ValidatePattern(patternID, ruleSetID string) []ValidationData {
	p := a.library.Pattern(patternID)
	if p == nil {
		return []ValidationData{{
			Message:  fmt.Sprintf("unknown pattern %q", patternID),
			Severity: "error",
		}}
	}

	result := cabinet.ValidateAll(p, a.library.Materials, a.library.Joints, a.library.RuleSet(ruleSetID))

	out := make([]ValidationData, 0, len(result.Errors)+len(result.Warnings))
	for _, e := range result.Errors {
		out = append(out, ValidationData{Rule: e.Rule, Message: e.Message, Severity: "error"})
	}
	for _, w := range result.Warnings {
		out = append(out, ValidationData{Rule: w.Rule, Message: w.Message, Severity: "warning"})
	}
	return out
}

// CalculateRequest describes one cabinet instance to resolve into a cut list.
type CalculateRequest struct {
	PatternID   string `json:"pattern_id"`
	CabinetID   string `json:"cabinet_id,omitempty"`
	CabinetName string `json:"cabinet_name,omitempty"`

	// Zero dimensions fall back to the pattern's defaults.
	Dimensions cabinet.Dimensions     `json:"dimensions"`
	Settings   cabinet.GlobalSettings `json:"settings"`

	RuleSetID string `json:"rule_set_id,omitempty"`

	Variables         map[string]float64  `json:"variables,omitempty"`
	Proportions       *engine.Proportions `json:"proportions,omitempty"`
	MaterialOverrides map[string]string   `json:"material_overrides,omitempty"`
	SkipOptional      bool                `json:"skip_optional,omitempty"`
}

// CalculateResult is the full cut-list result returned to the frontend.
type CalculateResult struct {
	Parts    []cabinet.CutPart `json:"parts"`
	Warnings []string          `json:"warnings"`
	Errors   []string          `json:"errors"`
}

// Calculate resolves one cabinet instance into a cut list.
// This is the primary binding called by the frontend editor.
func (a *App) Calculate(req CalculateRequest) CalculateResult {
	result := CalculateResult{
		Parts:    []cabinet.CutPart{},
		Warnings: []string{},
		Errors:   []string{},
	}
	a.calculateInto(req, &result)
	return result
}

// CalculateProject resolves several cabinet instances and consolidates the
// combined cut list, merging interchangeable parts across cabinets.
func (a *App) CalculateProject(reqs []CalculateRequest) CalculateResult {
	result := CalculateResult{
		Parts:    []cabinet.CutPart{},
		Warnings: []string{},
		Errors:   []string{},
	}
	for _, req := range reqs {
		a.calculateInto(req, &result)
	}
	result.Parts = cabinet.Consolidate(result.Parts)
	return result
}

// calculateInto runs one calculation and appends parts and findings.
func (a *App) calculateInto(req CalculateRequest, result *CalculateResult) {
	p := a.library.Pattern(req.PatternID)
	if p == nil {
		result.Errors = append(result.Errors, fmt.Sprintf("unknown pattern %q", req.PatternID))
		return
	}

	dims := req.Dimensions
	if dims == (cabinet.Dimensions{}) {
		dims = p.Defaults
	}

	res, err := a.engine.Calculate(engine.Request{
		Pattern:           p,
		Dimensions:        dims,
		Settings:          req.Settings,
		Variables:         req.Variables,
		Proportions:       req.Proportions,
		RuleSet:           a.library.RuleSet(req.RuleSetID),
		Materials:         a.library.Materials,
		MaterialOverrides: req.MaterialOverrides,
		Joints:            a.library.Joints,
		SkipOptional:      req.SkipOptional,
	})
	if err != nil {
		// Fatal error (panic, timeout, superseded request).
		log.Printf("Calculate fatal error: %v", err)
		result.Errors = append(result.Errors, err.Error())
		return
	}

	for _, part := range res.Parts {
		part.CabinetID = req.CabinetID
		part.CabinetName = req.CabinetName
		result.Parts = append(result.Parts, part)
	}
	for _, w := range res.Warnings {
		result.Warnings = append(result.Warnings, w.String())
	}
}

// ExportCSV writes a cut list to path in a spreadsheet-friendly layout.
func (a *App) ExportCSV(parts []cabinet.CutPart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"Part", "Length (mm)", "Width (mm)", "Qty", "Material", "Grain", "Edge Banding", "Cabinet",
	}); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, p := range parts {
		row := []string{
			p.PartName,
			strconv.Itoa(p.Length),
			strconv.Itoa(p.Width),
			strconv.Itoa(p.Quantity),
			p.MaterialID,
			string(p.Grain),
			p.EdgeBanding,
			p.CabinetName,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// PreviewResult bundles the viewport meshes for one cabinet instance.
type PreviewResult struct {
	Meshes []MeshData `json:"meshes"`
	Errors []string   `json:"errors"`
}

// Preview builds the 3D viewport meshes for one cabinet instance.
func (a *App) Preview(req CalculateRequest) PreviewResult {
	result := PreviewResult{
		Meshes: []MeshData{},
		Errors: []string{},
	}

	p := a.library.Pattern(req.PatternID)
	if p == nil {
		result.Errors = append(result.Errors, fmt.Sprintf("unknown pattern %q", req.PatternID))
		return result
	}

	dims := req.Dimensions
	if dims == (cabinet.Dimensions{}) {
		dims = p.Defaults
	}

	meshes, err := preview.Build(p, dims, req.Settings, a.library.RuleSet(req.RuleSetID),
		a.library.Materials, a.kernel)
	if err != nil {
		log.Printf("Preview error: %v", err)
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	for i, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}
	return result
}
