package engine

import (
	"fmt"
	"math"

	"github.com/ernestoCruz05/ligna/pkg/cabinet"
	"github.com/ernestoCruz05/ligna/pkg/expr"
)

// Warning is one non-fatal finding raised while calculating a cut list:
// a formula that failed safe to 0, a dropped part, a dangling reference.
// Warnings are the observable side channel; they never abort a calculation.
type Warning struct {
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Rule == "" {
		return w.Message
	}
	return fmt.Sprintf("rule %q: %s", w.Rule, w.Message)
}

// Proportions are caller-supplied (UI-owned) proportion overrides. They are
// normalized on use and never retained between calls.
type Proportions struct {
	// Columns overrides the pattern's column proportions.
	Columns []float64 `json:"columns,omitempty"`
	// ZonesByColumn overrides each column's zone proportions.
	ZonesByColumn [][]float64 `json:"zones_by_column,omitempty"`
	// Zones overrides the flat zone proportions.
	Zones []float64 `json:"zones,omitempty"`
}

// Request carries everything one cut-list calculation needs. Pattern,
// Dimensions and Settings are required; everything else is optional.
// All reference data is read-only to the engine.
type Request struct {
	Pattern    *cabinet.CabinetPattern
	Dimensions cabinet.Dimensions
	Settings   cabinet.GlobalSettings

	// Variables overrides individual context variables; merged after the
	// pattern's own variables, so it wins over everything.
	Variables map[string]float64

	// Proportions overrides the pattern's layout proportions (drag editing).
	Proportions *Proportions

	RuleSet   *cabinet.RuleSet
	Materials []cabinet.Material

	// MaterialOverrides maps a part name or role name to a material id and
	// takes precedence over every other material source.
	MaterialOverrides map[string]string

	Joints []cabinet.JointType

	// SkipOptional leaves out rules flagged optional.
	SkipOptional bool
}

// CalculateParts processes every part rule of the pattern, in declaration
// order, into concrete CutPart records. Parts whose evaluated length or
// width is not positive are dropped with a warning; the calculation itself
// never fails. A nil pattern or a pattern without rules yields an empty
// list.
func CalculateParts(req Request) ([]cabinet.CutPart, []Warning) {
	var warnings []Warning

	p := req.Pattern
	if p == nil {
		return nil, []Warning{{Message: "no pattern supplied"}}
	}
	if req.Proportions != nil {
		p = overrideProportions(p, req.Proportions)
	}

	ctx := BuildContext(req.Dimensions, req.Settings, p, req.RuleSet, req.Materials)
	for name, v := range req.Variables {
		ctx[sanitizeName(name)] = v
	}

	jointIndex := make(map[string]cabinet.JointType, len(req.Joints))
	for _, j := range req.Joints {
		jointIndex[j.ID] = j
	}

	parts := make([]cabinet.CutPart, 0, len(p.Rules))

	for _, rule := range p.Rules {
		if rule.Optional && req.SkipOptional {
			continue
		}

		mat := resolveRuleMaterial(rule, p, req.RuleSet, req.Settings, req.Materials, req.MaterialOverrides)

		// Rule-scoped context: the shared mapping is never mutated, so
		// rules cannot see each other's thickness.
		ruleCtx := ctx.Clone()
		ruleCtx["part_thickness"] = mat.Thickness

		if rule.Condition != "" {
			cond, diags := expr.Evaluate(rule.Condition, ruleCtx)
			warnings = append(warnings, diagWarnings(rule.Name, diags)...)
			if cond <= 0 {
				continue
			}
		}

		length, diags := expr.Evaluate(rule.Length, ruleCtx)
		warnings = append(warnings, diagWarnings(rule.Name, diags)...)

		width, diags := expr.Evaluate(rule.Width, ruleCtx)
		warnings = append(warnings, diagWarnings(rule.Name, diags)...)

		lengthExt, widthExt, jointWarnings := edgeExtensions(rule, jointIndex)
		warnings = append(warnings, jointWarnings...)
		length += lengthExt
		width += widthExt

		quantity := 1.0
		if rule.Quantity != "" {
			quantity, diags = expr.Evaluate(rule.Quantity, ruleCtx)
			warnings = append(warnings, diagWarnings(rule.Name, diags)...)
		}
		qty := int(math.Round(quantity))
		if qty < 1 {
			// Documented policy: a zero or negative quantity still yields
			// one part; the condition field is the omission channel.
			qty = 1
		}

		if length <= 0 || width <= 0 {
			warnings = append(warnings, Warning{
				Rule:    rule.Name,
				Message: fmt.Sprintf("dropped: computed size %.2f x %.2f is not positive", length, width),
			})
			continue
		}

		parts = append(parts, cabinet.CutPart{
			PartName:    rule.Name,
			Length:      int(math.Round(length)),
			Width:       int(math.Round(width)),
			Quantity:    qty,
			MaterialID:  mat.ID,
			Grain:       rule.Grain,
			EdgeBanding: edgeBandingLabel(rule, req.RuleSet),
		})
	}

	return parts, warnings
}

// edgeBandingLabel renders the rule's own edge flags, falling back to the
// rule set's default edge set for the rule's category.
func edgeBandingLabel(rule cabinet.PartRule, rs *cabinet.RuleSet) string {
	if rule.EdgeBanding.HasAny() {
		return rule.EdgeBanding.Label()
	}
	if rs != nil && rule.Category != "" {
		if flags, ok := rs.EdgeBandingSets[rule.Category]; ok {
			return flags.Label()
		}
	}
	return ""
}

// overrideProportions returns a shallow copy of the pattern with the
// caller's proportion arrays applied. The originals are left untouched and
// the override slices are copied, never retained.
func overrideProportions(p *cabinet.CabinetPattern, props *Proportions) *cabinet.CabinetPattern {
	out := *p

	if len(props.Columns) > 0 {
		out.ColumnProportions = append([]float64(nil), props.Columns...)
	}
	if len(props.Zones) > 0 {
		out.ZoneProportions = append([]float64(nil), props.Zones...)
	}
	if len(props.ZonesByColumn) > 0 {
		out.Columns = append([]cabinet.Column(nil), p.Columns...)
		for i := range out.Columns {
			if i < len(props.ZonesByColumn) && len(props.ZonesByColumn[i]) > 0 {
				out.Columns[i].ZoneProportions = append([]float64(nil), props.ZonesByColumn[i]...)
			}
		}
	}

	return &out
}

// diagWarnings converts evaluator diagnostics to calculation warnings.
func diagWarnings(rule string, diags []expr.Diagnostic) []Warning {
	if len(diags) == 0 {
		return nil
	}
	out := make([]Warning, 0, len(diags))
	for _, d := range diags {
		out = append(out, Warning{Rule: rule, Message: d.String()})
	}
	return out
}
