package cabinet

import (
	"fmt"
	"math"
)

// ---------------------------------------------------------------------------
// Tier 2 — Numeric advisories
// ---------------------------------------------------------------------------

// proportionTolerance is the slack allowed before a proportion array is
// reported as not summing to 1. The engine normalizes either way.
const proportionTolerance = 1e-6

// validateNumeric runs all Tier 2 numeric checks: proportion sums, offset
// signs and default dimensions. All findings are advisory because the engine
// normalizes proportions and clamps on its own.
func validateNumeric(p *CabinetPattern, rs *RuleSet) []ValidationWarning {
	var warnings []ValidationWarning

	warnings = append(warnings, checkProportionSum(p.ColumnProportions, "column proportions")...)
	warnings = append(warnings, checkProportionSum(p.ZoneProportions, "zone proportions")...)
	for i, c := range p.Columns {
		warnings = append(warnings, checkProportionSum(c.ZoneProportions,
			fmt.Sprintf("column %d zone proportions", i))...)
	}

	if p.Defaults.Height <= 0 || p.Defaults.Width <= 0 || p.Defaults.Depth <= 0 {
		warnings = append(warnings, ValidationWarning{
			Message: fmt.Sprintf("default dimensions %.0fx%.0fx%.0f are not all positive",
				p.Defaults.Height, p.Defaults.Width, p.Defaults.Depth),
		})
	}

	if rs != nil {
		warnings = append(warnings, checkOffsets(rs.Offsets)...)
	}

	return warnings
}

// checkProportionSum warns when a present proportion array does not sum to 1
// or contains non-positive entries.
func checkProportionSum(props []float64, what string) []ValidationWarning {
	if len(props) == 0 {
		return nil
	}
	var warnings []ValidationWarning
	sum := 0.0
	for i, v := range props {
		if v <= 0 {
			warnings = append(warnings, ValidationWarning{
				Message: fmt.Sprintf("%s[%d] is %.4f, expected a fraction in (0,1)", what, i, v),
			})
		}
		sum += v
	}
	if math.Abs(sum-1.0) > proportionTolerance {
		warnings = append(warnings, ValidationWarning{
			Message: fmt.Sprintf("%s sum to %.4f, expected 1; the engine will normalize", what, sum),
		})
	}
	return warnings
}

// checkOffsets warns on negative rule set offsets.
func checkOffsets(o Offsets) []ValidationWarning {
	var warnings []ValidationWarning
	named := []struct {
		name  string
		value float64
	}{
		{"drawer_front_gap", o.DrawerFrontGap},
		{"door_gap", o.DoorGap},
		{"shelf_inset", o.ShelfInset},
		{"drawer_slide_offset", o.DrawerSlideOffset},
		{"back_panel_thickness", o.BackPanelThickness},
		{"back_groove_depth", o.BackGrooveDepth},
	}
	for _, n := range named {
		if n.value < 0 {
			warnings = append(warnings, ValidationWarning{
				Message: fmt.Sprintf("offset %s is %.2f, must be non-negative", n.name, n.value),
			})
		}
	}
	return warnings
}

// ---------------------------------------------------------------------------
// Tier 3 — Material and joint advisories
// ---------------------------------------------------------------------------

// validateMaterials warns on dangling material/joint references, joint
// thickness mismatches and incompatible edge-banding assignments.
func validateMaterials(p *CabinetPattern, materials []Material, joints []JointType) []ValidationWarning {
	var warnings []ValidationWarning

	matByID := make(map[string]Material, len(materials))
	for _, m := range materials {
		matByID[m.ID] = m
	}
	jointByID := make(map[string]JointType, len(joints))
	for _, j := range joints {
		jointByID[j.ID] = j
	}

	bandingID := ""
	if ra, ok := p.RoleMaterials[RoleEdgeBanding]; ok {
		bandingID = ra.MaterialID
	}

	for role, ra := range p.RoleMaterials {
		if ra.MaterialID == "" {
			continue
		}
		if _, ok := matByID[ra.MaterialID]; !ok {
			warnings = append(warnings, ValidationWarning{
				Message: fmt.Sprintf("role %s references unknown material %q; fallback thickness will apply", role, ra.MaterialID),
			})
		}
	}

	for _, r := range p.Rules {
		if r.MaterialID != "" {
			if _, ok := matByID[r.MaterialID]; !ok {
				warnings = append(warnings, ValidationWarning{
					Rule:    r.Name,
					Message: fmt.Sprintf("references unknown material %q; fallback thickness will apply", r.MaterialID),
				})
			}
		}

		for edge, jointID := range r.EdgeJoints {
			j, ok := jointByID[jointID]
			if !ok {
				warnings = append(warnings, ValidationWarning{
					Rule:    r.Name,
					Message: fmt.Sprintf("edge %s references unknown joint %q", edge, jointID),
				})
				continue
			}
			if j.RequiredMaterialThickness > 0 {
				if m, ok := resolveRuleMaterial(r, p, matByID); ok && m.Thickness != j.RequiredMaterialThickness {
					warnings = append(warnings, ValidationWarning{
						Rule: r.Name,
						Message: fmt.Sprintf("joint %q expects %.1fmm stock but material %q is %.1fmm",
							jointID, j.RequiredMaterialThickness, m.ID, m.Thickness),
					})
				}
			}
		}

		if r.EdgeBanding.HasAny() && bandingID != "" {
			if m, ok := resolveRuleMaterial(r, p, matByID); ok && !m.CompatibleBanding(bandingID) {
				warnings = append(warnings, ValidationWarning{
					Rule: r.Name,
					Message: fmt.Sprintf("edge banding %q is not listed as compatible with material %q",
						bandingID, m.ID),
				})
			}
		}
	}

	return warnings
}

// resolveRuleMaterial finds the library material a rule will most likely cut
// from: the rule's own material id, else the pattern's role assignment.
// Only used for advisory checks; the engine applies the full precedence.
func resolveRuleMaterial(r PartRule, p *CabinetPattern, matByID map[string]Material) (Material, bool) {
	id := r.MaterialID
	if id == "" {
		if ra, ok := p.RoleMaterials[r.EffectiveRole()]; ok {
			id = ra.MaterialID
		}
	}
	if id == "" {
		return Material{}, false
	}
	m, ok := matByID[id]
	return m, ok
}
