package engine

import "github.com/ernestoCruz05/ligna/pkg/cabinet"

// ResolveThickness looks a material up by id and returns its thickness, or
// fallback when the id is empty or not in the library. Libraries are small,
// so a linear scan is fine. Never fails.
func ResolveThickness(materialID string, materials []cabinet.Material, fallback float64) float64 {
	if materialID == "" {
		return fallback
	}
	for _, m := range materials {
		if m.ID == materialID {
			return m.Thickness
		}
	}
	return fallback
}

// resolvedMaterial is the outcome of the per-part override chain.
type resolvedMaterial struct {
	ID        string  // winning material id, "" when only a fallback applied
	Thickness float64 // effective thickness in mm
}

// resolveRuleMaterial applies the per-part override precedence, highest
// first:
//
//  1. instance-level override (keyed by part name, then by role)
//  2. rule-declared material id
//  3. pattern role assignment (its explicit thickness wins over the library)
//  4. rule set role default
//  5. global default thickness for the role
//
// The first present level supplies the material id; its thickness comes from
// the explicit pattern override when set, else the library, else the global
// role default.
func resolveRuleMaterial(rule cabinet.PartRule, p *cabinet.CabinetPattern, rs *cabinet.RuleSet,
	settings cabinet.GlobalSettings, materials []cabinet.Material, overrides map[string]string) resolvedMaterial {

	role := rule.EffectiveRole()
	fallback := roleFallback(role, settings)

	if id, ok := overrides[rule.Name]; ok && id != "" {
		return resolvedMaterial{ID: id, Thickness: ResolveThickness(id, materials, fallback)}
	}
	if id, ok := overrides[string(role)]; ok && id != "" {
		return resolvedMaterial{ID: id, Thickness: ResolveThickness(id, materials, fallback)}
	}

	if rule.MaterialID != "" {
		return resolvedMaterial{ID: rule.MaterialID, Thickness: ResolveThickness(rule.MaterialID, materials, fallback)}
	}

	if p != nil {
		if ra, ok := p.RoleMaterials[role]; ok && (ra.MaterialID != "" || ra.Thickness > 0) {
			th := ra.Thickness
			if th <= 0 {
				th = ResolveThickness(ra.MaterialID, materials, fallback)
			}
			return resolvedMaterial{ID: ra.MaterialID, Thickness: th}
		}
	}

	if rs != nil {
		if id, ok := rs.RoleMaterials[role]; ok && id != "" {
			return resolvedMaterial{ID: id, Thickness: ResolveThickness(id, materials, fallback)}
		}
	}

	return resolvedMaterial{Thickness: fallback}
}

// roleThickness resolves the effective panel thickness for a role the way
// the context builder needs it: pattern assignment first (explicit override,
// then library lookup), then the rule set (back panel offset or role
// default), then the global settings.
func roleThickness(role cabinet.MaterialRole, p *cabinet.CabinetPattern, rs *cabinet.RuleSet,
	settings cabinet.GlobalSettings, materials []cabinet.Material) float64 {

	fallback := roleFallback(role, settings)

	if p != nil {
		if ra, ok := p.RoleMaterials[role]; ok {
			if ra.Thickness > 0 {
				return ra.Thickness
			}
			if ra.MaterialID != "" {
				return ResolveThickness(ra.MaterialID, materials, fallback)
			}
		}
	}

	if rs != nil {
		if role == cabinet.RoleBack && rs.Offsets.BackPanelThickness > 0 {
			return rs.Offsets.BackPanelThickness
		}
		if id, ok := rs.RoleMaterials[role]; ok && id != "" {
			return ResolveThickness(id, materials, fallback)
		}
	}

	return fallback
}

// roleFallback picks the global default thickness for a role. Front and
// shelf fall back to the carcass thickness when unset.
func roleFallback(role cabinet.MaterialRole, settings cabinet.GlobalSettings) float64 {
	switch role {
	case cabinet.RoleBack:
		return settings.BackPanelThickness
	case cabinet.RoleFront:
		if settings.FrontThickness > 0 {
			return settings.FrontThickness
		}
	case cabinet.RoleShelf:
		if settings.ShelfThickness > 0 {
			return settings.ShelfThickness
		}
	}
	return settings.MaterialThickness
}
