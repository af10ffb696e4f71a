// Package engine resolves a parametric cabinet description into a concrete
// cut list. It assembles the expression context for a cabinet instance,
// resolves effective material thicknesses under the override policy, applies
// joint impacts per edge and processes the pattern's part rules into CutPart
// records. Everything here is pure: libraries are passed in and never
// written through, and identical inputs always produce identical output.
package engine

import (
	"fmt"
	"strings"

	"github.com/ernestoCruz05/ligna/pkg/cabinet"
	"github.com/ernestoCruz05/ligna/pkg/expr"
)

// BuildContext assembles the full variable mapping for one cabinet instance.
//
// Built-in variables, all in mm:
//
//	total_height, total_width, total_depth
//	material_thickness, thickness (alias), back_thickness,
//	front_thickness, shelf_thickness
//	side_height, bottom_width, top_width   (per side construction)
//	back_width, back_height                (per back panel method)
//	inner_width, inner_height, inner_depth
//	drawer_count, door_count, shelf_count
//	drawer_front_gap, door_gap, shelf_inset, drawer_slide_offset,
//	back_groove_depth                      (rule set offsets)
//	column_<i>_width, column_<id>_width    (per column)
//	zone_<i>_height, zone_<id>_height      (per zone, running index)
//
// Pattern variables are merged last so pattern authors can shadow any
// built-in. The rule set is optional; without it the offsets are zero and
// the side construction defaults to sides-on-bottom.
func BuildContext(dims cabinet.Dimensions, settings cabinet.GlobalSettings, p *cabinet.CabinetPattern, rs *cabinet.RuleSet, materials []cabinet.Material) expr.Context {
	ctx := make(expr.Context, 32)

	ctx["total_height"] = dims.Height
	ctx["total_width"] = dims.Width
	ctx["total_depth"] = dims.Depth

	t := roleThickness(cabinet.RoleCarcass, p, rs, settings, materials)
	back := roleThickness(cabinet.RoleBack, p, rs, settings, materials)
	front := roleThickness(cabinet.RoleFront, p, rs, settings, materials)
	shelf := roleThickness(cabinet.RoleShelf, p, rs, settings, materials)

	ctx["material_thickness"] = t
	ctx["thickness"] = t
	ctx["back_thickness"] = back
	ctx["front_thickness"] = front
	ctx["shelf_thickness"] = shelf

	side := cabinet.SidesOnBottom
	var offsets cabinet.Offsets
	backMethod := cabinet.BackOverlay
	if rs != nil {
		side = rs.SideConstruction
		backMethod = rs.BackPanelMethod
		offsets = rs.Offsets
	}

	sideHeight, bottomWidth, topWidth := carcassDimensions(side, dims.Height, dims.Width, t)
	ctx["side_height"] = sideHeight
	ctx["bottom_width"] = bottomWidth
	ctx["top_width"] = topWidth

	backWidth := dims.Width - 2*t
	backHeight := dims.Height - 2*t
	if backMethod != cabinet.BackOverlay {
		backWidth -= 2 * offsets.BackGrooveDepth
		backHeight -= 2 * offsets.BackGrooveDepth
	}
	ctx["back_width"] = backWidth
	ctx["back_height"] = backHeight

	innerWidth := dims.Width - 2*t
	innerHeight := dims.Height - 2*t
	ctx["inner_width"] = innerWidth
	ctx["inner_height"] = innerHeight
	ctx["inner_depth"] = dims.Depth - back

	if p != nil {
		ctx["drawer_count"] = float64(p.CountZones(cabinet.ZoneDrawer))
		ctx["door_count"] = float64(p.CountZones(cabinet.ZoneDoor))
		ctx["shelf_count"] = float64(p.CountZones(cabinet.ZoneShelf))
	} else {
		ctx["drawer_count"] = 0
		ctx["door_count"] = 0
		ctx["shelf_count"] = 0
	}

	ctx["drawer_front_gap"] = offsets.DrawerFrontGap
	ctx["door_gap"] = offsets.DoorGap
	ctx["shelf_inset"] = offsets.ShelfInset
	ctx["drawer_slide_offset"] = offsets.DrawerSlideOffset
	ctx["back_groove_depth"] = offsets.BackGrooveDepth

	if p != nil {
		addLayoutVariables(ctx, p, innerWidth, innerHeight)

		// Pattern variables win over every built-in: this is the pattern
		// author's parametrization escape hatch.
		for name, v := range p.Variables {
			ctx[sanitizeName(name)] = v
		}
	}

	return ctx
}

// carcassDimensions applies the side construction formulas.
func carcassDimensions(side cabinet.SideConstruction, height, width, t float64) (sideHeight, bottomWidth, topWidth float64) {
	switch side {
	case cabinet.BottomBetweenSides:
		return height - t, width, width - 2*t
	case cabinet.AllBetween:
		return height - 2*t, width - 2*t, width - 2*t
	default: // SidesOnBottom
		return height, width - 2*t, width - 2*t
	}
}

// addLayoutVariables derives per-column widths and per-zone heights from the
// normalized proportions. Each variable is emitted under an index-keyed name
// and, when the column/zone has an id, an id-derived name as well.
func addLayoutVariables(ctx expr.Context, p *cabinet.CabinetPattern, innerWidth, innerHeight float64) {
	if len(p.Columns) > 0 {
		colProps := cabinet.NormalizeProportions(p.ColumnProportions, len(p.Columns))
		zoneIndex := 0
		for i, col := range p.Columns {
			w := innerWidth * colProps[i]
			ctx[fmt.Sprintf("column_%d_width", i)] = w
			if col.ID != "" {
				ctx["column_"+sanitizeName(col.ID)+"_width"] = w
			}

			zoneProps := cabinet.NormalizeProportions(col.ZoneProportions, len(col.Zones))
			for j, z := range col.Zones {
				h := innerHeight * zoneProps[j]
				ctx[fmt.Sprintf("zone_%d_height", zoneIndex)] = h
				if z.ID != "" {
					ctx["zone_"+sanitizeName(z.ID)+"_height"] = h
				}
				zoneIndex++
			}
		}
		return
	}

	zoneProps := cabinet.NormalizeProportions(p.ZoneProportions, len(p.Zones))
	for i, z := range p.Zones {
		h := innerHeight * zoneProps[i]
		ctx[fmt.Sprintf("zone_%d_height", i)] = h
		if z.ID != "" {
			ctx["zone_"+sanitizeName(z.ID)+"_height"] = h
		}
	}
}

// sanitizeName lowers a name and maps anything outside [a-z0-9] to '_' so
// the result is usable as an expression variable.
func sanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
