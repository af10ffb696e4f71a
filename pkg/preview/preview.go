// Package preview turns a cabinet pattern plus concrete dimensions into
// triangle meshes for the 3D viewport, one mesh per panel. It reuses the
// engine's context variables so the preview always agrees with the cut
// list, and it is read-only: patterns and libraries are never mutated.
package preview

import (
	"fmt"

	"github.com/ernestoCruz05/ligna/pkg/cabinet"
	"github.com/ernestoCruz05/ligna/pkg/engine"
	"github.com/ernestoCruz05/ligna/pkg/kernel"
)

// Coordinate system: X runs along the cabinet width, Y along the depth
// (front face at y=0), Z along the height.

// Build produces one positioned mesh per carcass panel, shelf and front.
// The preview is an approximation for the viewport; the cut list remains
// the manufacturing truth.
func Build(p *cabinet.CabinetPattern, dims cabinet.Dimensions, settings cabinet.GlobalSettings,
	rs *cabinet.RuleSet, materials []cabinet.Material, k kernel.Kernel) ([]*kernel.Mesh, error) {

	if p == nil {
		return nil, nil
	}

	ctx := engine.BuildContext(dims, settings, p, rs, materials)

	t := ctx["material_thickness"]
	backTh := ctx["back_thickness"]
	frontTh := ctx["front_thickness"]
	shelfTh := ctx["shelf_thickness"]
	sideHeight := ctx["side_height"]
	bottomWidth := ctx["bottom_width"]
	topWidth := ctx["top_width"]
	innerWidth := ctx["inner_width"]
	innerHeight := ctx["inner_height"]

	H, W, D := dims.Height, dims.Width, dims.Depth

	backMethod := cabinet.BackOverlay
	var offsets cabinet.Offsets
	if rs != nil {
		backMethod = rs.BackPanelMethod
		offsets = rs.Offsets
	}

	// Rear face of the back panel. Overlay backs sit flush with the rear
	// edges; inset backs are recessed by the groove depth.
	backY := D - backTh
	if backMethod != cabinet.BackOverlay {
		backY -= offsets.BackGrooveDepth
	}

	sideZ := H - sideHeight // sides start above the bottom when captured

	var meshes []*kernel.Mesh

	emit := func(name string, s kernel.Solid) error {
		mesh, err := k.ToMesh(s)
		if err != nil {
			return fmt.Errorf("preview: ToMesh failed for %s: %w", name, err)
		}
		mesh.PartName = name
		meshes = append(meshes, mesh)
		return nil
	}

	// Side panels, with a back groove cut in when the rule set calls for it.
	makeSide := func(x float64, grooveFaceX float64) kernel.Solid {
		s := k.Translate(k.Box(t, D, sideHeight), x, 0, sideZ)
		if backMethod == cabinet.BackInsetGroove && offsets.BackGrooveDepth > 0 {
			groove := k.Box(offsets.BackGrooveDepth, backTh, sideHeight)
			s = k.Difference(s, k.Translate(groove, grooveFaceX, backY, sideZ))
		}
		return s
	}
	if err := emit("side-left", makeSide(0, t-offsets.BackGrooveDepth)); err != nil {
		return nil, err
	}
	if err := emit("side-right", makeSide(W-t, W-t)); err != nil {
		return nil, err
	}

	if err := emit("bottom", k.Translate(k.Box(bottomWidth, D, t), (W-bottomWidth)/2, 0, 0)); err != nil {
		return nil, err
	}
	if err := emit("top", k.Translate(k.Box(topWidth, D, t), (W-topWidth)/2, 0, H-t)); err != nil {
		return nil, err
	}

	if err := emit("back", k.Translate(k.Box(ctx["back_width"], backTh, ctx["back_height"]),
		(W-ctx["back_width"])/2, backY, t)); err != nil {
		return nil, err
	}

	// Columns: shelves inside the carcass, fronts proud of it.
	columns := p.Columns
	if len(columns) == 0 && len(p.Zones) > 0 {
		columns = []cabinet.Column{{Zones: p.Zones, ZoneProportions: p.ZoneProportions}}
	}
	colProps := cabinet.NormalizeProportions(p.ColumnProportions, len(columns))

	x := t
	for i, col := range columns {
		colWidth := innerWidth * colProps[i]
		zoneProps := cabinet.NormalizeProportions(col.ZoneProportions, len(col.Zones))

		// Zones stack top-down, matching the on-screen editor.
		z := t + innerHeight
		for j, zone := range col.Zones {
			zoneHeight := innerHeight * zoneProps[j]
			z -= zoneHeight
			name := zoneName(zone, i, j)

			switch zone.Kind {
			case cabinet.ZoneShelf:
				inset := offsets.ShelfInset
				shelf := k.Box(colWidth-2*inset, D-backTh-20, shelfTh)
				if err := emit("shelf-"+name, k.Translate(shelf, x+inset, 0, z+zoneHeight/2)); err != nil {
					return nil, err
				}
			case cabinet.ZoneDoor:
				gap := offsets.DoorGap
				door := k.Box(colWidth-2*gap, frontTh, zoneHeight-2*gap)
				if err := emit("door-"+name, k.Translate(door, x+gap, -frontTh, z+gap)); err != nil {
					return nil, err
				}
			case cabinet.ZoneDrawer:
				gap := offsets.DrawerFrontGap
				face := k.Box(colWidth-2*gap, frontTh, zoneHeight-2*gap)
				if err := emit("drawer-front-"+name, k.Translate(face, x+gap, -frontTh, z+gap)); err != nil {
					return nil, err
				}
			case cabinet.ZoneDivider:
				div := k.Box(colWidth, D-backTh, t)
				if err := emit("divider-"+name, k.Translate(div, x, 0, z+zoneHeight-t/2)); err != nil {
					return nil, err
				}
			}
			// Open zones draw nothing.
		}
		x += colWidth
	}

	return meshes, nil
}

// zoneName labels a zone mesh by the zone id when present, else by indices.
func zoneName(z cabinet.Zone, col, idx int) string {
	if z.ID != "" {
		return z.ID
	}
	return fmt.Sprintf("c%dz%d", col, idx)
}
