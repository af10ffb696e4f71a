package library

import "github.com/ernestoCruz05/ligna/pkg/cabinet"

// Default returns the built-in library: common sheet goods, the standard
// joint methods and two stock patterns. User documents loaded on top may
// shadow any entry by id.
func Default() *Library {
	return &Library{
		Materials: defaultMaterials(),
		Joints:    defaultJoints(),
		RuleSets:  defaultRuleSets(),
		Patterns:  defaultPatterns(),
	}
}

func defaultMaterials() []cabinet.Material {
	return []cabinet.Material{
		{ID: "ply-18", Name: "Birch plywood 18mm", Thickness: 18, Type: "plywood",
			EdgeBandingIDs: []string{"pvc-2", "abs-1"}},
		{ID: "ply-12", Name: "Birch plywood 12mm", Thickness: 12, Type: "plywood"},
		{ID: "mdf-19", Name: "MDF 19mm", Thickness: 19, Type: "mdf",
			EdgeBandingIDs: []string{"pvc-2"}},
		{ID: "melamine-16", Name: "Melamine 16mm", Thickness: 16, Type: "melamine",
			EdgeBandingIDs: []string{"pvc-2", "abs-1"}},
		{ID: "hdf-3", Name: "HDF 3mm", Thickness: 3, Type: "hdf"},
		{ID: "hdf-6", Name: "HDF 6mm", Thickness: 6, Type: "hdf"},
		{ID: "pvc-2", Name: "PVC banding 2mm", Thickness: 2, Type: "edge-banding"},
		{ID: "abs-1", Name: "ABS banding 1mm", Thickness: 1, Type: "edge-banding"},
	}
}

func defaultJoints() []cabinet.JointType {
	return []cabinet.JointType{
		{ID: "butt-glued", Name: "Glued butt joint", Category: cabinet.JointButt},
		{ID: "dado-6", Name: "6mm dado", Category: cabinet.JointDado,
			Depth: 6, Width: 6, ExtendsInsertedPiece: true, Tolerance: 0.2},
		{ID: "dado-shelf", Name: "Shelf dado for 18mm stock", Category: cabinet.JointDado,
			Depth: 8, Width: 18.2, ExtendsInsertedPiece: true, Tolerance: 0.3,
			RequiredMaterialThickness: 18},
		{ID: "rabbet-12", Name: "12mm rabbet", Category: cabinet.JointRabbet,
			Depth: 12, ExtendsInsertedPiece: true, Tolerance: 0.2},
		{ID: "tongue-10", Name: "Tongue and groove", Category: cabinet.JointTongueGroove,
			Depth: 10, Width: 6, ExtendsInsertedPiece: true, Tolerance: 0.3},
		{ID: "dowel-8", Name: "8x35 dowel", Category: cabinet.JointDowel, Depth: 35},
		{ID: "camlock-15", Name: "15mm cam lock", Category: cabinet.JointCamLock,
			Depth: 12.5, RequiredMaterialThickness: 16},
		{ID: "pocket-32", Name: "Pocket screw", Category: cabinet.JointPocketScrew, Depth: 32},
		{ID: "miter-45", Name: "45° miter", Category: cabinet.JointMiter},
	}
}

func defaultRuleSets() []cabinet.RuleSet {
	return []cabinet.RuleSet{
		{
			ID:                 "frameless-overlay",
			Name:               "Frameless, overlay fronts",
			SideConstruction:   cabinet.SidesOnBottom,
			BackPanelMethod:    cabinet.BackOverlay,
			DrawerConstruction: cabinet.DrawerSideMount,
			Offsets: cabinet.Offsets{
				DrawerFrontGap:     3,
				DoorGap:            3,
				ShelfInset:         6,
				DrawerSlideOffset:  13,
				BackPanelThickness: 6,
			},
			RoleMaterials: map[cabinet.MaterialRole]string{
				cabinet.RoleCarcass:     "ply-18",
				cabinet.RoleBack:        "hdf-6",
				cabinet.RoleFront:       "mdf-19",
				cabinet.RoleShelf:       "ply-18",
				cabinet.RoleEdgeBanding: "pvc-2",
			},
			EdgeBandingSets: map[string]cabinet.EdgeFlags{
				"door":         {L1: true, L2: true, W1: true, W2: true},
				"drawer-front": {L1: true, L2: true, W1: true, W2: true},
				"shelf":        {L1: true},
			},
		},
		{
			ID:                 "euro-inset-groove",
			Name:               "Euro carcass, grooved back",
			SideConstruction:   cabinet.BottomBetweenSides,
			BackPanelMethod:    cabinet.BackInsetGroove,
			DrawerConstruction: cabinet.DrawerUndermount,
			Offsets: cabinet.Offsets{
				DrawerFrontGap:     3,
				DoorGap:            2,
				ShelfInset:         4,
				DrawerSlideOffset:  10,
				BackPanelThickness: 6,
				BackGrooveDepth:    10,
			},
			RoleMaterials: map[cabinet.MaterialRole]string{
				cabinet.RoleCarcass:     "melamine-16",
				cabinet.RoleBack:        "hdf-6",
				cabinet.RoleFront:       "melamine-16",
				cabinet.RoleShelf:       "melamine-16",
				cabinet.RoleEdgeBanding: "abs-1",
			},
			EdgeBandingSets: map[string]cabinet.EdgeFlags{
				"door":  {L1: true, L2: true, W1: true, W2: true},
				"shelf": {L1: true},
			},
		},
	}
}

func defaultPatterns() []cabinet.CabinetPattern {
	return []cabinet.CabinetPattern{
		baseCabinetPattern(),
		wallCabinetPattern(),
	}
}

// baseCabinetPattern is a two-column base cabinet: a drawer stack next to a
// door compartment with one shelf.
func baseCabinetPattern() cabinet.CabinetPattern {
	return cabinet.CabinetPattern{
		ID:   "base-2col",
		Name: "Base cabinet, drawers + door",
		Columns: []cabinet.Column{
			{
				ID: "drw",
				Zones: []cabinet.Zone{
					{ID: "d1", Kind: cabinet.ZoneDrawer},
					{ID: "d2", Kind: cabinet.ZoneDrawer},
					{ID: "d3", Kind: cabinet.ZoneDrawer},
				},
			},
			{
				ID: "door",
				Zones: []cabinet.Zone{
					{ID: "door", Kind: cabinet.ZoneDoor},
					{ID: "shelf", Kind: cabinet.ZoneShelf},
				},
				ZoneProportions: []float64{0.7, 0.3},
			},
		},
		ColumnProportions: []float64{0.4, 0.6},
		Rules: []cabinet.PartRule{
			{Name: "Side", Length: "side_height", Width: "total_depth", Quantity: "2",
				Grain: cabinet.GrainLength, EdgeBanding: cabinet.EdgeFlags{L1: true}},
			{Name: "Bottom", Length: "bottom_width", Width: "total_depth", Quantity: "1",
				EdgeJoints: map[cabinet.Edge]string{cabinet.EdgeW1: "dado-shelf", cabinet.EdgeW2: "dado-shelf"}},
			{Name: "Top Stretcher", Length: "top_width", Width: "stretcher_width", Quantity: "2"},
			{Name: "Back", Length: "back_height", Width: "back_width", Quantity: "1",
				Role: cabinet.RoleBack},
			{Name: "Shelf", Category: "shelf", Role: cabinet.RoleShelf,
				Length: "column_door_width - 2*shelf_inset", Width: "total_depth - back_thickness - 30",
				Quantity: "shelf_count", Condition: "shelf_count",
				Grain: cabinet.GrainLength},
			{Name: "Door", Category: "door", Role: cabinet.RoleFront,
				Length: "zone_door_height", Width: "column_door_width - door_gap",
				Quantity: "door_count", Condition: "door_count",
				Grain: cabinet.GrainLength},
			{Name: "Drawer Front", Category: "drawer-front", Role: cabinet.RoleFront,
				Length: "column_drw_width - drawer_front_gap", Width: "zone_d1_height - drawer_front_gap",
				Quantity: "drawer_count", Condition: "drawer_count",
				Grain: cabinet.GrainLength},
			{Name: "Drawer Box Side", MaterialID: "ply-12",
				Length: "total_depth - drawer_slide_offset - 50", Width: "zone_d1_height - 30",
				Quantity: "2 * drawer_count", Condition: "drawer_count"},
			{Name: "Drawer Box Bottom", MaterialID: "hdf-6",
				Length: "column_drw_width - 2*drawer_slide_offset - 24", Width: "total_depth - 120",
				Quantity: "drawer_count", Condition: "drawer_count",
				EdgeJoints: map[cabinet.Edge]string{
					cabinet.EdgeL1: "dado-6", cabinet.EdgeL2: "dado-6",
					cabinet.EdgeW1: "dado-6", cabinet.EdgeW2: "dado-6",
				}},
			{Name: "Plinth", Length: "total_width", Width: "plinth_height", Quantity: "1",
				Optional: true},
		},
		Variables: map[string]float64{
			"stretcher_width": 100,
			"plinth_height":   100,
		},
		Defaults: cabinet.Dimensions{Height: 720, Width: 600, Depth: 560},
	}
}

// wallCabinetPattern is a flat-zone wall cabinet with two doors.
func wallCabinetPattern() cabinet.CabinetPattern {
	return cabinet.CabinetPattern{
		ID:   "wall-2door",
		Name: "Wall cabinet, two doors",
		Zones: []cabinet.Zone{
			{ID: "left", Kind: cabinet.ZoneDoor},
			{ID: "right", Kind: cabinet.ZoneDoor},
			{ID: "mid", Kind: cabinet.ZoneShelf},
		},
		Rules: []cabinet.PartRule{
			{Name: "Side", Length: "side_height", Width: "total_depth", Quantity: "2",
				Grain: cabinet.GrainLength, EdgeBanding: cabinet.EdgeFlags{L1: true}},
			{Name: "Bottom", Length: "bottom_width", Width: "total_depth", Quantity: "1"},
			{Name: "Top", Length: "top_width", Width: "total_depth", Quantity: "1"},
			{Name: "Back", Length: "back_height", Width: "back_width", Quantity: "1",
				Role: cabinet.RoleBack},
			{Name: "Shelf", Category: "shelf", Role: cabinet.RoleShelf,
				Length: "inner_width - 2*shelf_inset", Width: "total_depth - back_thickness - 20",
				Quantity: "shelf_count", Condition: "shelf_count"},
			{Name: "Door", Category: "door", Role: cabinet.RoleFront,
				Length: "total_height - 2*door_gap", Width: "total_width/2 - 2*door_gap",
				Quantity: "door_count", Condition: "door_count",
				Grain: cabinet.GrainLength},
		},
		Defaults: cabinet.Dimensions{Height: 720, Width: 800, Depth: 320},
	}
}
