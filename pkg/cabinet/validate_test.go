package cabinet

import (
	"strings"
	"testing"
)

func hasError(errs []ValidationError, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func hasWarning(warnings []ValidationWarning, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidateRuleStructure(t *testing.T) {
	p := &CabinetPattern{
		Rules: []PartRule{
			{Name: "", Length: "10", Width: "10"},
			{Name: "Dup", Length: "10", Width: "10"},
			{Name: "Dup", Length: "10", Width: "10"},
			{Name: "NoFormulas"},
			{Name: "BadRole", Length: "10", Width: "10", Role: "sidewall"},
			{Name: "BadGrain", Length: "10", Width: "10", Grain: "diagonal"},
			{Name: "BadEdge", Length: "10", Width: "10",
				EdgeJoints: map[Edge]string{"X9": "dado-6"}},
		},
	}

	errs := Validate(p)
	for _, want := range []string{
		"no name",
		"duplicate part rule name",
		"length formula is empty",
		"width formula is empty",
		`unknown material role "sidewall"`,
		`unknown grain direction "diagonal"`,
		`unknown edge "X9"`,
	} {
		if !hasError(errs, want) {
			t.Errorf("missing error containing %q in %v", want, errs)
		}
	}
}

func TestValidateLayout(t *testing.T) {
	p := &CabinetPattern{
		Columns: []Column{
			{},
			{Zones: []Zone{{Kind: "cubby"}}},
			{Zones: []Zone{{Kind: ZoneDoor}, {Kind: ZoneShelf}},
				ZoneProportions: []float64{0.5}},
		},
		ColumnProportions: []float64{0.5, 0.5},
	}

	errs := Validate(p)
	for _, want := range []string{
		"has no zones",
		`unknown kind "cubby"`,
		"1 zone proportions for 2 zones",
		"2 column proportions for 3 columns",
	} {
		if !hasError(errs, want) {
			t.Errorf("missing error containing %q in %v", want, errs)
		}
	}
}

func TestValidateCleanPattern(t *testing.T) {
	p := &CabinetPattern{
		Columns: []Column{
			{Zones: []Zone{{Kind: ZoneDrawer}, {Kind: ZoneDoor}}},
		},
		Rules: []PartRule{
			{Name: "Side", Length: "side_height", Width: "total_depth",
				Grain: GrainLength, Role: RoleCarcass},
		},
	}

	if errs := Validate(p); len(errs) != 0 {
		t.Errorf("clean pattern produced errors: %v", errs)
	}
}

func TestValidateAllTiers(t *testing.T) {
	materials := []Material{
		{ID: "ply-18", Thickness: 18, EdgeBandingIDs: []string{"pvc-2"}},
		{ID: "mdf-19", Thickness: 19},
		{ID: "pvc-2", Thickness: 2, Type: "edge-banding"},
	}
	joints := []JointType{
		{ID: "camlock-15", Category: JointCamLock, RequiredMaterialThickness: 16},
	}

	p := &CabinetPattern{
		ZoneProportions: []float64{0.6, 0.6},
		Zones:           []Zone{{Kind: ZoneDoor}, {Kind: ZoneDoor}},
		Defaults:        Dimensions{Height: 720, Width: 600, Depth: 560},
		RoleMaterials: map[MaterialRole]RoleAssignment{
			RoleCarcass:     {MaterialID: "ply-18"},
			RoleBack:        {MaterialID: "vanished"},
			RoleEdgeBanding: {MaterialID: "pvc-2"},
		},
		Rules: []PartRule{
			{Name: "Side", Length: "10", Width: "10",
				EdgeJoints: map[Edge]string{EdgeW1: "camlock-15"}},
			{Name: "Banded", Length: "10", Width: "10", MaterialID: "mdf-19",
				EdgeBanding: EdgeFlags{L1: true}},
			{Name: "Lost", Length: "10", Width: "10", MaterialID: "vanished-too"},
		},
	}

	result := ValidateAll(p, materials, joints, nil)
	if len(result.Errors) != 0 {
		t.Fatalf("advisory findings must not be errors: %v", result.Errors)
	}

	for _, want := range []string{
		"sum to 1.2000",                     // tier 2
		`unknown material "vanished"`,       // tier 3, role
		`unknown material "vanished-too"`,   // tier 3, rule
		"expects 16.0mm stock",              // camlock on 18mm carcass
		`not listed as compatible`,          // pvc-2 not on mdf-19
	} {
		if !hasWarning(result.Warnings, want) {
			t.Errorf("missing warning containing %q in %v", want, result.Warnings)
		}
	}
}

func TestValidateAllNegativeOffsets(t *testing.T) {
	p := &CabinetPattern{Defaults: Dimensions{Height: 1, Width: 1, Depth: 1}}
	rs := &RuleSet{Offsets: Offsets{DoorGap: -2}}

	result := ValidateAll(p, nil, nil, rs)
	if !hasWarning(result.Warnings, "offset door_gap") {
		t.Errorf("missing negative offset warning in %v", result.Warnings)
	}
}
