package cabinet

// Dimensions are the outer cabinet dimensions in mm.
type Dimensions struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// GlobalSettings carries the application-wide default thicknesses that a
// pattern or rule set may override per role.
type GlobalSettings struct {
	MaterialThickness  float64 `json:"material_thickness"`   // carcass default, mm
	BackPanelThickness float64 `json:"back_panel_thickness"` // back default, mm
	FrontThickness     float64 `json:"front_thickness,omitempty"`
	ShelfThickness     float64 `json:"shelf_thickness,omitempty"`
}

// ZoneKind classifies what a zone slot holds.
type ZoneKind string

const (
	ZoneDrawer  ZoneKind = "drawer"
	ZoneDoor    ZoneKind = "door"
	ZoneShelf   ZoneKind = "shelf"
	ZoneOpen    ZoneKind = "open"
	ZoneDivider ZoneKind = "divider"
)

// ValidZoneKinds is the set of accepted zone kinds.
var ValidZoneKinds = map[ZoneKind]bool{
	ZoneDrawer:  true,
	ZoneDoor:    true,
	ZoneShelf:   true,
	ZoneOpen:    true,
	ZoneDivider: true,
}

// Zone is one functional slot within a column: a drawer, a door, a shelf
// section, an open compartment or a fixed divider.
type Zone struct {
	ID   string   `json:"id,omitempty"`
	Kind ZoneKind `json:"kind"`
}

// Column is a horizontal slice of a cabinet holding a vertical stack of
// zones. ZoneProportions, when present, divides the internal height among
// the zones; absent means equal division.
type Column struct {
	ID              string    `json:"id,omitempty"`
	Zones           []Zone    `json:"zones"`
	ZoneProportions []float64 `json:"zone_proportions,omitempty"`
}

// CabinetPattern is a reusable cabinet template: the zone/column layout,
// the part formulas and the per-role material assignments.
//
// When Columns is non-empty it takes precedence over the flat Zones list for
// layout purposes; the flat list remains populated for older documents.
type CabinetPattern struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	Zones           []Zone    `json:"zones,omitempty"`
	ZoneProportions []float64 `json:"zone_proportions,omitempty"`

	Columns           []Column  `json:"columns,omitempty"`
	ColumnProportions []float64 `json:"column_proportions,omitempty"`

	Rules []PartRule `json:"rules"`

	// RoleMaterials assigns materials (with optional explicit thickness
	// overrides) to construction roles for this pattern.
	RoleMaterials map[MaterialRole]RoleAssignment `json:"role_materials,omitempty"`

	// Variables are pattern-author parameters merged into the expression
	// context last, so they may shadow any built-in variable.
	Variables map[string]float64 `json:"variables,omitempty"`

	// Defaults are the dimensions a new cabinet instance starts with.
	Defaults Dimensions `json:"defaults"`
}

// PartRule describes one symbolic part: its name and the arithmetic formulas
// that produce its final dimensions and quantity.
type PartRule struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"` // e.g. "door", "shelf"; keys rule set edge-banding defaults

	Length   string `json:"length"`   // formula
	Width    string `json:"width"`    // formula
	Quantity string `json:"quantity"` // formula, empty means 1

	MaterialID string       `json:"material_id,omitempty"`
	Role       MaterialRole `json:"role,omitempty"` // defaults to carcass

	Grain       Grain           `json:"grain,omitempty"`
	EdgeBanding EdgeFlags       `json:"edge_banding,omitempty"`
	EdgeJoints  map[Edge]string `json:"edge_joints,omitempty"` // edge -> joint id

	// Condition, when present, must evaluate > 0 for the part to apply.
	Condition string `json:"condition,omitempty"`
	Optional  bool   `json:"optional,omitempty"`
}

// EffectiveRole returns the rule's material role, defaulting to carcass.
func (r PartRule) EffectiveRole() MaterialRole {
	if r.Role == "" {
		return RoleCarcass
	}
	return r.Role
}

// AllZones returns the zones used for counting and layout: the columns'
// zones when columns are present, else the flat list.
func (p *CabinetPattern) AllZones() []Zone {
	if len(p.Columns) > 0 {
		var zones []Zone
		for _, c := range p.Columns {
			zones = append(zones, c.Zones...)
		}
		return zones
	}
	return p.Zones
}

// CountZones tallies zones of the given kind across the effective layout.
func (p *CabinetPattern) CountZones(kind ZoneKind) int {
	n := 0
	for _, z := range p.AllZones() {
		if z.Kind == kind {
			n++
		}
	}
	return n
}

// NormalizeProportions returns a proportion array of length n summing to 1.
// A nil or mismatched input yields equal division; a non-unit sum is scaled.
// The input slice is never modified or retained.
func NormalizeProportions(props []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if len(props) != n {
		for i := range out {
			out[i] = 1.0 / float64(n)
		}
		return out
	}
	sum := 0.0
	for _, p := range props {
		if p > 0 {
			sum += p
		}
	}
	if sum <= 0 {
		for i := range out {
			out[i] = 1.0 / float64(n)
		}
		return out
	}
	for i, p := range props {
		if p < 0 {
			p = 0
		}
		out[i] = p / sum
	}
	return out
}
