package cabinet

// SideConstruction selects how side panels meet the bottom and top.
type SideConstruction string

const (
	// SidesOnBottom: sides run full height, bottom and top sit between them.
	SidesOnBottom SideConstruction = "sides-on-bottom"
	// BottomBetweenSides: bottom runs full width, sides stand on it.
	BottomBetweenSides SideConstruction = "bottom-between-sides"
	// AllBetween: sides are captured between full-width bottom and top.
	AllBetween SideConstruction = "all-between"
)

// ValidSideConstructions is the set of accepted side construction methods.
var ValidSideConstructions = map[SideConstruction]bool{
	SidesOnBottom:      true,
	BottomBetweenSides: true,
	AllBetween:         true,
}

// BackPanelMethod selects how the back panel is attached.
type BackPanelMethod string

const (
	BackOverlay     BackPanelMethod = "overlay"      // nailed onto the rear edges
	BackInsetGroove BackPanelMethod = "inset-groove" // slides into grooves
	BackInsetRebate BackPanelMethod = "inset-rebate" // sits in a rebated recess
)

// ValidBackPanelMethods is the set of accepted back panel methods.
var ValidBackPanelMethods = map[BackPanelMethod]bool{
	BackOverlay:     true,
	BackInsetGroove: true,
	BackInsetRebate: true,
}

// DrawerConstruction selects the drawer box build style.
type DrawerConstruction string

const (
	DrawerSideMount    DrawerConstruction = "side-mount"
	DrawerUndermount   DrawerConstruction = "undermount"
	DrawerWoodenRunner DrawerConstruction = "wooden-runner"
)

// ValidDrawerConstructions is the set of accepted drawer construction styles.
var ValidDrawerConstructions = map[DrawerConstruction]bool{
	DrawerSideMount:    true,
	DrawerUndermount:   true,
	DrawerWoodenRunner: true,
}

// Offsets holds the standard construction offsets of a rule set.
// All values are millimetres and must be non-negative.
type Offsets struct {
	DrawerFrontGap     float64 `json:"drawer_front_gap"`
	DoorGap            float64 `json:"door_gap"`
	ShelfInset         float64 `json:"shelf_inset"`
	DrawerSlideOffset  float64 `json:"drawer_slide_offset"`
	BackPanelThickness float64 `json:"back_panel_thickness"`
	BackGrooveDepth    float64 `json:"back_groove_depth"`
}

// RuleSet is a named construction policy: how panels meet, how the back is
// set, standard gaps and the per-role default materials.
type RuleSet struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	SideConstruction   SideConstruction   `json:"side_construction"`
	BackPanelMethod    BackPanelMethod    `json:"back_panel_method"`
	DrawerConstruction DrawerConstruction `json:"drawer_construction"`

	Offsets Offsets `json:"offsets"`

	// RoleMaterials supplies default material ids per construction role,
	// used when neither the rule nor the pattern names a material.
	RoleMaterials map[MaterialRole]string `json:"role_materials,omitempty"`

	// EdgeBandingSets maps a part category (e.g. "door", "shelf") to the
	// edges banded by default when a rule declares no flags of its own.
	EdgeBandingSets map[string]EdgeFlags `json:"edge_banding_sets,omitempty"`
}
