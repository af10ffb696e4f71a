package cabinet

// MaterialRole names the construction role a material is assigned to.
type MaterialRole string

const (
	RoleCarcass     MaterialRole = "carcass"
	RoleBack        MaterialRole = "back"
	RoleFront       MaterialRole = "front"
	RoleShelf       MaterialRole = "shelf"
	RoleEdgeBanding MaterialRole = "edge-banding"
)

// ValidMaterialRoles is the set of roles a material assignment may use.
var ValidMaterialRoles = map[MaterialRole]bool{
	RoleCarcass:     true,
	RoleBack:        true,
	RoleFront:       true,
	RoleShelf:       true,
	RoleEdgeBanding: true,
}

// Material describes one sheet good or solid stock in the material library.
type Material struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Thickness float64 `json:"thickness"` // nominal thickness in mm
	Type      string  `json:"type,omitempty"` // e.g. "plywood", "mdf", "melamine"

	// EdgeBandingIDs lists the edge-banding materials compatible with this
	// sheet good. Empty means no restriction.
	EdgeBandingIDs []string `json:"edge_banding_ids,omitempty"`
}

// CompatibleBanding reports whether the given edge-banding material may be
// applied to this material. An empty compatibility list accepts anything.
func (m Material) CompatibleBanding(bandingID string) bool {
	if len(m.EdgeBandingIDs) == 0 {
		return true
	}
	for _, id := range m.EdgeBandingIDs {
		if id == bandingID {
			return true
		}
	}
	return false
}

// RoleAssignment binds a material to a construction role within a pattern.
// A non-zero Thickness overrides the library material's nominal thickness.
type RoleAssignment struct {
	MaterialID string  `json:"material_id"`
	Thickness  float64 `json:"thickness,omitempty"` // explicit override in mm
}
