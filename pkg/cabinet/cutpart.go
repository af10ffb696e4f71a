package cabinet

import "strings"

// Grain is the preferred grain direction of a cut part.
type Grain string

const (
	GrainLength Grain = "length" // grain runs along the part's length
	GrainWidth  Grain = "width"  // grain runs along the part's width
	GrainAny    Grain = ""       // no preference
)

// Edge names one of the four edges of a rectangular part.
// L1/L2 are the two long (length) edges, W1/W2 the two ends.
type Edge string

const (
	EdgeL1 Edge = "L1"
	EdgeL2 Edge = "L2"
	EdgeW1 Edge = "W1"
	EdgeW2 Edge = "W2"
)

// ValidEdges is the set of accepted edge names.
var ValidEdges = map[Edge]bool{
	EdgeL1: true,
	EdgeL2: true,
	EdgeW1: true,
	EdgeW2: true,
}

// EdgeFlags marks which edges of a part receive edge banding.
type EdgeFlags struct {
	L1 bool `json:"l1,omitempty"`
	L2 bool `json:"l2,omitempty"`
	W1 bool `json:"w1,omitempty"`
	W2 bool `json:"w2,omitempty"`
}

// HasAny reports whether any edge is flagged.
func (f EdgeFlags) HasAny() bool {
	return f.L1 || f.L2 || f.W1 || f.W2
}

// Count returns the number of flagged edges.
func (f EdgeFlags) Count() int {
	n := 0
	for _, b := range []bool{f.L1, f.L2, f.W1, f.W2} {
		if b {
			n++
		}
	}
	return n
}

// Label renders the flags as a short descriptor such as "L1, W2".
// No flags produce an empty label.
func (f EdgeFlags) Label() string {
	var edges []string
	if f.L1 {
		edges = append(edges, string(EdgeL1))
	}
	if f.L2 {
		edges = append(edges, string(EdgeL2))
	}
	if f.W1 {
		edges = append(edges, string(EdgeW1))
	}
	if f.W2 {
		edges = append(edges, string(EdgeW2))
	}
	return strings.Join(edges, ", ")
}

// LinearLength returns the total banded edge length in mm for a part of the
// given dimensions: length edges contribute the length, width edges the width.
func (f EdgeFlags) LinearLength(length, width float64) float64 {
	total := 0.0
	if f.L1 {
		total += length
	}
	if f.L2 {
		total += length
	}
	if f.W1 {
		total += width
	}
	if f.W2 {
		total += width
	}
	return total
}

// CutPart is one physical board to cut: the final manufacturable record
// emitted by the part rule processor. Dimensions are rounded to whole mm.
//
// CabinetID, CabinetName and ZoneID are linkage fields attached by the
// caller after emission; the engine leaves them empty.
type CutPart struct {
	PartName string `json:"part_name"`
	Length   int    `json:"length"` // mm
	Width    int    `json:"width"`  // mm
	Quantity int    `json:"quantity"`

	MaterialID  string `json:"material_id,omitempty"`
	Grain       Grain  `json:"grain,omitempty"`
	EdgeBanding string `json:"edge_banding,omitempty"` // e.g. "L1, W2"

	CabinetID   string `json:"cabinet_id,omitempty"`
	CabinetName string `json:"cabinet_name,omitempty"`
	ZoneID      string `json:"zone_id,omitempty"`
}

// sameCut reports whether two parts are interchangeable on the saw:
// identical dimensions, material, grain and banding. Linkage fields and the
// part name do not affect the cut, but the name is kept in the key so the
// consolidated list stays readable.
func (p CutPart) sameCut(o CutPart) bool {
	return p.PartName == o.PartName &&
		p.Length == o.Length && p.Width == o.Width &&
		p.MaterialID == o.MaterialID &&
		p.Grain == o.Grain &&
		p.EdgeBanding == o.EdgeBanding
}

// Consolidate merges interchangeable parts across cabinets by summing their
// quantities. First-occurrence order is preserved; linkage fields of merged
// entries are cleared since they no longer identify a single cabinet.
func Consolidate(parts []CutPart) []CutPart {
	out := make([]CutPart, 0, len(parts))
	for _, p := range parts {
		merged := false
		for i := range out {
			if out[i].sameCut(p) {
				out[i].Quantity += p.Quantity
				out[i].CabinetID = ""
				out[i].CabinetName = ""
				out[i].ZoneID = ""
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, p)
		}
	}
	return out
}
