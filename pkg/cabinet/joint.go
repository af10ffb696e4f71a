package cabinet

// JointCategory enumerates the supported joinery categories.
type JointCategory string

const (
	JointButt         JointCategory = "butt"
	JointDado         JointCategory = "dado"
	JointRabbet       JointCategory = "rabbet"
	JointTongueGroove JointCategory = "tongue-groove"
	JointDowel        JointCategory = "dowel"
	JointCamLock      JointCategory = "cam-lock"
	JointPocketScrew  JointCategory = "pocket-screw"
	JointMiter        JointCategory = "miter"
)

// ValidJointCategories is the set of accepted joint categories.
var ValidJointCategories = map[JointCategory]bool{
	JointButt:         true,
	JointDado:         true,
	JointRabbet:       true,
	JointTongueGroove: true,
	JointDowel:        true,
	JointCamLock:      true,
	JointPocketScrew:  true,
	JointMiter:        true,
}

// JointType describes one joinery method from the joint library.
//
// Joints with ExtendsInsertedPiece set (dado, rabbet, tongue-groove) make the
// inserted piece longer: its edge sits inside a groove cut into the mating
// panel. All other categories are structural only and never change part
// dimensions.
type JointType struct {
	ID       string        `json:"id"`
	Name     string        `json:"name,omitempty"`
	Category JointCategory `json:"category"`
	Depth    float64       `json:"depth"`           // groove/recess depth in mm
	Width    float64       `json:"width,omitempty"` // groove width in mm, 0 = tool default

	ExtendsInsertedPiece bool    `json:"extends_inserted_piece"`
	Tolerance            float64 `json:"tolerance,omitempty"` // fit clearance subtracted from Depth

	// RequiredMaterialThickness, when non-zero, is the mating material
	// thickness this joint is cut for (cam-lock hardware, tongue cutters).
	RequiredMaterialThickness float64 `json:"required_material_thickness,omitempty"`
}

// Extension returns the dimensional gain the joint contributes to the
// inserted piece on one edge: depth minus fit tolerance, never negative.
// Structural joints contribute zero.
func (j JointType) Extension() float64 {
	if !j.ExtendsInsertedPiece {
		return 0
	}
	ext := j.Depth - j.Tolerance
	if ext < 0 {
		return 0
	}
	return ext
}
