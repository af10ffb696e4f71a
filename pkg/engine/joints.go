package engine

import (
	"fmt"

	"github.com/ernestoCruz05/ligna/pkg/cabinet"
)

// edgeExtensions computes the dimensional gain a rule's edge joints add to
// the part. A joint on a width edge (W1/W2, the ends) extends the length; a
// joint on a length edge (L1/L2) extends the width. Each edge contributes
// independently and the contributions sum per dimension.
//
// Unknown joint ids contribute nothing beyond a warning.
func edgeExtensions(rule cabinet.PartRule, joints map[string]cabinet.JointType) (lengthExt, widthExt float64, warnings []Warning) {
	for edge, jointID := range rule.EdgeJoints {
		j, ok := joints[jointID]
		if !ok {
			warnings = append(warnings, Warning{
				Rule:    rule.Name,
				Message: fmt.Sprintf("edge %s references unknown joint %q; no extension applied", edge, jointID),
			})
			continue
		}
		ext := j.Extension()
		switch edge {
		case cabinet.EdgeW1, cabinet.EdgeW2:
			lengthExt += ext
		case cabinet.EdgeL1, cabinet.EdgeL2:
			widthExt += ext
		default:
			warnings = append(warnings, Warning{
				Rule:    rule.Name,
				Message: fmt.Sprintf("unknown edge %q in edge_joints; no extension applied", edge),
			})
		}
	}
	return lengthExt, widthExt, warnings
}
