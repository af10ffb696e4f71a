package cabinet

import "fmt"

// ValidationSeverity indicates whether a validation finding blocks a
// calculation or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks calculation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Rule     string             // part rule the finding refers to ("" if pattern-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] rule %q: %s", e.Severity, e.Rule, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Rule    string
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory)
// from all validation tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Validate runs all Tier 1 structural checks on the pattern and returns a
// slice of validation errors. An empty slice means the pattern is
// structurally sound. The function is read-only and never mutates the
// pattern.
func Validate(p *CabinetPattern) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateRules(p)...)
	errs = append(errs, validateLayout(p)...)
	return errs
}

// ValidateAll runs all validation tiers: structural, numeric and material
// advisories, resolving references against the supplied libraries.
func ValidateAll(p *CabinetPattern, materials []Material, joints []JointType, rs *RuleSet) ValidationResult {
	tier1 := Validate(p)
	tier2 := validateNumeric(p, rs)
	tier3 := validateMaterials(p, materials, joints)

	var result ValidationResult
	for _, e := range tier1 {
		if e.Severity == SeverityError {
			result.Errors = append(result.Errors, e)
		} else {
			result.Warnings = append(result.Warnings, ValidationWarning{Rule: e.Rule, Message: e.Message})
		}
	}
	result.Warnings = append(result.Warnings, tier2...)
	result.Warnings = append(result.Warnings, tier3...)
	return result
}

// validateRules checks part rule structure: names present and unique,
// dimension formulas present, enum fields recognized.
func validateRules(p *CabinetPattern) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool)

	for _, r := range p.Rules {
		if r.Name == "" {
			errs = append(errs, ValidationError{
				Message:  "part rule has no name",
				Severity: SeverityError,
			})
			continue
		}
		if seen[r.Name] {
			errs = append(errs, ValidationError{
				Rule:     r.Name,
				Message:  "duplicate part rule name",
				Severity: SeverityError,
			})
		}
		seen[r.Name] = true

		if r.Length == "" {
			errs = append(errs, ValidationError{
				Rule:     r.Name,
				Message:  "length formula is empty",
				Severity: SeverityError,
			})
		}
		if r.Width == "" {
			errs = append(errs, ValidationError{
				Rule:     r.Name,
				Message:  "width formula is empty",
				Severity: SeverityError,
			})
		}
		if r.Role != "" && !ValidMaterialRoles[r.Role] {
			errs = append(errs, ValidationError{
				Rule:     r.Name,
				Message:  fmt.Sprintf("unknown material role %q", r.Role),
				Severity: SeverityError,
			})
		}
		if r.Grain != GrainAny && r.Grain != GrainLength && r.Grain != GrainWidth {
			errs = append(errs, ValidationError{
				Rule:     r.Name,
				Message:  fmt.Sprintf("unknown grain direction %q", r.Grain),
				Severity: SeverityError,
			})
		}
		for edge := range r.EdgeJoints {
			if !ValidEdges[edge] {
				errs = append(errs, ValidationError{
					Rule:     r.Name,
					Message:  fmt.Sprintf("unknown edge %q in edge_joints", edge),
					Severity: SeverityError,
				})
			}
		}
	}

	return errs
}

// validateLayout checks the zone/column layout: recognized zone kinds,
// non-empty columns and proportion arrays matching their lists.
func validateLayout(p *CabinetPattern) []ValidationError {
	var errs []ValidationError

	checkZones := func(zones []Zone, where string) {
		for i, z := range zones {
			if !ValidZoneKinds[z.Kind] {
				errs = append(errs, ValidationError{
					Message:  fmt.Sprintf("%s zone %d has unknown kind %q", where, i, z.Kind),
					Severity: SeverityError,
				})
			}
		}
	}

	checkZones(p.Zones, "flat")
	for i, c := range p.Columns {
		if len(c.Zones) == 0 {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("column %d has no zones", i),
				Severity: SeverityError,
			})
		}
		checkZones(c.Zones, fmt.Sprintf("column %d", i))
		if len(c.ZoneProportions) > 0 && len(c.ZoneProportions) != len(c.Zones) {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("column %d has %d zone proportions for %d zones",
					i, len(c.ZoneProportions), len(c.Zones)),
				Severity: SeverityError,
			})
		}
	}
	if len(p.ColumnProportions) > 0 && len(p.ColumnProportions) != len(p.Columns) {
		errs = append(errs, ValidationError{
			Message: fmt.Sprintf("%d column proportions for %d columns",
				len(p.ColumnProportions), len(p.Columns)),
			Severity: SeverityError,
		})
	}
	if len(p.ZoneProportions) > 0 && len(p.ZoneProportions) != len(p.Zones) {
		errs = append(errs, ValidationError{
			Message: fmt.Sprintf("%d zone proportions for %d zones",
				len(p.ZoneProportions), len(p.Zones)),
			Severity: SeverityError,
		})
	}

	return errs
}
