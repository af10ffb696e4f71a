// Package library holds the reference-data collections the engine reads:
// materials, joint types, rule sets and cabinet patterns. Collections are
// loaded from JSON documents or seeded with the built-in defaults; the
// engine never writes through them.
package library

import "github.com/ernestoCruz05/ligna/pkg/cabinet"

// Library is one collection of reference data. Lookups are by id over a
// linear scan; collections stay small.
type Library struct {
	Materials []cabinet.Material       `json:"materials,omitempty"`
	Joints    []cabinet.JointType      `json:"joints,omitempty"`
	RuleSets  []cabinet.RuleSet        `json:"rule_sets,omitempty"`
	Patterns  []cabinet.CabinetPattern `json:"patterns,omitempty"`
}

// Material returns the material with the given id, or nil.
func (l *Library) Material(id string) *cabinet.Material {
	for i := range l.Materials {
		if l.Materials[i].ID == id {
			return &l.Materials[i]
		}
	}
	return nil
}

// Joint returns the joint type with the given id, or nil.
func (l *Library) Joint(id string) *cabinet.JointType {
	for i := range l.Joints {
		if l.Joints[i].ID == id {
			return &l.Joints[i]
		}
	}
	return nil
}

// RuleSet returns the rule set with the given id, or nil.
func (l *Library) RuleSet(id string) *cabinet.RuleSet {
	for i := range l.RuleSets {
		if l.RuleSets[i].ID == id {
			return &l.RuleSets[i]
		}
	}
	return nil
}

// Pattern returns the pattern with the given id, or nil.
func (l *Library) Pattern(id string) *cabinet.CabinetPattern {
	for i := range l.Patterns {
		if l.Patterns[i].ID == id {
			return &l.Patterns[i]
		}
	}
	return nil
}

// Merge appends the other library's entries. Entries with ids already
// present are replaced, so user documents can shadow the defaults.
func (l *Library) Merge(other *Library) {
	for _, m := range other.Materials {
		if existing := l.Material(m.ID); existing != nil {
			*existing = m
		} else {
			l.Materials = append(l.Materials, m)
		}
	}
	for _, j := range other.Joints {
		if existing := l.Joint(j.ID); existing != nil {
			*existing = j
		} else {
			l.Joints = append(l.Joints, j)
		}
	}
	for _, rs := range other.RuleSets {
		if existing := l.RuleSet(rs.ID); existing != nil {
			*existing = rs
		} else {
			l.RuleSets = append(l.RuleSets, rs)
		}
	}
	for _, p := range other.Patterns {
		if existing := l.Pattern(p.ID); existing != nil {
			*existing = p
		} else {
			l.Patterns = append(l.Patterns, p)
		}
	}
}
