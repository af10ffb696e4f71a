// Package cabinet defines the cabinet design data model for Ligna.
// Patterns, materials, joint types and rule sets are immutable reference
// data owned by the library; the engine only ever reads them.
package cabinet
