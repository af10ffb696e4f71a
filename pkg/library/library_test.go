package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ernestoCruz05/ligna/pkg/cabinet"
)

func TestDefaultLibraryLookups(t *testing.T) {
	lib := Default()

	if m := lib.Material("ply-18"); m == nil || m.Thickness != 18 {
		t.Errorf("ply-18 = %+v, want 18mm plywood", m)
	}
	if j := lib.Joint("dado-6"); j == nil || !j.ExtendsInsertedPiece {
		t.Errorf("dado-6 = %+v, want an extending dado", j)
	}
	if rs := lib.RuleSet("frameless-overlay"); rs == nil || rs.SideConstruction != cabinet.SidesOnBottom {
		t.Errorf("frameless-overlay = %+v", rs)
	}
	if p := lib.Pattern("base-2col"); p == nil || len(p.Rules) == 0 {
		t.Errorf("base-2col = %+v, want a pattern with rules", p)
	}

	if lib.Material("nope") != nil || lib.Joint("nope") != nil ||
		lib.RuleSet("nope") != nil || lib.Pattern("nope") != nil {
		t.Error("unknown ids must return nil")
	}
}

// Every material and joint the default patterns and rule sets reference must
// exist in the default library.
func TestDefaultLibraryReferencesResolve(t *testing.T) {
	lib := Default()

	for _, rs := range lib.RuleSets {
		for role, id := range rs.RoleMaterials {
			if lib.Material(id) == nil {
				t.Errorf("rule set %s role %s references unknown material %q", rs.ID, role, id)
			}
		}
	}
	for _, p := range lib.Patterns {
		result := cabinet.ValidateAll(&p, lib.Materials, lib.Joints, nil)
		if len(result.Errors) != 0 {
			t.Errorf("pattern %s does not validate: %v", p.ID, result.Errors)
		}
		for _, r := range p.Rules {
			if r.MaterialID != "" && lib.Material(r.MaterialID) == nil {
				t.Errorf("pattern %s rule %s references unknown material %q", p.ID, r.Name, r.MaterialID)
			}
			for _, jointID := range r.EdgeJoints {
				if lib.Joint(jointID) == nil {
					t.Errorf("pattern %s rule %s references unknown joint %q", p.ID, r.Name, jointID)
				}
			}
		}
	}
}

func TestMergeShadowsById(t *testing.T) {
	lib := Default()
	count := len(lib.Materials)

	lib.Merge(&Library{
		Materials: []cabinet.Material{
			{ID: "ply-18", Name: "Shop plywood", Thickness: 17.5},
			{ID: "oak-20", Name: "Oak panel", Thickness: 20},
		},
	})

	if got := lib.Material("ply-18"); got.Thickness != 17.5 {
		t.Errorf("shadowed ply-18 thickness = %v, want 17.5", got.Thickness)
	}
	if lib.Material("oak-20") == nil {
		t.Error("new material was not appended")
	}
	if len(lib.Materials) != count+1 {
		t.Errorf("material count = %d, want %d", len(lib.Materials), count+1)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	doc := `{
		"materials": [{"id": "osb-12", "name": "OSB 12mm", "thickness": 12}],
		"patterns": [{"id": "base-2col", "name": "Custom base", "rules": [
			{"name": "Side", "length": "side_height", "width": "total_depth", "quantity": "2"}
		]}]
	}`
	if err := os.WriteFile(filepath.Join(dir, "shop.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	if lib.Material("osb-12") == nil {
		t.Error("user material not loaded")
	}
	// User documents shadow the built-in pattern of the same id.
	if p := lib.Pattern("base-2col"); p == nil || p.Name != "Custom base" {
		t.Errorf("base-2col = %+v, want the user's shadowing pattern", p)
	}
	// Untouched defaults remain.
	if lib.Material("ply-18") == nil {
		t.Error("defaults lost during merge")
	}
}

func TestLoadDirMissing(t *testing.T) {
	lib, err := LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing dir should not fail: %v", err)
	}
	if len(lib.Materials) == 0 {
		t.Error("missing dir should still yield the defaults")
	}
}

func TestLoadFileBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected a parse error")
	}
}
