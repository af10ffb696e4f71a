package cabinet

import "testing"

func TestEdgeFlagsLabel(t *testing.T) {
	for _, tc := range []struct {
		flags EdgeFlags
		want  string
	}{
		{EdgeFlags{}, ""},
		{EdgeFlags{L1: true}, "L1"},
		{EdgeFlags{L1: true, W2: true}, "L1, W2"},
		{EdgeFlags{L1: true, L2: true, W1: true, W2: true}, "L1, L2, W1, W2"},
	} {
		if got := tc.flags.Label(); got != tc.want {
			t.Errorf("Label(%+v) = %q, want %q", tc.flags, got, tc.want)
		}
	}
}

func TestEdgeFlagsLinearLength(t *testing.T) {
	f := EdgeFlags{L1: true, L2: true, W1: true}
	if got := f.LinearLength(600, 400); got != 1600 {
		t.Errorf("LinearLength = %v, want 1600", got)
	}
}

func TestConsolidate(t *testing.T) {
	parts := []CutPart{
		{PartName: "Side", Length: 720, Width: 560, Quantity: 2, MaterialID: "ply-18", CabinetID: "c1"},
		{PartName: "Back", Length: 684, Width: 564, Quantity: 1, MaterialID: "hdf-6", CabinetID: "c1"},
		{PartName: "Side", Length: 720, Width: 560, Quantity: 2, MaterialID: "ply-18", CabinetID: "c2"},
		// Same name, different size: stays separate.
		{PartName: "Side", Length: 900, Width: 560, Quantity: 2, MaterialID: "ply-18", CabinetID: "c3"},
	}

	got := Consolidate(parts)
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(got), got)
	}
	if got[0].PartName != "Side" || got[0].Quantity != 4 {
		t.Errorf("merged entry = %+v, want Side qty 4", got[0])
	}
	if got[0].CabinetID != "" {
		t.Errorf("merged entry keeps cabinet id %q", got[0].CabinetID)
	}
	// Unmerged entries keep their linkage.
	if got[1].CabinetID != "c1" {
		t.Errorf("Back lost its cabinet id: %+v", got[1])
	}
	if got[2].Length != 900 || got[2].Quantity != 2 {
		t.Errorf("differently sized Side was merged: %+v", got[2])
	}
}

func TestConsolidateRespectsGrainAndBanding(t *testing.T) {
	parts := []CutPart{
		{PartName: "Door", Length: 500, Width: 300, Quantity: 1, Grain: GrainLength},
		{PartName: "Door", Length: 500, Width: 300, Quantity: 1, Grain: GrainWidth},
		{PartName: "Shelf", Length: 500, Width: 300, Quantity: 1, EdgeBanding: "L1"},
		{PartName: "Shelf", Length: 500, Width: 300, Quantity: 1, EdgeBanding: "L1, L2"},
	}

	if got := Consolidate(parts); len(got) != 4 {
		t.Errorf("grain or banding mismatches must not merge, got %d entries", len(got))
	}
}
