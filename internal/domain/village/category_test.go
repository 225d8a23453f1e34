package village

import (
	"testing"

	"github.com/google/uuid"
)

func TestEveryCategoryHasADefinition(t *testing.T) {
	seenColumns := map[string]bool{}
	for _, c := range Categories() {
		def, ok := Lookup(c)
		if !ok {
			t.Fatalf("missing definition for %q", c)
		}
		if def.Category != c {
			t.Fatalf("category: want=%q got=%q", c, def.Category)
		}
		if seenColumns[def.Column] {
			t.Fatalf("column %q used twice", def.Column)
		}
		seenColumns[def.Column] = true
		if def.New() == nil {
			t.Fatalf("%q: New returned nil", c)
		}
	}
	if len(seenColumns) != len(categoryDefs) {
		t.Fatalf("order/defs mismatch: order=%d defs=%d", len(seenColumns), len(categoryDefs))
	}
}

func TestSlotAccessorsPointAtTheirOwnColumn(t *testing.T) {
	v := &VillageInfo{}
	id := uuid.New()
	v.LandUseID = &id
	for _, c := range Categories() {
		def, _ := Lookup(c)
		got := def.SlotID(v)
		if c == CategoryLandUse {
			if got == nil || *got != id {
				t.Fatalf("land_use slot: want=%s got=%v", id, got)
			}
			continue
		}
		if got != nil {
			t.Fatalf("%q slot should be empty, got=%v", c, got)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory(" Land_Use "); !ok || c != CategoryLandUse {
		t.Fatalf("ParseCategory: got=%q ok=%v", c, ok)
	}
	if _, ok := ParseCategory("tenders"); ok {
		t.Fatalf("unknown tag should not parse")
	}
}
