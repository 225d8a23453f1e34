package aggregates

import "testing"

func TestVillageInfoContractIsValid(t *testing.T) {
	c := VillageInfoAggregateContract
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !c.RequiresAggregateOwnedTx() {
		t.Fatalf("village info writes must own their transaction")
	}
	if c.SlotPolicy != SlotLinkOnce {
		t.Fatalf("slot policy: want=%s got=%s", SlotLinkOnce, c.SlotPolicy)
	}
}

func TestContractValidateRejectsUnknownPolicies(t *testing.T) {
	cases := map[string]Contract{
		"no name":     {WriteTxOwnership: WriteTxOwnedByAggregate, ReadPolicy: ReadPolicyInvariantScoped},
		"caller tx":   {Name: "x", WriteTxOwnership: "caller_owned", ReadPolicy: ReadPolicyInvariantScoped},
		"read policy": {Name: "x", WriteTxOwnership: WriteTxOwnedByAggregate, ReadPolicy: "anything"},
		"slot policy": {Name: "x", WriteTxOwnership: WriteTxOwnedByAggregate, ReadPolicy: ReadPolicyInvariantScoped, SlotPolicy: "relink"},
	}
	for name, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
