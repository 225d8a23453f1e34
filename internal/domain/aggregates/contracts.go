package aggregates

import (
	"fmt"
	"strings"
)

// WriteTxOwnership says who opens the transaction around a write.
type WriteTxOwnership string

const (
	WriteTxOwnedByAggregate WriteTxOwnership = "aggregate_owned"
)

// ReadPolicy says which reads an aggregate is allowed to expose.
type ReadPolicy string

const (
	// ReadPolicyInvariantScoped: only reads a write needs to decide its invariants.
	ReadPolicyInvariantScoped ReadPolicy = "invariant_scoped_reads"
	// ReadPolicyTableRepoQueries: listing and lookup queries stay on the table repos.
	ReadPolicyTableRepoQueries ReadPolicy = "table_repo_queries"
)

// SlotPolicy governs how a parent record links to its child records.
type SlotPolicy string

const (
	// SlotLinkOnce: a slot is set on the first write and never repointed. Later writes
	// overwrite the linked child in place.
	SlotLinkOnce SlotPolicy = "link_once"
)

// Contract is the published behaviour of an aggregate.
type Contract struct {
	Name             string
	WriteTxOwnership WriteTxOwnership
	ReadPolicy       ReadPolicy
	SlotPolicy       SlotPolicy
	Notes            string
}

type Aggregate interface {
	Contract() Contract
}

func (c Contract) RequiresAggregateOwnedTx() bool {
	return c.WriteTxOwnership == WriteTxOwnedByAggregate
}

// Validate reports a contract with a missing name or an unknown policy value.
func (c Contract) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("aggregate contract: missing name")
	}
	if c.WriteTxOwnership != WriteTxOwnedByAggregate {
		return fmt.Errorf("aggregate contract %s: unknown tx ownership %q", c.Name, c.WriteTxOwnership)
	}
	switch c.ReadPolicy {
	case ReadPolicyInvariantScoped, ReadPolicyTableRepoQueries:
	default:
		return fmt.Errorf("aggregate contract %s: unknown read policy %q", c.Name, c.ReadPolicy)
	}
	switch c.SlotPolicy {
	case "", SlotLinkOnce:
	default:
		return fmt.Errorf("aggregate contract %s: unknown slot policy %q", c.Name, c.SlotPolicy)
	}
	return nil
}
