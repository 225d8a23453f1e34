package aggregates

import (
	"context"

	"github.com/yungbote/panchayat-backend/internal/domain/village"
)

var VillageInfoAggregateContract = Contract{
	Name:             "Village.VillageInfoAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	SlotPolicy:       SlotLinkOnce,
	Notes:            "Owns find-or-create of year + village record and the one-owner category slot link.",
}

// VillageInfoAggregate owns the village record and its category slots.
//
// Write method failures return *aggregates.Error with codes:
// CodeValidation, CodeNotFound, CodeConflict, CodeRetryable, CodeInternal.
type VillageInfoAggregate interface {
	Aggregate

	// Upsert resolves or creates the year and the village record for in.Core, then creates or
	// updates in place the record in the slot selected by in.Category. It returns the village
	// with every slot loaded.
	Upsert(ctx context.Context, in UpsertVillageInfoInput) (*village.VillageInfo, error)
}

type UpsertVillageInfoInput struct {
	Core     village.CoreKey
	Category village.Category
	// Record holds the validated payload. Its type must match Category.
	Record  village.Record
	IsDraft bool
}
