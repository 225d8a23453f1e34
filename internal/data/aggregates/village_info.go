package aggregates

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/panchayat-backend/internal/data/repos"
	domainagg "github.com/yungbote/panchayat-backend/internal/domain/aggregates"
	"github.com/yungbote/panchayat-backend/internal/domain/village"
	"github.com/yungbote/panchayat-backend/internal/platform/dbctx"
)

type VillageInfoAggregateDeps struct {
	Base BaseDeps

	Years      repos.YearRepo
	Villages   repos.VillageInfoRepo
	Categories repos.CategoryRepo
}

type villageInfoAggregate struct {
	deps VillageInfoAggregateDeps
}

func NewVillageInfoAggregate(deps VillageInfoAggregateDeps) domainagg.VillageInfoAggregate {
	deps.Base = deps.Base.withDefaults()
	deps.Base.Log = deps.Base.Log.With("aggregate", "VillageInfoAggregate")
	return &villageInfoAggregate{deps: deps}
}

func (a *villageInfoAggregate) Contract() domainagg.Contract {
	return domainagg.VillageInfoAggregateContract
}

// Upsert mutates in.Record: its ID is set to the id of the row it was written to.
func (a *villageInfoAggregate) Upsert(ctx context.Context, in domainagg.UpsertVillageInfoInput) (*village.VillageInfo, error) {
	const op = "Village.VillageInfo.Upsert"

	label := strings.TrimSpace(in.Core.YearLabel)
	if label == "" {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "missing year label", nil)
	}
	if in.Core.VillageCode <= 0 {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "village_code must be positive", nil)
	}
	def, ok := village.Lookup(in.Category)
	if !ok {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, fmt.Sprintf("unknown category %q", in.Category), nil)
	}
	if in.Record == nil || reflect.TypeOf(in.Record) != reflect.TypeOf(def.New()) {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, fmt.Sprintf("record type %T does not match category %q", in.Record, in.Category), nil)
	}
	if a.deps.Years == nil || a.deps.Villages == nil || a.deps.Categories == nil {
		return nil, domainagg.NewError(domainagg.CodeInternal, op, "village info aggregate repos not configured", nil)
	}

	var (
		out    *village.VillageInfo
		action string
	)
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		year, err := a.deps.Years.FindOrCreate(dbc, label)
		if err != nil {
			return err
		}
		if year == nil {
			return InvariantError("year lookup returned no row")
		}

		row, err := a.deps.Villages.GetByCodeAndYear(dbc, in.Core.VillageCode, year.ID)
		if err != nil {
			return err
		}
		if row == nil {
			row = &village.VillageInfo{
				VillageCode:     in.Core.VillageCode,
				SubdistrictCode: in.Core.SubdistrictCode,
				VillageName:     strings.TrimSpace(in.Core.VillageName),
				YearID:          year.ID,
				IsDraft:         in.IsDraft,
			}
			if err := a.deps.Villages.Create(dbc, row); err != nil {
				return err
			}
		} else if err := a.deps.Villages.UpdateDetails(dbc, row.ID, strings.TrimSpace(in.Core.VillageName), in.Core.SubdistrictCode, in.IsDraft); err != nil {
			return err
		}

		meta := in.Record.Meta()
		meta.IsDraft = in.IsDraft
		if slot := def.SlotID(row); slot != nil && *slot != uuid.Nil {
			// The link is never replaced; the linked row is overwritten in place.
			meta.ID = *slot
			if err := a.deps.Categories.UpdateByID(dbc, in.Record); err != nil {
				return err
			}
			action = SlotUpdated
		} else {
			meta.ID = uuid.Nil
			if err := a.deps.Categories.Create(dbc, in.Record); err != nil {
				return err
			}
			if err := a.deps.Villages.SetSlot(dbc, row.ID, def.Column, meta.ID); err != nil {
				return err
			}
			action = SlotCreated
		}

		loaded, err := a.deps.Villages.GetWithSlots(dbc, row.ID)
		if err != nil {
			return err
		}
		if loaded == nil {
			return gorm.ErrRecordNotFound
		}
		out = loaded
		return nil
	})
	if err != nil {
		a.deps.Base.Log.Debug("upsert failed",
			"village_code", in.Core.VillageCode,
			"year", label,
			"category", string(in.Category),
			"code", string(domainagg.CodeOf(err)),
		)
		return nil, err
	}
	a.deps.Base.Hooks.ObserveSlotWrite(string(def.Category), action)
	return out, nil
}
