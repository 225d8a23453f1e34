package village

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/panchayat-backend/internal/data/repos/testutil"
	types "github.com/yungbote/panchayat-backend/internal/domain"
	"github.com/yungbote/panchayat-backend/internal/platform/dbctx"
)

func TestVillageInfoRepoSlotLifecycle(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	log := testutil.Logger(t)

	villages := NewVillageInfoRepo(tx, log)
	categories := NewCategoryRepo(tx, log)

	year := testutil.SeedYear(t, ctx, tx, "2023-24")
	seeded := testutil.SeedVillageInfo(t, ctx, tx, year.ID, 100234, "Lakeview")

	got, err := villages.GetByCodeAndYear(dbc, 100234, year.ID)
	if err != nil {
		t.Fatalf("GetByCodeAndYear: %v", err)
	}
	if got == nil || got.ID != seeded.ID {
		t.Fatalf("GetByCodeAndYear: want=%s got=%v", seeded.ID, got)
	}
	if other, _ := villages.GetByCodeAndYear(dbc, 100235, year.ID); other != nil {
		t.Fatalf("unexpected row for unknown code: %+v", other)
	}

	pop := &types.Population{TotalPopulation: 5321, Households: 1203}
	if err := categories.Create(dbc, pop); err != nil {
		t.Fatalf("Create population: %v", err)
	}
	if pop.ID == uuid.Nil {
		t.Fatalf("population id should be assigned on create")
	}
	if err := villages.SetSlot(dbc, seeded.ID, "population_id", pop.ID); err != nil {
		t.Fatalf("SetSlot: %v", err)
	}
	if err := villages.UpdateDetails(dbc, seeded.ID, "Lakeview East", 8, true); err != nil {
		t.Fatalf("UpdateDetails: %v", err)
	}

	loaded, err := villages.GetWithSlots(dbc, seeded.ID)
	if err != nil {
		t.Fatalf("GetWithSlots: %v", err)
	}
	if loaded.Population == nil || loaded.Population.TotalPopulation != 5321 {
		t.Fatalf("population slot not loaded: %+v", loaded.Population)
	}
	if loaded.Education != nil || loaded.Amenities != nil {
		t.Fatalf("empty slots should stay nil")
	}
	if loaded.Year == nil || loaded.Year.Label != "2023-24" {
		t.Fatalf("year not loaded: %+v", loaded.Year)
	}
	if loaded.VillageName != "Lakeview East" || loaded.SubdistrictCode != 8 || !loaded.IsDraft {
		t.Fatalf("details not updated: %+v", loaded)
	}
	if loaded.VillageCode != 100234 || loaded.YearID != year.ID {
		t.Fatalf("natural key changed: code=%d year=%s", loaded.VillageCode, loaded.YearID)
	}

	byKey, err := villages.GetByCodeAndYearWithSlots(dbc, 100234, year.ID)
	if err != nil || byKey == nil || byKey.Population == nil {
		t.Fatalf("GetByCodeAndYearWithSlots: row=%v err=%v", byKey, err)
	}
}

func TestVillageInfoRepoUpdateMissingRow(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewVillageInfoRepo(tx, testutil.Logger(t))

	err := repo.UpdateDetails(dbctx.Context{Ctx: context.Background()}, uuid.New(), "Ghost", 1, false)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestCategoryRepoUpdateByIDOverwritesInPlace(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background()}
	repo := NewCategoryRepo(tx, testutil.Logger(t))

	edu := &types.Education{PrimarySchools: 3, LiteracyRate: 71.5}
	edu.IsDraft = true
	if err := repo.Create(dbc, edu); err != nil {
		t.Fatalf("Create: %v", err)
	}

	next := &types.Education{PrimarySchools: 0, Colleges: 1}
	next.ID = edu.ID
	next.IsDraft = false
	if err := repo.UpdateByID(dbc, next); err != nil {
		t.Fatalf("UpdateByID: %v", err)
	}

	var reloaded types.Education
	if err := tx.Where("id = ?", edu.ID).First(&reloaded).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.PrimarySchools != 0 || reloaded.Colleges != 1 || reloaded.LiteracyRate != 0 {
		t.Fatalf("zero values should be written too: %+v", reloaded)
	}
	if reloaded.IsDraft {
		t.Fatalf("draft flag should be cleared")
	}
	if reloaded.CreatedAt.IsZero() {
		t.Fatalf("created_at must survive the update")
	}

	ghost := &types.Education{}
	ghost.ID = uuid.New()
	if err := repo.UpdateByID(dbc, ghost); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound for missing row, got %v", err)
	}
}
