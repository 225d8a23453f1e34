package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/panchayat-backend/internal/domain"
)

func SeedYear(tb testing.TB, ctx context.Context, tx *gorm.DB, label string) *types.Year {
	tb.Helper()
	y := &types.Year{ID: uuid.New(), Label: label}
	if err := tx.WithContext(ctx).Create(y).Error; err != nil {
		tb.Fatalf("seed year: %v", err)
	}
	return y
}

func SeedVillageInfo(tb testing.TB, ctx context.Context, tx *gorm.DB, yearID uuid.UUID, code int, name string) *types.VillageInfo {
	tb.Helper()
	v := &types.VillageInfo{
		ID:              uuid.New(),
		VillageCode:     code,
		SubdistrictCode: 7,
		VillageName:     name,
		YearID:          yearID,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed village info: %v", err)
	}
	return v
}

func CountRows(tb testing.TB, tx *gorm.DB, model any) int64 {
	tb.Helper()
	var n int64
	if err := tx.Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count %T: %v", model, err)
	}
	return n
}
