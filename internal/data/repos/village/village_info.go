package village

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/panchayat-backend/internal/domain"
	vdomain "github.com/yungbote/panchayat-backend/internal/domain/village"
	"github.com/yungbote/panchayat-backend/internal/platform/dbctx"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
)

type VillageInfoRepo interface {
	GetByCodeAndYear(dbc dbctx.Context, villageCode int, yearID uuid.UUID) (*types.VillageInfo, error)
	Create(dbc dbctx.Context, row *types.VillageInfo) error
	// UpdateDetails rewrites the display fields and draft flag. The natural key is left alone.
	UpdateDetails(dbc dbctx.Context, id uuid.UUID, villageName string, subdistrictCode int, isDraft bool) error
	// SetSlot points the slot column at recordID.
	SetSlot(dbc dbctx.Context, id uuid.UUID, column string, recordID uuid.UUID) error
	GetWithSlots(dbc dbctx.Context, id uuid.UUID) (*types.VillageInfo, error)
	GetByCodeAndYearWithSlots(dbc dbctx.Context, villageCode int, yearID uuid.UUID) (*types.VillageInfo, error)
}

type villageInfoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVillageInfoRepo(db *gorm.DB, baseLog *logger.Logger) VillageInfoRepo {
	return &villageInfoRepo{db: db, log: baseLog.With("repo", "VillageInfoRepo")}
}

func (r *villageInfoRepo) GetByCodeAndYear(dbc dbctx.Context, villageCode int, yearID uuid.UUID) (*types.VillageInfo, error) {
	if villageCode <= 0 || yearID == uuid.Nil {
		return nil, nil
	}
	var row types.VillageInfo
	if err := dbc.DB(r.db).
		Where("village_code = ? AND year_id = ?", villageCode, yearID).
		Limit(1).
		Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *villageInfoRepo) Create(dbc dbctx.Context, row *types.VillageInfo) error {
	if row == nil {
		return nil
	}
	return dbc.DB(r.db).Omit(clause.Associations).Create(row).Error
}

func (r *villageInfoRepo) UpdateDetails(dbc dbctx.Context, id uuid.UUID, villageName string, subdistrictCode int, isDraft bool) error {
	return r.updateFields(dbc, id, map[string]any{
		"village_name":     villageName,
		"subdistrict_code": subdistrictCode,
		"is_draft":         isDraft,
	})
}

func (r *villageInfoRepo) SetSlot(dbc dbctx.Context, id uuid.UUID, column string, recordID uuid.UUID) error {
	return r.updateFields(dbc, id, map[string]any{column: recordID})
}

func (r *villageInfoRepo) updateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]any) error {
	if id == uuid.Nil {
		return gorm.ErrRecordNotFound
	}
	updates["updated_at"] = time.Now().UTC()
	res := dbc.DB(r.db).
		Model(&types.VillageInfo{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *villageInfoRepo) GetWithSlots(dbc dbctx.Context, id uuid.UUID) (*types.VillageInfo, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	return r.findWithSlots(dbc, "id = ?", id)
}

func (r *villageInfoRepo) GetByCodeAndYearWithSlots(dbc dbctx.Context, villageCode int, yearID uuid.UUID) (*types.VillageInfo, error) {
	if villageCode <= 0 || yearID == uuid.Nil {
		return nil, nil
	}
	return r.findWithSlots(dbc, "village_code = ? AND year_id = ?", villageCode, yearID)
}

func (r *villageInfoRepo) findWithSlots(dbc dbctx.Context, where string, args ...any) (*types.VillageInfo, error) {
	q := dbc.DB(r.db).Preload("Year")
	for _, rel := range vdomain.SlotRelations() {
		q = q.Preload(rel)
	}
	var row types.VillageInfo
	if err := q.Where(where, args...).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}
