package village

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/panchayat-backend/internal/domain"
	"github.com/yungbote/panchayat-backend/internal/platform/dbctx"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
)

// CategoryRepo writes category records of any type. The table comes from the record itself.
type CategoryRepo interface {
	Create(dbc dbctx.Context, rec types.CategoryRecord) error
	// UpdateByID overwrites every payload column and the draft flag of the row with
	// rec's ID. It returns gorm.ErrRecordNotFound when no such row exists.
	UpdateByID(dbc dbctx.Context, rec types.CategoryRecord) error
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) Create(dbc dbctx.Context, rec types.CategoryRecord) error {
	if rec == nil {
		return nil
	}
	return dbc.DB(r.db).Create(rec).Error
}

func (r *categoryRepo) UpdateByID(dbc dbctx.Context, rec types.CategoryRecord) error {
	if rec == nil || rec.Meta().ID == uuid.Nil {
		return gorm.ErrRecordNotFound
	}
	res := dbc.DB(r.db).
		Model(rec).
		Select("*").
		Omit("id", "created_at").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
