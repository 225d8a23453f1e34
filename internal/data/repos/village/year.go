package village

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/panchayat-backend/internal/domain"
	"github.com/yungbote/panchayat-backend/internal/platform/dbctx"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
)

type YearRepo interface {
	GetByLabel(dbc dbctx.Context, label string) (*types.Year, error)
	Create(dbc dbctx.Context, row *types.Year) error
	// FindOrCreate returns the year with label, inserting it when absent. An insert that
	// loses a race on the unique label is retried once as a lookup.
	FindOrCreate(dbc dbctx.Context, label string) (*types.Year, error)
	List(dbc dbctx.Context) ([]*types.Year, error)
}

type yearRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewYearRepo(db *gorm.DB, baseLog *logger.Logger) YearRepo {
	return &yearRepo{db: db, log: baseLog.With("repo", "YearRepo")}
}

func (r *yearRepo) GetByLabel(dbc dbctx.Context, label string) (*types.Year, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, nil
	}
	var row types.Year
	if err := dbc.DB(r.db).Where("label = ?", label).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *yearRepo) Create(dbc dbctx.Context, row *types.Year) error {
	if row == nil {
		return nil
	}
	row.Label = strings.TrimSpace(row.Label)
	return dbc.DB(r.db).Create(row).Error
}

func (r *yearRepo) FindOrCreate(dbc dbctx.Context, label string) (*types.Year, error) {
	existing, err := r.GetByLabel(dbc, label)
	if err != nil || existing != nil {
		return existing, err
	}

	row := &types.Year{Label: strings.TrimSpace(label)}
	// Savepoint so a failed insert leaves an enclosing Postgres transaction usable.
	createErr := dbc.DB(r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
	if createErr == nil {
		return row, nil
	}

	again, err := r.GetByLabel(dbc, label)
	if err != nil {
		return nil, err
	}
	if again != nil {
		r.log.Debug("year inserted concurrently, using existing row", "label", again.Label)
		return again, nil
	}
	return nil, createErr
}

func (r *yearRepo) List(dbc dbctx.Context) ([]*types.Year, error) {
	var rows []*types.Year
	if err := dbc.DB(r.db).Order("label DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
