package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/panchayat-backend/internal/data/repos"
	types "github.com/yungbote/panchayat-backend/internal/domain"
	domainagg "github.com/yungbote/panchayat-backend/internal/domain/aggregates"
	"github.com/yungbote/panchayat-backend/internal/domain/village"
	"github.com/yungbote/panchayat-backend/internal/observability"
	"github.com/yungbote/panchayat-backend/internal/platform/cache"
	"github.com/yungbote/panchayat-backend/internal/platform/ctxutil"
	"github.com/yungbote/panchayat-backend/internal/platform/dbctx"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
	"github.com/yungbote/panchayat-backend/internal/platform/validate"
)

const (
	MsgSubmitted        = "Village information submitted successfully"
	MsgCoreInvalid      = "core data validation failed"
	MsgNotFoundOnUpdate = "record not found during update"
	MsgSaveFailed       = "failed to save village information"

	CodeValidation = string(domainagg.CodeValidation)
	CodeConflict   = string(domainagg.CodeConflict)
	CodeNotFound   = string(domainagg.CodeNotFound)
	CodeInternal   = string(domainagg.CodeInternal)
)

// SubmitVillageInfoRequest is the raw form submission. Core and Payload stay undecoded so
// type mismatches can be reported per field.
type SubmitVillageInfoRequest struct {
	Core     json.RawMessage `json:"core"`
	Category string          `json:"category"`
	Payload  json.RawMessage `json:"payload"`
	IsDraft  bool            `json:"is_draft"`
}

// ActionResult is the discriminated outcome of a submission. Success results carry Data;
// failures carry Code and, for validation and conflicts, per-field Errors.
type ActionResult struct {
	Success bool                `json:"success"`
	Data    *types.VillageInfo  `json:"data,omitempty"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Code    string              `json:"code,omitempty"`
	Detail  string              `json:"detail,omitempty"`
}

type VillageInfoService interface {
	// Submit validates and persists one category of a village record. It never panics and
	// never returns an error; every failure is described by the result.
	Submit(ctx context.Context, req SubmitVillageInfoRequest) ActionResult
	// Get returns the village record with all slots for (villageCode, yearLabel), or nil when
	// it does not exist or cannot be read. It never creates a year.
	Get(ctx context.Context, villageCode int, yearLabel string) *types.VillageInfo
	ListYears(ctx context.Context) ([]*types.Year, error)
}

type villageInfoService struct {
	db        *gorm.DB
	log       *logger.Logger
	aggregate domainagg.VillageInfoAggregate
	years     repos.YearRepo
	villages  repos.VillageInfoRepo
	cache     cache.Cache
	cacheTTL  time.Duration
	metrics   *observability.Metrics
}

func NewVillageInfoService(
	db *gorm.DB,
	baseLog *logger.Logger,
	aggregate domainagg.VillageInfoAggregate,
	years repos.YearRepo,
	villages repos.VillageInfoRepo,
	readCache cache.Cache,
	cacheTTL time.Duration,
	metrics *observability.Metrics,
) VillageInfoService {
	if readCache == nil {
		readCache = cache.Noop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &villageInfoService{
		db:        db,
		log:       baseLog.With("service", "VillageInfoService"),
		aggregate: aggregate,
		years:     years,
		villages:  villages,
		cache:     readCache,
		cacheTTL:  cacheTTL,
		metrics:   metrics,
	}
}

func (s *villageInfoService) Submit(ctx context.Context, req SubmitVillageInfoRequest) (res ActionResult) {
	category := "unknown"
	if c, ok := village.ParseCategory(req.Category); ok {
		category = string(c)
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("village info submit panicked", append(ctxutil.LogFields(ctx), "category", category, "panic", r)...)
			res = ActionResult{Message: MsgSaveFailed, Code: CodeInternal, Detail: fmt.Sprint(r)}
		}
		code := res.Code
		if res.Success {
			code = "success"
		}
		s.metrics.IncSubmission(category, code)
	}()

	var core village.CoreKey
	if fe := validate.DecodeStrict(req.Core, &core); fe != nil {
		return validationFailure(MsgCoreInvalid, fe)
	}
	core.VillageName = strings.TrimSpace(core.VillageName)
	core.YearLabel = strings.TrimSpace(core.YearLabel)
	if fe := validate.Struct(core); fe != nil {
		return validationFailure(MsgCoreInvalid, fe)
	}

	cat, ok := village.ParseCategory(req.Category)
	if !ok {
		return ActionResult{
			Message: fmt.Sprintf("unknown category %q", req.Category),
			Errors:  map[string][]string{"category": {"unknown category"}},
			Code:    CodeValidation,
		}
	}
	def, _ := village.Lookup(cat)
	rec := def.New()
	payloadInvalid := fmt.Sprintf("%s data validation failed", cat)
	if fe := validate.DecodeStrict(req.Payload, rec); fe != nil {
		return validationFailure(payloadInvalid, fe)
	}
	if fe := validate.Struct(rec); fe != nil {
		return validationFailure(payloadInvalid, fe)
	}
	// Identity and timestamps are owned by the store, never by the form.
	*rec.Meta() = village.RecordMeta{}

	out, err := s.aggregate.Upsert(ctx, domainagg.UpsertVillageInfoInput{
		Core:     core,
		Category: cat,
		Record:   rec,
		IsDraft:  req.IsDraft,
	})
	if err != nil {
		return s.failureFromError(ctx, core, cat, err)
	}

	if err := s.cache.Delete(ctx, cache.VillageInfoKey(core.VillageCode, core.YearLabel)); err != nil {
		s.log.Warn("village info cache invalidation failed", append(ctxutil.LogFields(ctx), "error", err)...)
	}
	s.log.Info("village info submitted", append(ctxutil.LogFields(ctx),
		"village_code", core.VillageCode,
		"year", core.YearLabel,
		"category", string(cat),
		"is_draft", req.IsDraft,
	)...)
	return ActionResult{Success: true, Data: out, Message: MsgSubmitted}
}

func (s *villageInfoService) failureFromError(ctx context.Context, core village.CoreKey, cat village.Category, err error) ActionResult {
	fields := append(ctxutil.LogFields(ctx),
		"village_code", core.VillageCode,
		"year", core.YearLabel,
		"category", string(cat),
		"error", err,
	)
	switch domainagg.CodeOf(err) {
	case domainagg.CodeValidation:
		s.log.Warn("village info rejected", fields...)
		return ActionResult{
			Message: causeMessage(err),
			Errors:  map[string][]string{validate.FormField: {causeMessage(err)}},
			Code:    CodeValidation,
		}
	case domainagg.CodeConflict:
		s.log.Warn("village info duplicate entry", fields...)
		names := conflictFieldNames(domainagg.FieldsOf(err))
		errs := make(map[string][]string, len(names))
		for _, n := range names {
			errs[n] = []string{"already exists"}
		}
		return ActionResult{
			Message: "duplicate entry: " + strings.Join(names, ", "),
			Errors:  errs,
			Code:    CodeConflict,
		}
	case domainagg.CodeNotFound:
		s.log.Warn("village info record vanished during update", fields...)
		return ActionResult{Message: MsgNotFoundOnUpdate, Code: CodeNotFound}
	default:
		s.log.Error("village info save failed", fields...)
		return ActionResult{Message: MsgSaveFailed, Code: CodeInternal, Detail: causeMessage(err)}
	}
}

func (s *villageInfoService) Get(ctx context.Context, villageCode int, yearLabel string) *types.VillageInfo {
	yearLabel = strings.TrimSpace(yearLabel)
	if villageCode <= 0 || yearLabel == "" {
		return nil
	}
	key := cache.VillageInfoKey(villageCode, yearLabel)

	var cached types.VillageInfo
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	switch {
	case err != nil:
		s.metrics.IncCacheLookup("error")
		s.log.Warn("village info cache read failed", append(ctxutil.LogFields(ctx), "key", key, "error", err)...)
	case hit:
		s.metrics.IncCacheLookup("hit")
		return &cached
	default:
		s.metrics.IncCacheLookup("miss")
	}

	dbc := dbctx.Context{Ctx: ctx}
	year, err := s.years.GetByLabel(dbc, yearLabel)
	if err != nil {
		s.log.Error("village info read failed", append(ctxutil.LogFields(ctx), "step", "year", "year", yearLabel, "error", err)...)
		return nil
	}
	if year == nil {
		return nil
	}
	row, err := s.villages.GetByCodeAndYearWithSlots(dbc, villageCode, year.ID)
	if err != nil {
		s.log.Error("village info read failed", append(ctxutil.LogFields(ctx), "step", "village", "village_code", villageCode, "error", err)...)
		return nil
	}
	if row == nil {
		return nil
	}
	if err := s.cache.SetJSON(ctx, key, row, s.cacheTTL); err != nil {
		s.log.Warn("village info cache write failed", append(ctxutil.LogFields(ctx), "key", key, "error", err)...)
	}
	return row
}

func (s *villageInfoService) ListYears(ctx context.Context) ([]*types.Year, error) {
	return s.years.List(dbctx.Context{Ctx: ctx})
}

func validationFailure(message string, fe validate.FieldErrors) ActionResult {
	return ActionResult{Message: message, Errors: fe, Code: CodeValidation}
}

// conflictFieldNames turns store column names into the request field names a form knows.
func conflictFieldNames(columns []string) []string {
	if len(columns) == 0 {
		return []string{validate.FormField}
	}
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		switch c {
		case "year_id", "label", "idx_year_label":
			c = "year"
		case "idx_village_info_code_year":
			out = append(out, "village_code")
			c = "year"
		}
		out = append(out, c)
	}
	return out
}

func causeMessage(err error) string {
	var aggErr *domainagg.Error
	if errors.As(err, &aggErr) && aggErr.Message != "" {
		return aggErr.Message
	}
	return err.Error()
}
