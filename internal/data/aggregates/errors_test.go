package aggregates

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/panchayat-backend/internal/domain/aggregates"
)

func TestMapError_Validation(t *testing.T) {
	err := MapError("op", ValidationError("bad input"))
	if !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation code, got %q (%v)", domainagg.CodeOf(err), err)
	}
}

func TestMapError_Conflict(t *testing.T) {
	err := MapError("op", ConflictError("stale"))
	if !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("expected conflict code, got %q (%v)", domainagg.CodeOf(err), err)
	}
}

func TestMapError_NotFound(t *testing.T) {
	err := MapError("op", fmt.Errorf("update village_amenities: %w", gorm.ErrRecordNotFound))
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("expected not_found code, got %q (%v)", domainagg.CodeOf(err), err)
	}
}

func TestMapError_ContextCancelledIsRetryable(t *testing.T) {
	err := MapError("op", context.Canceled)
	if !domainagg.IsCode(err, domainagg.CodeRetryable) {
		t.Fatalf("expected retryable code, got %q", domainagg.CodeOf(err))
	}
}

func TestMapError_PassthroughAggregateError(t *testing.T) {
	in := domainagg.NewError(domainagg.CodeRetryable, "op", "retry", errors.New("boom"))
	out := MapError("other", in)
	if out != in {
		t.Fatalf("expected passthrough aggregate error")
	}
}

func TestMapError_PostgresUniqueViolationCarriesFields(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "idx_village_info_code_year"`,
		Detail:         `Key (village_code, year_id)=(100234, 5b0f...) already exists.`,
		ConstraintName: "idx_village_info_code_year",
	}
	err := MapError("op", pgErr)
	if !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("expected conflict code, got %q", domainagg.CodeOf(err))
	}
	want := []string{"village_code", "year_id"}
	if got := domainagg.FieldsOf(err); !reflect.DeepEqual(got, want) {
		t.Fatalf("fields: want=%v got=%v", want, got)
	}
}

func TestMapError_PostgresForeignKeyIsPrecondition(t *testing.T) {
	err := MapError("op", &pgconn.PgError{Code: "23503"})
	if !domainagg.IsCode(err, domainagg.CodePreconditionFailed) {
		t.Fatalf("expected precondition_failed, got %q", domainagg.CodeOf(err))
	}
}

func TestMapError_SQLiteUniqueViolationCarriesFields(t *testing.T) {
	err := MapError("op", errors.New("UNIQUE constraint failed: village_info.village_code, village_info.year_id"))
	if !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("expected conflict code, got %q", domainagg.CodeOf(err))
	}
	want := []string{"village_code", "year_id"}
	if got := domainagg.FieldsOf(err); !reflect.DeepEqual(got, want) {
		t.Fatalf("fields: want=%v got=%v", want, got)
	}
}

func TestConflictFields_FallsBackToConstraintName(t *testing.T) {
	got := ConflictFields(&pgconn.PgError{Code: "23505", ConstraintName: "idx_year_label"})
	if !reflect.DeepEqual(got, []string{"idx_year_label"}) {
		t.Fatalf("want constraint name, got %v", got)
	}
	if got := ConflictFields(errors.New("something else")); got != nil {
		t.Fatalf("want nil for unrelated error, got %v", got)
	}
}
