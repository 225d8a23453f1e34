package aggregates

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	domainagg "github.com/yungbote/panchayat-backend/internal/domain/aggregates"
	"github.com/yungbote/panchayat-backend/internal/platform/dbctx"
)

// TxRunner runs fn inside one database transaction. fn must route every statement through
// dbc.Tx so a failure anywhere rolls back the whole write.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

// NewGormTxRunner runs writes in GORM transactions. When db is itself a transaction the
// write becomes a SAVEPOINT and opts are ignored.
func NewGormTxRunner(db *gorm.DB, opts ...*sql.TxOptions) TxRunner {
	r := &gormTxRunner{db: db}
	if len(opts) > 0 {
		r.opts = opts[0]
	}
	return r
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return domainagg.NewError(domainagg.CodeInternal, "aggregate.tx", "transaction runner has nil db", nil)
	}
	// Don't begin work the caller has already abandoned.
	if err := ctx.Err(); err != nil {
		return err
	}
	body := func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	}
	if r.opts != nil {
		return r.db.WithContext(ctx).Transaction(body, r.opts)
	}
	return r.db.WithContext(ctx).Transaction(body)
}
