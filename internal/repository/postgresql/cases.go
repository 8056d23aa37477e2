package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/receipt_cases/internal/domain"
)

const TableCases = "cases"

var caseColumns = []string{
	"id",
	"owner_id",
	"image_ref",
	"image_name",
	"csv_ref",
	"processed",
	"created_at",
}

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CasesRepository struct {
	db DBTX
	qb sq.StatementBuilderType
}

func NewCasesRepository(pool *pgxpool.Pool) *CasesRepository {
	return newCasesRepository(pool)
}

func newCasesRepository(db DBTX) *CasesRepository {
	return &CasesRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CasesRepository) CreateCase(ctx context.Context, c *domain.Case) error {
	sql, args, err := r.qb.
		Insert(TableCases).
		Columns(
			"owner_id",
			"image_ref",
			"image_name",
		).
		Values(
			c.OwnerID,
			c.ImageRef,
			c.ImageName,
		).
		Suffix("RETURNING id, processed, created_at").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.Processed, &c.CreatedAt); err != nil {
		return scanRowError(err)
	}

	return nil
}

// CaseByID loads a case without an ownership check. Only the callback path,
// which has no user, may use it.
func (r *CasesRepository) CaseByID(ctx context.Context, id int64) (*domain.Case, error) {
	return r.selectCase(ctx, sq.Eq{"id": id})
}

func (r *CasesRepository) OwnedCase(ctx context.Context, id, ownerID int64) (*domain.Case, error) {
	return r.selectCase(ctx, sq.Eq{"id": id, "owner_id": ownerID})
}

func (r *CasesRepository) selectCase(ctx context.Context, where sq.Eq) (*domain.Case, error) {
	sql, args, err := r.qb.
		Select(caseColumns...).
		From(TableCases).
		Where(where).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	c, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Case])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return c, nil
}

// CasesByOwner returns one page of the owner's cases, newest first, together
// with the owner's total case count.
func (r *CasesRepository) CasesByOwner(
	ctx context.Context,
	ownerID int64,
	limit, offset uint64,
) ([]*domain.Case, int, error) {
	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableCases).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.ownerCasesQuery(ownerID).
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	cases, err := r.collectCases(ctx, sql, args)
	if err != nil {
		return nil, -1, err
	}

	return cases, total, nil
}

func (r *CasesRepository) AllCasesByOwner(ctx context.Context, ownerID int64) ([]*domain.Case, error) {
	sql, args, err := r.ownerCasesQuery(ownerID).ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	return r.collectCases(ctx, sql, args)
}

func (r *CasesRepository) ownerCasesQuery(ownerID int64) sq.SelectBuilder {
	return r.qb.
		Select(caseColumns...).
		From(TableCases).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC")
}

func (r *CasesRepository) collectCases(ctx context.Context, sql string, args []any) ([]*domain.Case, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	cases, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Case])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return cases, nil
}

// SetCaseCSV attaches the CSV and marks the case processed in one statement,
// so processed and csv_ref never disagree. Repeated calls overwrite.
func (r *CasesRepository) SetCaseCSV(ctx context.Context, id int64, csvRef string) error {
	sql, args, err := r.qb.
		Update(TableCases).
		Set("csv_ref", csvRef).
		Set("processed", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to set csv for case %d: %w", id, domain.ErrCaseNotFound)
	}

	return nil
}
