package crud

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/dbx"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/google/uuid"
)

// Mapping describes how an entity type is laid out in its table.
type Mapping[T any] struct {
	Table string

	// Columns lists every column except "id", in the order used by Values
	// and Dest.
	Columns []string

	// OrderBy is the column FindAll and Match sort by.
	OrderBy string

	ID    func(e *T) *uuid.UUID
	Audit func(e *T) *models.Audit

	// Values returns the column values in Columns order.
	Values func(e *T) []any

	// Dest returns scan destinations for Columns, in order. The id is
	// scanned separately.
	Dest func(e *T) []any
}

// now is a seam for tests.
var now = func() time.Time { return time.Now().UTC() }

// PostgresRepository implements Repository over dbx.DBTX for one Mapping.
type PostgresRepository[T any] struct {
	db dbx.DBTX
	m  Mapping[T]
}

func NewPostgresRepository[T any](db dbx.DBTX, m Mapping[T]) *PostgresRepository[T] {
	return &PostgresRepository[T]{db: db, m: m}
}

func (r *PostgresRepository[T]) selectList() string {
	return "id, " + strings.Join(r.m.Columns, ", ")
}

func (r *PostgresRepository[T]) scan(row interface{ Scan(...any) error }) (*T, error) {
	e := new(T)
	dest := append([]any{r.m.ID(e)}, r.m.Dest(e)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *PostgresRepository[T]) Create(ctx context.Context, e *T) (*T, error) {
	id := r.m.ID(e)
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	r.m.Audit(e).Touch(now(), true)

	placeholders := make([]string, len(r.m.Columns)+1)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		r.m.Table, r.selectList(), strings.Join(placeholders, ", "))

	args := append([]any{*id}, r.m.Values(e)...)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.FindOneBy(ctx, "id", id)
}

func (r *PostgresRepository[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ExistsBy(ctx, "id", id)
}

func (r *PostgresRepository[T]) Update(ctx context.Context, e *T) (*T, error) {
	r.m.Audit(e).Touch(now(), false)

	sets := make([]string, len(r.m.Columns))
	for i, c := range r.m.Columns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+2)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1`, r.m.Table, strings.Join(sets, ", "))

	args := append([]any{*r.m.ID(e)}, r.m.Values(e)...)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return nil, common.ErrorNotFound
	}

	return e, nil
}

func (r *PostgresRepository[T]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.m.Table)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository[T]) ExistsBy(ctx context.Context, column string, value any) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, r.m.Table, column)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// FindOneBy returns the row with column = value or common.ErrorNotFound.
func (r *PostgresRepository[T]) FindOneBy(ctx context.Context, column string, value any) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, r.selectList(), r.m.Table, column)

	e, err := r.scan(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository[T]) FindAllBy(ctx context.Context, column string, value any) ([]*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`, r.selectList(), r.m.Table, column, r.m.OrderBy)
	return r.queryAll(ctx, query, value)
}

func (r *PostgresRepository[T]) FindAll(ctx context.Context) ([]*T, error) {
	return r.Match(ctx, nil)
}

func (r *PostgresRepository[T]) Match(ctx context.Context, example Example) ([]*T, error) {
	columns := make([]string, 0, len(example))
	for c, v := range example {
		if v != "" {
			columns = append(columns, c)
		}
	}
	sort.Strings(columns)

	var (
		where strings.Builder
		args  = make([]any, 0, len(columns))
	)
	for i, c := range columns {
		if i == 0 {
			where.WriteString(" WHERE ")
		} else {
			where.WriteString(" AND ")
		}
		fmt.Fprintf(&where, `%s ILIKE '%%' || $%d || '%%' ESCAPE '\'`, c, i+1)
		args = append(args, EscapeLike(example[c]))
	}

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s`, r.selectList(), r.m.Table, where.String(), r.m.OrderBy)

	return r.queryAll(ctx, query, args...)
}

func (r *PostgresRepository[T]) queryAll(ctx context.Context, query string, args ...any) ([]*T, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*T, 0)
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutralises LIKE metacharacters so user input matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
