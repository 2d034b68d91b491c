package crud

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/dmitrijs2005/devnest/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var courseMapping = Mapping[models.Course]{
	Table:   "courses",
	Columns: []string{"name", "workload", "created_at", "updated_at"},
	OrderBy: "name",
	ID:      func(c *models.Course) *uuid.UUID { return &c.ID },
	Audit:   func(c *models.Course) *models.Audit { return &c.Audit },
	Values: func(c *models.Course) []any {
		return []any{c.Name, c.Workload, c.CreatedAt, c.UpdatedAt}
	},
	Dest: func(c *models.Course) []any {
		return []any{&c.Name, &c.Workload, &c.CreatedAt, &c.UpdatedAt}
	},
}

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newRepoWithMock(t *testing.T) (*PostgresRepository[models.Course], sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}

	old := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = old })

	return NewPostgresRepository(db, courseMapping), mock, db
}

func TestCreate_AssignsIDAndStampsAudit(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+courses\s*\(id,\s*name,\s*workload,\s*created_at,\s*updated_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)$`
	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), "Go", 40, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &models.Course{Name: "Go", Workload: 40})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if !got.CreatedAt.Equal(fixedNow) || !got.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("audit not stamped: %+v", got.Audit)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_KeepsGivenID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(`INSERT INTO courses`).
		WithArgs(id, "Go", 40, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &models.Course{ID: id, Name: "Go", Workload: 40})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != id {
		t.Fatalf("id changed: %v", got.ID)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO courses`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.Course{Name: "Go", Workload: 40})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO courses`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Course{Name: "Go", Workload: 40})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	q := `(?s)^SELECT\s+id,\s*name,\s*workload,\s*created_at,\s*updated_at\s+FROM\s+courses\s+WHERE\s+id\s*=\s*\$1$`
	rows := sqlmock.NewRows([]string{"id", "name", "workload", "created_at", "updated_at"}).
		AddRow(id.String(), "Go", 40, fixedNow, fixedNow)
	mock.ExpectQuery(q).WithArgs(id).WillReturnRows(rows)

	got, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got.ID != id || got.Name != "Go" || got.Workload != 40 {
		t.Fatalf("unexpected course: %+v", got)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM courses WHERE id`).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestExistsByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	q := `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+courses\s+WHERE\s+id\s*=\s*\$1\)$`
	mock.ExpectQuery(q).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ExistsByID(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("ExistsByID = %v, %v", ok, err)
	}
}

func TestExistsBy_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).WillReturnError(errors.New("boom"))

	_, err := repo.ExistsBy(context.Background(), "name", "Go")
	if err == nil || !regexp.MustCompile(`db error: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	created := fixedNow.Add(-time.Hour)
	q := `(?s)^UPDATE\s+courses\s+SET\s+name\s*=\s*\$2,\s*workload\s*=\s*\$3,\s*created_at\s*=\s*\$4,\s*updated_at\s*=\s*\$5\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).
		WithArgs(id, "Go 2", 60, created, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c := &models.Course{ID: id, Name: "Go 2", Workload: 60, Audit: models.Audit{CreatedAt: created, UpdatedAt: created}}
	got, err := repo.Update(context.Background(), c)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !got.UpdatedAt.Equal(fixedNow) || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected audit: %+v", got.Audit)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE courses`).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &models.Course{ID: uuid.New(), Name: "x", Workload: 1})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_RowsAffectedError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE courses`).WillReturnResult(sqlmock.NewErrorResult(errors.New("no row count")))

	_, err := repo.Update(context.Background(), &models.Course{ID: uuid.New(), Name: "x", Workload: 1})
	if err == nil || errors.Is(err, common.ErrorNotFound) || !strings.Contains(err.Error(), "db error: no row count") {
		t.Fatalf("want wrapped rows affected error, got %v", err)
	}
}

func TestDeleteByID_RowsAffectedError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM courses`).WillReturnResult(sqlmock.NewErrorResult(errors.New("no row count")))

	err := repo.DeleteByID(context.Background(), uuid.New())
	if err == nil || !strings.Contains(err.Error(), "db error: no row count") {
		t.Fatalf("want wrapped rows affected error, got %v", err)
	}
}

func TestUpdate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE courses`).WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Update(context.Background(), &models.Course{ID: uuid.New(), Name: "x", Workload: 1})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestDeleteByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	q := `(?s)^DELETE\s+FROM\s+courses\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteByID(context.Background(), id); err != nil {
		t.Fatalf("DeleteByID error: %v", err)
	}
	if err := repo.DeleteByID(context.Background(), id); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("second delete: want common.ErrorNotFound, got %v", err)
	}
}

func TestMatch_BuildsSortedILikeFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+courses\s+WHERE\s+description\s+ILIKE\s+'%'\s*\|\|\s*\$1\s*\|\|\s*'%'\s+ESCAPE\s+'\\'\s+AND\s+name\s+ILIKE\s+'%'\s*\|\|\s*\$2\s*\|\|\s*'%'\s+ESCAPE\s+'\\'\s+ORDER\s+BY\s+name$`
	rows := sqlmock.NewRows([]string{"id", "name", "workload", "created_at", "updated_at"}).
		AddRow(uuid.NewString(), "Go", 40, fixedNow, fixedNow).
		AddRow(uuid.NewString(), "Golang", 80, fixedNow, fixedNow)
	mock.ExpectQuery(q).WithArgs(`50\%`, "go").WillReturnRows(rows)

	got, err := repo.Match(context.Background(), Example{"name": "go", "description": "50%", "workload": ""})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Go" || got[1].Name != "Golang" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFindAll_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+courses\s+ORDER\s+BY\s+name$`
	mock.ExpectQuery(q).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "workload", "created_at", "updated_at"}))

	got, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestFindAll_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("db down"))

	_, err := repo.FindAll(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"plain":  "plain",
		"50%":    `50\%`,
		"a_b":    `a\_b`,
		`c:\dir`: `c:\\dir`,
	}
	for in, want := range cases {
		if got := EscapeLike(in); got != want {
			t.Errorf("EscapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindAllBy(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+courses\s+WHERE\s+workload\s*=\s*\$1\s+ORDER\s+BY\s+name$`
	rows := sqlmock.NewRows([]string{"id", "name", "workload", "created_at", "updated_at"}).
		AddRow(uuid.NewString(), "Go", 40, fixedNow, fixedNow)
	mock.ExpectQuery(q).WithArgs(40).WillReturnRows(rows)

	got, err := repo.FindAllBy(context.Background(), "workload", 40)
	if err != nil {
		t.Fatalf("FindAllBy error: %v", err)
	}
	if len(got) != 1 || got[0].Workload != 40 {
		t.Fatalf("unexpected result: %+v", got)
	}
}
