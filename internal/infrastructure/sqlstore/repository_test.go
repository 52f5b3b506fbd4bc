package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
)

var errUnique = errors.New("duplicate key value violates unique constraint")

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func mockDialect() Dialect {
	d := dollar
	d.IsUniqueViolation = func(err error) bool { return errors.Is(err, errUnique) }
	return d
}

func TestActivityRepo_ListConAutor(t *testing.T) {
	db, mock := newMock(t)
	repo := NewActivityRepository(db, mockDialect())
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "type", "title", "description", "user_id", "created_at", "name", "email", "image"}).
		AddRow("a1", "login", "Inicio de sesión", "", "u1", now, "Ana", "ana@example.com", "")
	mock.ExpectQuery(`(?s)FROM activities a\s+LEFT JOIN users u ON u.id = a.user_id WHERE a.type = \$1 ORDER BY a.created_at DESC, a.id DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("login", 10, 10).
		WillReturnRows(rows)

	q := query.Build(query.Activities, query.Params{
		Filters: map[string]string{"type": "login"},
		Page:    query.Page{Number: 2, Limit: 10},
	})
	list, err := repo.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].UserName)
	assert.Equal(t, "u1", list[0].UserID)
	assert.Equal(t, now, list[0].CreatedAt)
}

func TestActivityRepo_ListVacioNoEsNil(t *testing.T) {
	db, mock := newMock(t)
	repo := NewActivityRepository(db, mockDialect())

	mock.ExpectQuery(`FROM activities a`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "title", "description", "user_id", "created_at", "name", "email", "image"}))

	list, err := repo.List(context.Background(), query.Build(query.Activities, query.Params{Page: query.Page{Number: 1, Limit: 10}}))
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestActivityRepo_CountIgnoraVentana(t *testing.T) {
	db, mock := newMock(t)
	repo := NewActivityRepository(db, mockDialect())

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM activities a WHERE \(LOWER\(a.title\) LIKE \$1 ESCAPE '\\' OR LOWER\(a.description\) LIKE \$2 ESCAPE '\\'\)$`).
		WithArgs("%pago%", "%pago%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	q := query.Build(query.Activities, query.Params{Search: "Pago", Page: query.Page{Number: 3, Limit: 10}})
	total, err := repo.Count(context.Background(), q.WithoutPage())
	require.NoError(t, err)
	assert.Equal(t, 25, total)
}

func TestActivityRepo_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewActivityRepository(db, mockDialect())
	a := &entity.Activity{ID: "a1", Type: "task_created", Title: "Nueva tarea", UserID: "u1", CreatedAt: time.Now()}

	mock.ExpectExec(`^INSERT INTO activities \(id, type, title, description, user_id, created_at\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)$`).
		WithArgs(a.ID, a.Type, a.Title, a.Description, a.UserID, a.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), a))
}

func TestTaskRepo_ListCamposOpcionales(t *testing.T) {
	db, mock := newMock(t)
	repo := NewTaskRepository(db, mockDialect())
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "status", "priority", "assignee_id", "due_date", "created_at", "updated_at"}).
		AddRow("t1", "Revisar", "", "todo", "high", nil, nil, now, now).
		AddRow("t2", "Cerrar", "", "done", "low", "u1", now, now, now)
	mock.ExpectQuery(`FROM tasks ORDER BY created_at DESC, id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 0).
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), query.Build(query.Tasks, query.Params{Page: query.Page{Number: 1, Limit: 10}}))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].AssigneeID)
	assert.Nil(t, list[0].DueDate)
	require.NotNil(t, list[1].AssigneeID)
	assert.Equal(t, "u1", *list[1].AssigneeID)
}

func TestOrderRepo_TotalDecimal(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepository(db, mockDialect())
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "order_number", "customer_name", "description", "status", "total", "created_by", "created_at", "updated_at"}).
		AddRow("o1", "ORD-001", "ACME", "", "pending", "1250.50", "u1", now, now)
	mock.ExpectQuery(`FROM orders WHERE status = \$1`).
		WithArgs("pending", 10, 0).
		WillReturnRows(rows)

	q := query.Build(query.Orders, query.Params{Filters: map[string]string{"status": "pending"}, Page: query.Page{Number: 1, Limit: 10}})
	list, err := repo.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, decimal.RequireFromString("1250.5").Equal(list[0].Total))
}

func TestOrderRepo_CreateDuplicado(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOrderRepository(db, mockDialect())

	mock.ExpectExec(`^INSERT INTO orders`).WillReturnError(errUnique)

	err := repo.Create(context.Background(), &entity.Order{ID: "o1", OrderNumber: "ORD-001", Total: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDocumentRepo_Count(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDocumentRepository(db, mockDialect())

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM documents WHERE type = \$1$`).
		WithArgs("invoice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background(), query.Build(query.Documents, query.Params{Filters: map[string]string{"type": "invoice"}}))
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestUserRepo_CreateEmailDuplicado(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, mockDialect())

	mock.ExpectExec(`^INSERT INTO users`).WillReturnError(errUnique)

	err := repo.Create(context.Background(), &entity.User{ID: "u1", Email: "ana@example.com", Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserRepo_GetByEmailNoExiste(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, mockDialect())

	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("nadie@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_UpdateRoleSinFilas(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, mockDialect())

	mock.ExpectExec(`^UPDATE users SET role = \$1, updated_at = \$2 WHERE id = \$3$`).
		WithArgs("admin", sqlmock.AnyArg(), "u404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRole(context.Background(), "u404", "admin")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "u404", nf.ID)
}

func TestStatsRepo_Counts(t *testing.T) {
	db, mock := newMock(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"u", "t", "o", "d", "a"}).AddRow(2, 5, 3, 1, 25))

	c, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Counts{Users: 2, Tasks: 5, Orders: 3, Documents: 1, Activities: 25}, *c)
}

func TestUserRepo_GetByIDSinFilas(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, mockDialect())

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("u404").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "image", "created_at", "updated_at"}))

	_, err := repo.GetByID(context.Background(), "u404")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "usuario", nf.Resource)
}

func TestRunInTx_RollbackSiFalla(t *testing.T) {
	db, mock := newMock(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(`^INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := RunInTx(context.Background(), db, func(tx Querier) error {
		if err := NewUserRepository(tx, mockDialect()).Create(context.Background(), &entity.User{ID: "u1"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunInTx_Commit(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^INSERT INTO activities`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := RunInTx(context.Background(), db, func(tx Querier) error {
		return NewActivityRepository(tx, mockDialect()).Create(context.Background(), &entity.Activity{ID: "a1"})
	})
	assert.NoError(t, err)
}
