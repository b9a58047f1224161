package services_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taichi412/checklist-backend/internal/repositories"
	"github.com/Taichi412/checklist-backend/internal/services"
)

func TestChecklistService_UpdateField_AllowedField(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	svc := services.NewChecklistService(repositories.NewChecklistRepository(db))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE checklist_items SET bed_making = ? WHERE id = ?")).
		WithArgs(true, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = svc.UpdateField(4, "bed_making", true)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChecklistService_UpdateField_RejectsUnknownField(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	svc := services.NewChecklistService(repositories.NewChecklistRepository(db))

	// 許可リスト外の名前はSQLに到達しない
	err = svc.UpdateField(4, "not_a_real_column", true)
	assert.ErrorIs(t, err, services.ErrFieldNotAllowed)

	err = svc.UpdateField(4, "bussing = TRUE, password", true)
	assert.ErrorIs(t, err, services.ErrFieldNotAllowed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChecklistService_Create_DefaultsFacility(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	svc := services.NewChecklistService(repositories.NewChecklistRepository(db))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO checklist_items (name, facility) VALUES (?, ?)")).
		WithArgs("Room 204", "galleria").
		WillReturnResult(sqlmock.NewResult(1, 1))

	item, err := svc.Create("Room 204", "")
	require.NoError(t, err)
	assert.Equal(t, "galleria", item.Facility)
}

func TestChecklistService_ListByFacility_DefaultsFacility(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	svc := services.NewChecklistService(repositories.NewChecklistRepository(db))

	mock.ExpectQuery(`SELECT (.+) FROM checklist_items WHERE facility = \?`).
		WithArgs("galleria").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = svc.ListByFacility("")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
