package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/models"
)

func newTestSeedDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &DB{DB: db, logger: logger.Nop()}, mock
}

// The canonical admin is bootstrapped before seeding, so the guard must
// ignore admin rows or a fresh install would never seed.
func TestSeedDemoData_RunsAfterAdminBootstrap(t *testing.T) {
	db, mock := newTestSeedDB(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(string(models.RoleSupremeAdmin)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for i := 0; i < 2; i++ {
		mock.ExpectExec("INSERT INTO users").
			WillReturnResult(sqlmock.NewResult(int64(i+2), 1))
	}
	for i := 0; i < 15; i++ {
		mock.ExpectExec("INSERT INTO demandas").
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}

	err := SeedDemoData(context.Background(), db, "hash", models.DefaultCategories())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSeedDemoData_SkipsWhenNonAdminUsersExist(t *testing.T) {
	db, mock := newTestSeedDB(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(string(models.RoleSupremeAdmin)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	err := SeedDemoData(context.Background(), db, "hash", models.DefaultCategories())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
