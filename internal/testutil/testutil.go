// Package testutil reúne helpers compartilhados pelos testes.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-atividades/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-atividades/internal/db"
	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

// TestDB cria um banco SQLite temporário já migrado.
func TestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBUrl:    filepath.Join(t.TempDir(), "agenda-test.db"),
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateUser grava um usuário mínimo e devolve o registro.
func CreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, DisplayName: email, PasswordHash: "x"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}
