package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// The centavos migration must preserve legacy rows, scaling the decimal
// valor to integer centavos.
func TestLancamentosCentavosMigration(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		t.Fatalf("driver: %v", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	defer m.Close()

	// Stop at the legacy schema and write a decimal-amount row
	if err := m.Migrate(1); err != nil {
		t.Fatalf("migrate to v1: %v", err)
	}
	_, err = db.Exec(`
		INSERT INTO lancamentos (tipo, descricao, valor, data, categoria)
		VALUES ('entrada', 'venda antiga', 10.55, '2023-12-01', 'vendas')`)
	if err != nil {
		t.Fatalf("insert legacy row: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		t.Fatalf("migrate up: %v", err)
	}

	var centavos int64
	var descricao string
	err = db.QueryRow(`SELECT valor_centavos, descricao FROM lancamentos WHERE id = 1`).
		Scan(&centavos, &descricao)
	if err != nil {
		t.Fatalf("query migrated row: %v", err)
	}
	if centavos != 1055 {
		t.Fatalf("expected 1055 centavos, got %d", centavos)
	}
	if descricao != "venda antiga" {
		t.Fatalf("row contents lost: %q", descricao)
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "idempotent.db")
	for i := 0; i < 2; i++ {
		if err := RunMigrations(dbPath); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}
}
