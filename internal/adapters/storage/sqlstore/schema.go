package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// schema devuelve el DDL. Sólo cambia la columna de id autoincremental.
func schema(driver Driver) []string {
	id := "BIGSERIAL PRIMARY KEY"
	if driver == DriverSQLite {
		id = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	return []string{
		`CREATE TABLE IF NOT EXISTS animais (
			id_animal ` + id + `,
			nome TEXT NOT NULL,
			especie TEXT NOT NULL,
			idade INTEGER NOT NULL CHECK (idade >= 0),
			data_resgate DATE NOT NULL,
			status_adocao BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS adotantes (
			id_adotante ` + id + `,
			nome TEXT NOT NULL,
			contato TEXT NOT NULL DEFAULT '',
			endereco TEXT NOT NULL DEFAULT '',
			preferencias TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS atendentes (
			id_atendente ` + id + `,
			nome TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS adocoes (
			id_adocao ` + id + `,
			data_adocao DATE NOT NULL,
			cancelamento BOOLEAN NOT NULL DEFAULT FALSE,
			id_animal BIGINT NOT NULL REFERENCES animais (id_animal) ON DELETE RESTRICT,
			id_adotante BIGINT NOT NULL REFERENCES adotantes (id_adotante) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS adocao_atend (
			id_adocao BIGINT NOT NULL REFERENCES adocoes (id_adocao) ON DELETE RESTRICT,
			id_atendente BIGINT NOT NULL REFERENCES atendentes (id_atendente) ON DELETE RESTRICT,
			PRIMARY KEY (id_adocao, id_atendente)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_adocoes_animal ON adocoes (id_animal)`,
		`CREATE INDEX IF NOT EXISTS idx_adocoes_adotante ON adocoes (id_adotante)`,
		`CREATE INDEX IF NOT EXISTS idx_adocoes_data ON adocoes (data_adocao)`,
		`CREATE INDEX IF NOT EXISTS idx_adocao_atend_atendente ON adocao_atend (id_atendente)`,
	}
}

// Tables lista las tablas en orden de creación.
var Tables = []string{"animais", "adotantes", "atendentes", "adocoes", "adocao_atend"}

// Migrate crea las tablas que falten. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB, driver Driver) error {
	for _, stmt := range schema(driver) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Counts devuelve la cantidad de filas por tabla (lo usa `migrate --status`).
func Counts(ctx context.Context, db *sql.DB) (map[string]int64, error) {
	out := make(map[string]int64, len(Tables))
	for _, t := range Tables {
		var n int64
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", t, err)
		}
		out[t] = n
	}
	return out, nil
}
