// Package sqlstore implementa los repositorios sobre database/sql. El mismo
// SQL corre en Postgres (pgx) y en SQLite (modernc): placeholders $N en orden
// de aparición, RETURNING y filtros de fecha por rango.
package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"
	"time"

	"shelter-adoptions/internal/domain/adopters"
	"shelter-adoptions/internal/domain/adoptions"
	"shelter-adoptions/internal/domain/animals"
	"shelter-adoptions/internal/domain/attendants"

	_ "github.com/jackc/pgx/v5/stdlib"
	"modernc.org/sqlite"
)

type Driver string

const (
	DriverPostgres Driver = "pgx"
	DriverSQLite   Driver = "sqlite"
)

func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pgx", "postgres", "postgresql":
		return DriverPostgres, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", s)
	}
}

// Open abre el pool y verifica la conexión.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres:
		if strings.TrimSpace(dsn) == "" {
			return nil, fmt.Errorf("postgres dsn is required")
		}
	case DriverSQLite:
		if err := registerSQLiteFuncs(); err != nil {
			return nil, err
		}
		dsn = sqliteDSN(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// una sola conexión: serializa escrituras y mantiene viva una base :memory:
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxIdleTime(0)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// sqliteDSN activa foreign keys en cada conexión y fija el formato de fechas.
func sqliteDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		dsn = "file:shelter.db"
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_time_format=sqlite"
}

var (
	sqliteFuncsOnce sync.Once
	sqliteFuncsErr  error
)

// registerSQLiteFuncs reemplaza lower() de SQLite, que sólo pliega ASCII,
// para que las búsquedas por nombre ignoren mayúsculas también en acentos.
// El registro es global al driver y vale para toda conexión nueva.
func registerSQLiteFuncs() error {
	sqliteFuncsOnce.Do(func() {
		sqliteFuncsErr = sqlite.RegisterDeterministicScalarFunction("lower", 1,
			func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
				switch v := args[0].(type) {
				case string:
					return strings.ToLower(v), nil
				case []byte:
					return strings.ToLower(string(v)), nil
				default:
					return v, nil
				}
			})
	})
	return sqliteFuncsErr
}

// Store agrupa los repositorios sobre un mismo pool.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Animals() animals.Repository       { return &animalRepo{db: s.db} }
func (s *Store) Adopters() adopters.Repository     { return &adopterRepo{db: s.db} }
func (s *Store) Attendants() attendants.Repository { return &attendantRepo{db: s.db} }
func (s *Store) Adoptions() adoptions.Repository   { return &adoptionRepo{db: s.db} }

// querier lo cumplen *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// placeholders devuelve "$start,$start+1,..." para n valores.
func placeholders(start, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(parts, ",")
}

func int64Args(ids []int64) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

// likeEscaper neutraliza los comodines de LIKE en la entrada del usuario.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// nameLike es el filtro "contiene, sin mayúsculas" sobre nome; va con likeArg.
func nameLike(argN int) string {
	return fmt.Sprintf(`LOWER(nome) LIKE $%d ESCAPE '\'`, argN)
}

// likeArg arma el patrón para nameLike: substring literal, en minúsculas.
func likeArg(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}
