// Package sqlite stores the scale master (the maestro) used by the stub
// calculation service.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ldamico/sueldos-comercio/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS escala (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	rama           TEXT NOT NULL,
	agrup          TEXT NOT NULL,
	categoria      TEXT NOT NULL,
	mes            TEXT NOT NULL,
	basico         REAL NOT NULL DEFAULT 0,
	no_rem         REAL NOT NULL DEFAULT 0,
	suma_fija      REAL NOT NULL DEFAULT 0,
	rama_norm      TEXT NOT NULL,
	agrup_norm     TEXT NOT NULL,
	categoria_norm TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_escala_lookup
	ON escala (rama_norm, agrup_norm, categoria_norm, mes);
`

// Repository is the SQLite-backed scale master. Implements
// ports.EscalaRepository.
type Repository struct {
	db *sql.DB
}

// New opens (or creates) the database and ensures the schema exists.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error { return r.db.Close() }

// Replace swaps the whole scale table for a fresh import.
func (r *Repository) Replace(ctx context.Context, filas []domain.FilaEscala) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM escala`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO escala (
			rama, agrup, categoria, mes, basico, no_rem, suma_fija,
			rama_norm, agrup_norm, categoria_norm
		) VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range filas {
		_, err := stmt.ExecContext(ctx,
			f.Rama, f.Agrup, f.Categoria, yearMonth(f.Mes),
			f.Basico, f.NoRem, f.SumaFija,
			norm(f.Rama), norm(f.Agrup), norm(f.Categoria),
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Find returns the scale row for an exact normalized match, or nil when
// the combination is not in the maestro.
func (r *Repository) Find(ctx context.Context, rama, agrup, categoria, mes string) (*domain.FilaEscala, error) {
	f := &domain.FilaEscala{}
	err := r.db.QueryRowContext(ctx, `
		SELECT rama, agrup, categoria, mes, basico, no_rem, suma_fija
		FROM escala
		WHERE rama_norm=? AND agrup_norm=? AND categoria_norm=? AND mes=?`,
		norm(rama), norm(agrup), norm(categoria), yearMonth(mes)).Scan(
		&f.Rama, &f.Agrup, &f.Categoria, &f.Mes, &f.Basico, &f.NoRem, &f.SumaFija,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Metadata builds the dropdown metadata: the rama → agrupamiento →
// categorías tree (ramas and agrupamientos in first-seen order, categorías
// sorted) and the sorted months per (rama, agrup, categoría) triple.
func (r *Repository) Metadata(ctx context.Context) (*domain.Metadata, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT rama, agrup, categoria, mes FROM escala ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meta := &domain.Metadata{Months: domain.MonthsIndex{}}
	seen := map[string]bool{}
	for rows.Next() {
		var rama, agrup, categoria, mes string
		if err := rows.Scan(&rama, &agrup, &categoria, &mes); err != nil {
			return nil, err
		}
		meta.Tree.Add(rama, agrup, categoria)
		key := domain.MonthsKey(rama, agrup, categoria)
		if mes != "" && !seen[key+"\x00"+mes] {
			seen[key+"\x00"+mes] = true
			meta.Months[key] = append(meta.Months[key], mes)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	meta.Tree.SortLeaves()
	for key := range meta.Months {
		sort.Strings(meta.Months[key])
	}
	return meta, nil
}

// norm upper-cases and collapses whitespace so lookups tolerate the
// spacing and casing drift of hand-maintained maestros.
func norm(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// yearMonth cuts a date-like token down to YYYY-MM.
func yearMonth(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 7 && s[4] == '-' {
		return s[:7]
	}
	return s
}
