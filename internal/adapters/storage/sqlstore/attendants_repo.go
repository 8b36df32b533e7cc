package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"shelter-adoptions/internal/domain/attendants"
	"shelter-adoptions/internal/domain/entity"
)

type attendantRepo struct {
	db *sql.DB
}

func (r *attendantRepo) Create(ctx context.Context, a entity.Attendant) (entity.Attendant, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO atendentes (nome) VALUES ($1) RETURNING id_atendente
	`, a.Name).Scan(&a.ID)
	if err != nil {
		return entity.Attendant{}, mapErr(err)
	}
	return a, nil
}

func (r *attendantRepo) Update(ctx context.Context, a entity.Attendant) error {
	res, err := r.db.ExecContext(ctx, `UPDATE atendentes SET nome = $1 WHERE id_atendente = $2`, a.Name, a.ID)
	if err != nil {
		return mapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *attendantRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM atendentes WHERE id_atendente = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *attendantRepo) GetByID(ctx context.Context, id int64) (entity.Attendant, error) {
	return getAttendant(ctx, r.db, id)
}

func (r *attendantRepo) List(ctx context.Context, f attendants.ListFilter) ([]entity.Attendant, error) {
	var sb strings.Builder
	sb.WriteString("SELECT id_atendente, nome FROM atendentes")

	args := make([]any, 0, 3)
	argN := 1
	if strings.TrimSpace(f.NameContains) != "" {
		sb.WriteString(" WHERE " + nameLike(argN))
		args = append(args, likeArg(f.NameContains))
		argN++
	}
	if f.OrderByName {
		sb.WriteString(" ORDER BY nome, id_atendente")
	} else {
		sb.WriteString(" ORDER BY id_atendente")
	}

	page := f.Page.Normalize()
	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argN, argN+1))
	args = append(args, page.Limit, page.Offset)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Attendant, 0)
	for rows.Next() {
		var a entity.Attendant
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attendantRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM atendentes`).Scan(&n)
	return n, err
}

func (r *attendantRepo) CountLinks(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM adocao_atend WHERE id_atendente = $1`, id).Scan(&n)
	return n, err
}

func getAttendant(ctx context.Context, q querier, id int64) (entity.Attendant, error) {
	var a entity.Attendant
	err := q.QueryRowContext(ctx, `SELECT id_atendente, nome FROM atendentes WHERE id_atendente = $1`, id).Scan(&a.ID, &a.Name)
	if err != nil {
		return entity.Attendant{}, mapErr(err)
	}
	return a, nil
}
