package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"shelter-adoptions/internal/domain/adopters"
	"shelter-adoptions/internal/domain/entity"
)

type adopterRepo struct {
	db *sql.DB
}

const adopterColumns = `id_adotante, nome, contato, endereco, preferencias`

func (r *adopterRepo) Create(ctx context.Context, a entity.Adopter) (entity.Adopter, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO adotantes (nome, contato, endereco, preferencias)
		VALUES ($1, $2, $3, $4)
		RETURNING id_adotante
	`, a.Name, a.Contact, a.Address, a.Preferences).Scan(&a.ID)
	if err != nil {
		return entity.Adopter{}, mapErr(err)
	}
	return a, nil
}

func (r *adopterRepo) Update(ctx context.Context, a entity.Adopter) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adotantes
		SET nome = $1, contato = $2, endereco = $3, preferencias = $4
		WHERE id_adotante = $5
	`, a.Name, a.Contact, a.Address, a.Preferences, a.ID)
	if err != nil {
		return mapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *adopterRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM adotantes WHERE id_adotante = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *adopterRepo) GetByID(ctx context.Context, id int64) (entity.Adopter, error) {
	return getAdopter(ctx, r.db, id)
}

func (r *adopterRepo) List(ctx context.Context, f adopters.ListFilter) ([]entity.Adopter, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + adopterColumns + " FROM adotantes")

	args := make([]any, 0, 3)
	argN := 1
	if strings.TrimSpace(f.NameContains) != "" {
		sb.WriteString(" WHERE " + nameLike(argN))
		args = append(args, likeArg(f.NameContains))
		argN++
	}

	page := f.Page.Normalize()
	sb.WriteString(fmt.Sprintf(" ORDER BY id_adotante LIMIT $%d OFFSET $%d", argN, argN+1))
	args = append(args, page.Limit, page.Offset)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Adopter, 0)
	for rows.Next() {
		a, err := scanAdopter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *adopterRepo) CountAdoptions(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM adocoes WHERE id_adotante = $1`, id).Scan(&n)
	return n, err
}

func scanAdopter(s scanner) (entity.Adopter, error) {
	var a entity.Adopter
	err := s.Scan(&a.ID, &a.Name, &a.Contact, &a.Address, &a.Preferences)
	return a, err
}

func getAdopter(ctx context.Context, q querier, id int64) (entity.Adopter, error) {
	a, err := scanAdopter(q.QueryRowContext(ctx, `SELECT `+adopterColumns+` FROM adotantes WHERE id_adotante = $1`, id))
	if err != nil {
		return entity.Adopter{}, mapErr(err)
	}
	return a, nil
}
