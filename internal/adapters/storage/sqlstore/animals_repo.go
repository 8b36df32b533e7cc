package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"shelter-adoptions/internal/domain/animals"
	"shelter-adoptions/internal/domain/entity"
)

type animalRepo struct {
	db *sql.DB
}

const animalColumns = `id_animal, nome, especie, idade, data_resgate, status_adocao`

func (r *animalRepo) Create(ctx context.Context, a entity.Animal) (entity.Animal, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO animais (nome, especie, idade, data_resgate, status_adocao)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_animal
	`,
		a.Name,
		a.Species,
		a.Age,
		a.RescueDate.Time,
		a.Adopted,
	).Scan(&a.ID)
	if err != nil {
		return entity.Animal{}, mapErr(err)
	}
	return a, nil
}

// Update no escribe status_adocao: lo maneja el flujo de adopciones.
func (r *animalRepo) Update(ctx context.Context, a entity.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animais
		SET
			nome = $1,
			especie = $2,
			idade = $3,
			data_resgate = $4
		WHERE id_animal = $5
	`,
		a.Name,
		a.Species,
		a.Age,
		a.RescueDate.Time,
		a.ID,
	)
	if err != nil {
		return mapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *animalRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animais WHERE id_animal = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id int64) (entity.Animal, error) {
	return getAnimal(ctx, r.db, id)
}

func (r *animalRepo) List(ctx context.Context, f animals.ListFilter) ([]entity.Animal, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + animalColumns + " FROM animais WHERE 1=1")

	args := make([]any, 0, 6)
	argN := 1

	if strings.TrimSpace(f.NameContains) != "" {
		sb.WriteString(" AND " + nameLike(argN))
		args = append(args, likeArg(f.NameContains))
		argN++
	}
	if f.RescueYear != nil {
		from, to := entity.YearBounds(*f.RescueYear)
		sb.WriteString(fmt.Sprintf(" AND data_resgate >= $%d AND data_resgate < $%d", argN, argN+1))
		args = append(args, from.Time, to.Time)
		argN += 2
	}
	if f.AdopterID != nil {
		sb.WriteString(fmt.Sprintf(" AND id_animal IN (SELECT id_animal FROM adocoes WHERE id_adotante = $%d)", argN))
		args = append(args, *f.AdopterID)
		argN++
	}
	if f.Adopted != nil {
		sb.WriteString(fmt.Sprintf(" AND status_adocao = $%d", argN))
		args = append(args, *f.Adopted)
		argN++
	}

	if f.OrderBy == animals.OrderByAge {
		sb.WriteString(" ORDER BY idade, id_animal")
	} else {
		sb.WriteString(" ORDER BY id_animal")
	}

	page := f.Page.Normalize()
	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argN, argN+1))
	args = append(args, page.Limit, page.Offset)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *animalRepo) Count(ctx context.Context, adopted *bool) (int64, error) {
	var n int64
	var err error
	if adopted == nil {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM animais`).Scan(&n)
	} else {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM animais WHERE status_adocao = $1`, *adopted).Scan(&n)
	}
	return n, err
}

func (r *animalRepo) CountAdoptedBySpecies(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT especie, COUNT(*)
		FROM animais
		WHERE status_adocao = TRUE
		GROUP BY especie
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var species string
		var n int64
		if err := rows.Scan(&species, &n); err != nil {
			return nil, err
		}
		out[species] = n
	}
	return out, rows.Err()
}

func (r *animalRepo) CountAdoptions(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM adocoes WHERE id_animal = $1`, id).Scan(&n)
	return n, err
}

func (r *animalRepo) AdoptionsOf(ctx context.Context, animalIDs []int64) ([]entity.AdoptionDetail, error) {
	if len(animalIDs) == 0 {
		return nil, nil
	}
	items, err := queryAdoptions(ctx, r.db, `
		SELECT `+adoptionColumns+`
		FROM adocoes
		WHERE id_animal IN (`+placeholders(1, len(animalIDs))+`)
		ORDER BY id_animal, id_adocao
	`, int64Args(animalIDs)...)
	if err != nil {
		return nil, err
	}
	return loadDetails(ctx, r.db, items)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (entity.Animal, error) {
	var a entity.Animal
	var rescued time.Time
	if err := s.Scan(
		&a.ID,
		&a.Name,
		&a.Species,
		&a.Age,
		&rescued,
		&a.Adopted,
	); err != nil {
		return entity.Animal{}, err
	}
	a.RescueDate = entity.NewDate(rescued)
	return a, nil
}

func getAnimal(ctx context.Context, q querier, id int64) (entity.Animal, error) {
	row := q.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animais WHERE id_animal = $1`, id)
	a, err := scanAnimal(row)
	if err != nil {
		return entity.Animal{}, mapErr(err)
	}
	return a, nil
}
