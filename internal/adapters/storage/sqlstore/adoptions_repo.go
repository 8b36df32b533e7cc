package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"shelter-adoptions/internal/domain/adoptions"
	"shelter-adoptions/internal/domain/entity"
)

const defaultTxTimeout = 5 * time.Second

type adoptionRepo struct {
	db *sql.DB
}

func (r *adoptionRepo) List(ctx context.Context, f adoptions.ListFilter) ([]entity.Adoption, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + adoptionColumns + " FROM adocoes WHERE 1=1")

	args := make([]any, 0, 5)
	argN := 1
	if f.Cancelled != nil {
		sb.WriteString(fmt.Sprintf(" AND cancelamento = $%d", argN))
		args = append(args, *f.Cancelled)
		argN++
	}
	if f.Year != nil {
		from, to := entity.YearBounds(*f.Year)
		sb.WriteString(fmt.Sprintf(" AND data_adocao >= $%d AND data_adocao < $%d", argN, argN+1))
		args = append(args, from.Time, to.Time)
		argN += 2
	}

	if f.NewestFirst {
		sb.WriteString(" ORDER BY data_adocao DESC, id_adocao DESC")
	} else {
		sb.WriteString(" ORDER BY id_adocao")
	}

	page := f.Page.Normalize()
	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argN, argN+1))
	args = append(args, page.Limit, page.Offset)

	return queryAdoptions(ctx, r.db, sb.String(), args...)
}

func (r *adoptionRepo) GetDetail(ctx context.Context, id int64) (entity.AdoptionDetail, error) {
	a, err := getAdoption(ctx, r.db, id)
	if err != nil {
		return entity.AdoptionDetail{}, err
	}
	details, err := loadDetails(ctx, r.db, []entity.Adoption{a})
	if err != nil {
		return entity.AdoptionDetail{}, err
	}
	return details[0], nil
}

func (r *adoptionRepo) Report(ctx context.Context, page entity.Page) ([]entity.AdoptionDetail, error) {
	page = page.Normalize()
	items, err := queryAdoptions(ctx, r.db, `
		SELECT `+adoptionColumns+`
		FROM adocoes
		ORDER BY data_adocao DESC, id_adocao DESC
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return loadDetails(ctx, r.db, items)
}

func (r *adoptionRepo) ActiveReport(ctx context.Context, page entity.Page) ([]entity.ActiveAdoptionRow, error) {
	page = page.Normalize()
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			ad.id_adocao,
			an.id_animal, an.nome,
			ao.id_adotante, ao.nome,
			atd.id_atendente, atd.nome
		FROM adocoes ad
		JOIN animais an ON an.id_animal = ad.id_animal
		JOIN adotantes ao ON ao.id_adotante = ad.id_adotante
		LEFT JOIN adocao_atend aa ON aa.id_adocao = ad.id_adocao
		LEFT JOIN atendentes atd ON atd.id_atendente = aa.id_atendente
		WHERE ad.cancelamento = FALSE AND an.status_adocao = TRUE
		ORDER BY ad.id_adocao, atd.id_atendente
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.ActiveAdoptionRow, 0)
	for rows.Next() {
		var row entity.ActiveAdoptionRow
		var attendantID sql.NullInt64
		var attendantName sql.NullString
		if err := rows.Scan(
			&row.AdoptionID,
			&row.AnimalID,
			&row.AnimalName,
			&row.AdopterID,
			&row.AdopterName,
			&attendantID,
			&attendantName,
		); err != nil {
			return nil, err
		}
		if attendantID.Valid {
			id := attendantID.Int64
			row.AttendantID = &id
		}
		if attendantName.Valid {
			name := attendantName.String
			row.AttendantName = &name
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *adoptionRepo) RunInTx(ctx context.Context, fn func(tx adoptions.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTxTimeout)
		defer cancel()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&sqlTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

func getAdoption(ctx context.Context, q querier, id int64) (entity.Adoption, error) {
	row := q.QueryRowContext(ctx, `SELECT `+adoptionColumns+` FROM adocoes WHERE id_adocao = $1`, id)
	a, err := scanAdoption(row)
	if err != nil {
		return entity.Adoption{}, mapErr(err)
	}
	return a, nil
}

// sqlTx implementa adoptions.Tx. Todas las consultas pasan por tx.
type sqlTx struct {
	tx *sql.Tx
}

func (x *sqlTx) GetAnimal(ctx context.Context, id int64) (entity.Animal, error) {
	return getAnimal(ctx, x.tx, id)
}

func (x *sqlTx) GetAdopter(ctx context.Context, id int64) (entity.Adopter, error) {
	return getAdopter(ctx, x.tx, id)
}

func (x *sqlTx) GetAttendant(ctx context.Context, id int64) (entity.Attendant, error) {
	return getAttendant(ctx, x.tx, id)
}

func (x *sqlTx) GetAdoption(ctx context.Context, id int64) (entity.Adoption, error) {
	return getAdoption(ctx, x.tx, id)
}

// MarkAnimalAdopted es un compare-and-set: con dos transacciones concurrentes
// sobre el mismo animal sólo una ve filas afectadas.
func (x *sqlTx) MarkAnimalAdopted(ctx context.Context, animalID int64) (bool, error) {
	res, err := x.tx.ExecContext(ctx, `
		UPDATE animais SET status_adocao = TRUE
		WHERE id_animal = $1 AND status_adocao = FALSE
	`, animalID)
	if err != nil {
		return false, mapErr(err)
	}
	n, _ := res.RowsAffected()
	return n == 1, nil
}

func (x *sqlTx) ReleaseAnimal(ctx context.Context, animalID int64) error {
	res, err := x.tx.ExecContext(ctx, `UPDATE animais SET status_adocao = FALSE WHERE id_animal = $1`, animalID)
	if err != nil {
		return mapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (x *sqlTx) CreateAdoption(ctx context.Context, a entity.Adoption) (entity.Adoption, error) {
	err := x.tx.QueryRowContext(ctx, `
		INSERT INTO adocoes (data_adocao, cancelamento, id_animal, id_adotante)
		VALUES ($1, $2, $3, $4)
		RETURNING id_adocao
	`, a.Date.Time, a.Cancelled, a.AnimalID, a.AdopterID).Scan(&a.ID)
	if err != nil {
		return entity.Adoption{}, mapErr(err)
	}
	return a, nil
}

func (x *sqlTx) UpdateAdoption(ctx context.Context, a entity.Adoption) error {
	res, err := x.tx.ExecContext(ctx, `UPDATE adocoes SET data_adocao = $1 WHERE id_adocao = $2`, a.Date.Time, a.ID)
	if err != nil {
		return mapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (x *sqlTx) CancelAdoption(ctx context.Context, id int64) (bool, error) {
	res, err := x.tx.ExecContext(ctx, `
		UPDATE adocoes SET cancelamento = TRUE
		WHERE id_adocao = $1 AND cancelamento = FALSE
	`, id)
	if err != nil {
		return false, mapErr(err)
	}
	n, _ := res.RowsAffected()
	return n == 1, nil
}

func (x *sqlTx) DeleteAdoption(ctx context.Context, id int64) error {
	if _, err := x.tx.ExecContext(ctx, `DELETE FROM adocao_atend WHERE id_adocao = $1`, id); err != nil {
		return mapErr(err)
	}
	res, err := x.tx.ExecContext(ctx, `DELETE FROM adocoes WHERE id_adocao = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (x *sqlTx) LinkAttendant(ctx context.Context, adoptionID, attendantID int64) error {
	_, err := x.tx.ExecContext(ctx, `
		INSERT INTO adocao_atend (id_adocao, id_atendente)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, adoptionID, attendantID)
	return mapErr(err)
}

func (x *sqlTx) UnlinkAttendant(ctx context.Context, adoptionID, attendantID int64) error {
	_, err := x.tx.ExecContext(ctx, `
		DELETE FROM adocao_atend WHERE id_adocao = $1 AND id_atendente = $2
	`, adoptionID, attendantID)
	return mapErr(err)
}
