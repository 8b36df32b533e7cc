package sqlstore

import (
	"context"
	"time"

	"shelter-adoptions/internal/domain/entity"
)

const adoptionColumns = `id_adocao, data_adocao, cancelamento, id_animal, id_adotante`

func scanAdoption(s scanner) (entity.Adoption, error) {
	var a entity.Adoption
	var date time.Time
	if err := s.Scan(&a.ID, &date, &a.Cancelled, &a.AnimalID, &a.AdopterID); err != nil {
		return entity.Adoption{}, err
	}
	a.Date = entity.NewDate(date)
	return a, nil
}

func queryAdoptions(ctx context.Context, q querier, query string, args ...any) ([]entity.Adoption, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Adoption, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// loadDetails carga animal, adoptante y atendentes de cada adopción con una
// consulta IN por relación. Respeta el orden de items.
func loadDetails(ctx context.Context, q querier, items []entity.Adoption) ([]entity.AdoptionDetail, error) {
	if len(items) == 0 {
		return []entity.AdoptionDetail{}, nil
	}

	adoptionIDs := make([]int64, 0, len(items))
	animalIDs := make([]int64, 0, len(items))
	adopterIDs := make([]int64, 0, len(items))
	for _, a := range items {
		adoptionIDs = append(adoptionIDs, a.ID)
		animalIDs = append(animalIDs, a.AnimalID)
		adopterIDs = append(adopterIDs, a.AdopterID)
	}

	animalsByID, err := animalsIn(ctx, q, dedupe(animalIDs))
	if err != nil {
		return nil, err
	}
	adoptersByID, err := adoptersIn(ctx, q, dedupe(adopterIDs))
	if err != nil {
		return nil, err
	}
	linked, err := attendantsByAdoption(ctx, q, adoptionIDs)
	if err != nil {
		return nil, err
	}

	out := make([]entity.AdoptionDetail, 0, len(items))
	for _, a := range items {
		at := linked[a.ID]
		if at == nil {
			at = []entity.Attendant{}
		}
		out = append(out, entity.AdoptionDetail{
			Adoption:   a,
			Animal:     animalsByID[a.AnimalID],
			Adopter:    adoptersByID[a.AdopterID],
			Attendants: at,
		})
	}
	return out, nil
}

func animalsIn(ctx context.Context, q querier, ids []int64) (map[int64]entity.Animal, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT `+animalColumns+`
		FROM animais
		WHERE id_animal IN (`+placeholders(1, len(ids))+`)
	`, int64Args(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]entity.Animal, len(ids))
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out[a.ID] = a
	}
	return out, rows.Err()
}

func adoptersIn(ctx context.Context, q querier, ids []int64) (map[int64]entity.Adopter, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT `+adopterColumns+`
		FROM adotantes
		WHERE id_adotante IN (`+placeholders(1, len(ids))+`)
	`, int64Args(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]entity.Adopter, len(ids))
	for rows.Next() {
		a, err := scanAdopter(rows)
		if err != nil {
			return nil, err
		}
		out[a.ID] = a
	}
	return out, rows.Err()
}

// attendantsByAdoption agrupa los atendentes por adopción, ordenados por id.
func attendantsByAdoption(ctx context.Context, q querier, adoptionIDs []int64) (map[int64][]entity.Attendant, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT aa.id_adocao, atd.id_atendente, atd.nome
		FROM adocao_atend aa
		JOIN atendentes atd ON atd.id_atendente = aa.id_atendente
		WHERE aa.id_adocao IN (`+placeholders(1, len(adoptionIDs))+`)
		ORDER BY aa.id_adocao, atd.id_atendente
	`, int64Args(adoptionIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]entity.Attendant)
	for rows.Next() {
		var adoptionID int64
		var a entity.Attendant
		if err := rows.Scan(&adoptionID, &a.ID, &a.Name); err != nil {
			return nil, err
		}
		out[adoptionID] = append(out[adoptionID], a)
	}
	return out, rows.Err()
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
