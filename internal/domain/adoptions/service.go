package adoptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shelter-adoptions/internal/domain/entity"
	"shelter-adoptions/internal/platform/logger"
)

// Recorder recibe las transiciones confirmadas. nil = no se registra nada.
type Recorder interface {
	AdoptionCreated()
	AdoptionCancelled()
	AdoptionDeleted()
}

type Service struct {
	repo Repository
	rec  Recorder
	now  func() time.Time
}

func NewService(repo Repository, rec Recorder) *Service {
	return &Service{repo: repo, rec: rec, now: time.Now}
}

type CreateInput struct {
	AnimalID   int64
	AdopterID  int64
	Date       *string // YYYY-MM-DD; nil = hoy
	Cancelled  *bool
	Attendants []int64
}

// Create registra la adopción, vincula atendentes y marca al animal como
// adoptado en una sola transacción.
func (s *Service) Create(ctx context.Context, in CreateInput) (entity.AdoptionDetail, error) {
	if in.AnimalID <= 0 {
		return entity.AdoptionDetail{}, fmt.Errorf("%w: id_animal is required", entity.ErrInvalidInput)
	}
	if in.AdopterID <= 0 {
		return entity.AdoptionDetail{}, fmt.Errorf("%w: id_adotante is required", entity.ErrInvalidInput)
	}
	if in.Cancelled != nil && *in.Cancelled {
		return entity.AdoptionDetail{}, fmt.Errorf("%w: an adoption cannot be created cancelled", entity.ErrInvalidInput)
	}
	date := entity.NewDate(s.now())
	if in.Date != nil {
		d, err := entity.ParseDate("data_adocao", *in.Date)
		if err != nil {
			return entity.AdoptionDetail{}, err
		}
		date = d
	}
	attendantIDs, err := uniqueIDs(in.Attendants)
	if err != nil {
		return entity.AdoptionDetail{}, err
	}

	var out entity.AdoptionDetail
	err = s.repo.RunInTx(ctx, func(tx Tx) error {
		animal, err := tx.GetAnimal(ctx, in.AnimalID)
		if err != nil {
			return missing(err, "animal", in.AnimalID)
		}
		adopter, err := tx.GetAdopter(ctx, in.AdopterID)
		if err != nil {
			return missing(err, "adopter", in.AdopterID)
		}
		attendants := make([]entity.Attendant, 0, len(attendantIDs))
		for _, id := range attendantIDs {
			at, err := tx.GetAttendant(ctx, id)
			if err != nil {
				return missing(err, "attendant", id)
			}
			attendants = append(attendants, at)
		}

		ok, err := tx.MarkAnimalAdopted(ctx, animal.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: animal %d is already adopted", entity.ErrConflict, animal.ID)
		}
		animal.Adopted = true

		created, err := tx.CreateAdoption(ctx, entity.Adoption{
			Date:      date,
			AnimalID:  animal.ID,
			AdopterID: adopter.ID,
		})
		if err != nil {
			return err
		}
		for _, at := range attendants {
			if err := tx.LinkAttendant(ctx, created.ID, at.ID); err != nil {
				return err
			}
		}

		out = entity.AdoptionDetail{
			Adoption:   created,
			Animal:     animal,
			Adopter:    adopter,
			Attendants: attendants,
		}
		return nil
	})
	if err != nil {
		return entity.AdoptionDetail{}, err
	}

	if s.rec != nil {
		s.rec.AdoptionCreated()
	}
	logger.FromContext(ctx).Info("adoption created", map[string]any{
		"id_adocao":   out.ID,
		"id_animal":   out.AnimalID,
		"id_adotante": out.AdopterID,
	})
	return out, nil
}

// CancelResult es el ack de Cancel.
type CancelResult struct {
	Cancelled      bool
	AnimalReleased bool
}

func (s *Service) Cancel(ctx context.Context, id int64) (CancelResult, error) {
	var res CancelResult
	err := s.repo.RunInTx(ctx, func(tx Tx) error {
		a, err := tx.GetAdoption(ctx, id)
		if err != nil {
			return missing(err, "adoption", id)
		}
		res, err = s.leave(ctx, tx, a, stateCancelled)
		return err
	})
	if err != nil {
		return CancelResult{}, err
	}
	s.recorded(ctx, id, stateCancelled)
	return res, nil
}

// HardDelete borra la adopción y sus vínculos. Si estaba vigente el animal
// vuelve a quedar disponible.
func (s *Service) HardDelete(ctx context.Context, id int64) error {
	err := s.repo.RunInTx(ctx, func(tx Tx) error {
		a, err := tx.GetAdoption(ctx, id)
		if err != nil {
			return missing(err, "adoption", id)
		}
		_, err = s.leave(ctx, tx, a, stateDeleted)
		return err
	})
	if err != nil {
		return err
	}
	s.recorded(ctx, id, stateDeleted)
	return nil
}

// Update aplica data_adocao y, si viene, cancelamento. Ningún patch saca a
// una adopción del estado cancelado.
func (s *Service) Update(ctx context.Context, id int64, patch entity.AdoptionPatch) (entity.AdoptionDetail, error) {
	cancelled := false
	err := s.repo.RunInTx(ctx, func(tx Tx) error {
		a, err := tx.GetAdoption(ctx, id)
		if err != nil {
			return missing(err, "adoption", id)
		}
		if patch.Cancelled != nil && !*patch.Cancelled && a.Cancelled {
			return fmt.Errorf("%w: adoption %d is cancelled and cannot be reactivated", entity.ErrConflict, id)
		}
		if err := patch.ApplyDate(&a); err != nil {
			return err
		}
		if patch.Date != nil {
			if err := tx.UpdateAdoption(ctx, a); err != nil {
				return missing(err, "adoption", id)
			}
		}
		if patch.Cancelled != nil && *patch.Cancelled && a.Active() {
			if _, err := s.leave(ctx, tx, a, stateCancelled); err != nil {
				return err
			}
			cancelled = true
		}
		return nil
	})
	if err != nil {
		return entity.AdoptionDetail{}, err
	}
	if cancelled {
		s.recorded(ctx, id, stateCancelled)
	}
	return s.GetWithRelations(ctx, id)
}

func (s *Service) GetWithRelations(ctx context.Context, id int64) (entity.AdoptionDetail, error) {
	d, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return entity.AdoptionDetail{}, missing(err, "adoption", id)
	}
	if d.Attendants == nil {
		d.Attendants = []entity.Attendant{}
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, page entity.Page) ([]entity.Adoption, error) {
	return s.repo.List(ctx, ListFilter{Page: page})
}

func (s *Service) FilterByCancellation(ctx context.Context, cancelled bool, page entity.Page) ([]entity.Adoption, error) {
	return s.repo.List(ctx, ListFilter{Cancelled: &cancelled, Page: page})
}

func (s *Service) FilterByYear(ctx context.Context, year int, page entity.Page) ([]entity.Adoption, error) {
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: ano out of range", entity.ErrInvalidInput)
	}
	return s.repo.List(ctx, ListFilter{Year: &year, Page: page})
}

func (s *Service) MostRecent(ctx context.Context, page entity.Page) ([]entity.Adoption, error) {
	return s.repo.List(ctx, ListFilter{NewestFirst: true, Page: page})
}

// FullReport es NotFound cuando la página no tiene adopciones.
func (s *Service) FullReport(ctx context.Context, page entity.Page) ([]entity.AdoptionDetail, error) {
	items, err := s.repo.Report(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no adoptions found", entity.ErrNotFound)
	}
	for i := range items {
		if items[i].Attendants == nil {
			items[i].Attendants = []entity.Attendant{}
		}
	}
	return items, nil
}

func (s *Service) ActiveReport(ctx context.Context, page entity.Page) ([]entity.ActiveAdoptionRow, error) {
	return s.repo.ActiveReport(ctx, page)
}

// AssignAttendant vincula un atendente a una adopción vigente.
func (s *Service) AssignAttendant(ctx context.Context, id, attendantID int64) (entity.AdoptionDetail, error) {
	err := s.repo.RunInTx(ctx, func(tx Tx) error {
		a, err := tx.GetAdoption(ctx, id)
		if err != nil {
			return missing(err, "adoption", id)
		}
		if _, err := tx.GetAttendant(ctx, attendantID); err != nil {
			return missing(err, "attendant", attendantID)
		}
		if a.Cancelled {
			return fmt.Errorf("%w: adoption %d is cancelled", entity.ErrConflict, id)
		}
		return tx.LinkAttendant(ctx, id, attendantID)
	})
	if err != nil {
		return entity.AdoptionDetail{}, err
	}
	return s.GetWithRelations(ctx, id)
}

func (s *Service) UnassignAttendant(ctx context.Context, id, attendantID int64) (entity.AdoptionDetail, error) {
	err := s.repo.RunInTx(ctx, func(tx Tx) error {
		if _, err := tx.GetAdoption(ctx, id); err != nil {
			return missing(err, "adoption", id)
		}
		if _, err := tx.GetAttendant(ctx, attendantID); err != nil {
			return missing(err, "attendant", attendantID)
		}
		return tx.UnlinkAttendant(ctx, id, attendantID)
	})
	if err != nil {
		return entity.AdoptionDetail{}, err
	}
	return s.GetWithRelations(ctx, id)
}

type state int

const (
	stateCancelled state = iota + 1
	stateDeleted
)

// leave saca una adopción del estado vigente (o borra una ya cancelada).
// Es el único camino que libera al animal.
func (s *Service) leave(ctx context.Context, tx Tx, a entity.Adoption, to state) (CancelResult, error) {
	switch to {
	case stateCancelled:
		ok, err := tx.CancelAdoption(ctx, a.ID)
		if err != nil {
			return CancelResult{}, err
		}
		if !ok {
			return CancelResult{}, fmt.Errorf("%w: adoption %d is already cancelled", entity.ErrConflict, a.ID)
		}
	case stateDeleted:
		if err := tx.DeleteAdoption(ctx, a.ID); err != nil {
			return CancelResult{}, missing(err, "adoption", a.ID)
		}
	default:
		return CancelResult{}, fmt.Errorf("unknown adoption state %d", to)
	}

	res := CancelResult{Cancelled: to == stateCancelled}
	if a.Active() {
		if err := tx.ReleaseAnimal(ctx, a.AnimalID); err != nil {
			return CancelResult{}, err
		}
		res.AnimalReleased = true
	}
	return res, nil
}

func (s *Service) recorded(ctx context.Context, id int64, to state) {
	msg := "adoption cancelled"
	if to == stateDeleted {
		msg = "adoption deleted"
	}
	if s.rec != nil {
		if to == stateDeleted {
			s.rec.AdoptionDeleted()
		} else {
			s.rec.AdoptionCancelled()
		}
	}
	logger.FromContext(ctx).Info(msg, map[string]any{"id_adocao": id})
}

func uniqueIDs(ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: atendentes must contain positive ids", entity.ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func missing(err error, kind string, id int64) error {
	if errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("%w: %s %d", entity.ErrNotFound, kind, id)
	}
	return err
}
