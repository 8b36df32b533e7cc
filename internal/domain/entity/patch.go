package entity

import (
	"fmt"
	"strings"
)

// Contrato merge-patch común:
//   - nil = no tocar.
//   - los ids nunca se aplican (el payload puede traerlos; se ignoran).
//   - status_adocao es derivado: sólo se acepta si coincide con el valor guardado.
//   - cancelamento se resuelve en el servicio de adopciones (máquina de estados).

type AnimalPatch struct {
	Name       *string
	Species    *string
	Age        *int
	RescueDate *string // texto YYYY-MM-DD, se parsea en Apply
	Adopted    *bool
}

func (p AnimalPatch) Apply(a *Animal) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return fmt.Errorf("%w: nome must not be empty", ErrInvalidInput)
		}
		a.Name = name
	}
	if p.Species != nil {
		species := strings.TrimSpace(*p.Species)
		if species == "" {
			return fmt.Errorf("%w: especie must not be empty", ErrInvalidInput)
		}
		a.Species = species
	}
	if p.Age != nil {
		if *p.Age < 0 {
			return fmt.Errorf("%w: idade must be >= 0", ErrInvalidInput)
		}
		a.Age = *p.Age
	}
	if p.RescueDate != nil {
		d, err := ParseDate("data_resgate", *p.RescueDate)
		if err != nil {
			return err
		}
		a.RescueDate = d
	}
	if p.Adopted != nil && *p.Adopted != a.Adopted {
		return fmt.Errorf("%w: status_adocao is managed by adoptions", ErrInvalidInput)
	}
	return nil
}

type AdopterPatch struct {
	Name        *string
	Contact     *string
	Address     *string
	Preferences *string
}

func (p AdopterPatch) Apply(a *Adopter) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return fmt.Errorf("%w: nome must not be empty", ErrInvalidInput)
		}
		a.Name = name
	}
	if p.Contact != nil {
		a.Contact = strings.TrimSpace(*p.Contact)
	}
	if p.Address != nil {
		a.Address = strings.TrimSpace(*p.Address)
	}
	if p.Preferences != nil {
		a.Preferences = strings.TrimSpace(*p.Preferences)
	}
	return nil
}

type AttendantPatch struct {
	Name *string
}

func (p AttendantPatch) Apply(a *Attendant) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return fmt.Errorf("%w: nome must not be empty", ErrInvalidInput)
		}
		a.Name = name
	}
	return nil
}

// AdoptionPatch sólo aplica la fecha. Cancelled lo interpreta el servicio de
// adopciones, porque cambiarlo arrastra el status del animal.
type AdoptionPatch struct {
	Date      *string
	Cancelled *bool
}

func (p AdoptionPatch) ApplyDate(a *Adoption) error {
	if p.Date == nil {
		return nil
	}
	d, err := ParseDate("data_adocao", *p.Date)
	if err != nil {
		return err
	}
	a.Date = d
	return nil
}
