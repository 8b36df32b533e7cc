package animals

import (
	"net/http"

	"shelter-adoptions/internal/domain/entity"
	"shelter-adoptions/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animais", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))

		// Rutas estáticas antes de /{animalID}
		ar.Get("/buscar/nome", searchAnimalsHandler(svc))
		ar.Get("/resgatados/ano", rescuedInYearHandler(svc))
		ar.Get("/adotados/adotante", adoptedByAdopterHandler(svc))
		ar.Get("/disponiveis", availableAnimalsHandler(svc))
		ar.Get("/ordenar/idade", sortByAgeHandler(svc))
		ar.Get("/detalhes", detailedListingHandler(svc))

		ar.Route("/stats", func(sr chi.Router) {
			sr.Get("/total", countTotalHandler(svc))
			sr.Get("/status/{status}", countByStatusHandler(svc))
			sr.Get("/adotados/especie", countAdoptedBySpeciesHandler(svc))
		})

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

type createAnimalRequest struct {
	Name       string `json:"nome"`
	Species    string `json:"especie"`
	Age        int    `json:"idade"`
	RescueDate string `json:"data_resgate"` // YYYY-MM-DD
	Adopted    *bool  `json:"status_adocao"`
}

// updateAnimalRequest: punteros para PATCH real, nil = no tocar.
// id_animal se acepta y se descarta.
type updateAnimalRequest struct {
	ID         *int64  `json:"id_animal"`
	Name       *string `json:"nome"`
	Species    *string `json:"especie"`
	Age        *int    `json:"idade"`
	RescueDate *string `json:"data_resgate"`
	Adopted    *bool   `json:"status_adocao"`
}

type countResponse struct {
	Total int64 `json:"total"`
}

type statusCountResponse struct {
	Adopted bool  `json:"status_adocao"`
	Total   int64 `json:"total"`
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Registra un animal resgatado. status_adocao siempre arranca en false.
// @Tags animais
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal; data_resgate en YYYY-MM-DD"
// @Success 201 {object} entity.Animal
// @Failure 400 {string} string "invalid json / validación"
// @Router /animais [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			Species:    req.Species,
			Age:        req.Age,
			RescueDate: req.RescueDate,
			Adopted:    req.Adopted,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, a)
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Tags animais
// @Produce json
// @Param offset query int false "Default 0"
// @Param limit query int false "Default 10, máximo 100"
// @Success 200 {array} entity.Animal
// @Router /animais [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		items, err := svc.List(r.Context(), page)
		writeList(w, r, items, err)
	}
}

func searchAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		items, err := svc.SearchByName(r.Context(), r.URL.Query().Get("nome"), page)
		writeList(w, r, items, err)
	}
}

func rescuedInYearHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		year, err := httpx.QueryInt(r, "ano", 0)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		items, err := svc.FilterByRescueYear(r.Context(), year, page)
		writeList(w, r, items, err)
	}
}

func adoptedByAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		adopterID, err := httpx.RequiredQueryInt64(r, "adotante_id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		items, err := svc.FilterByAdopter(r.Context(), adopterID, page)
		writeList(w, r, items, err)
	}
}

// availableAnimalsHandler lista status_adocao = false ordenado por id.
func availableAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		adopted := false
		items, err := svc.FilterByStatus(r.Context(), &adopted, OrderByID, page)
		writeList(w, r, items, err)
	}
}

// sortByAgeHandler godoc
// @Summary Animales ordenados por edad
// @Description Orden ascendente por idade; status_adocao opcional (0/1 o true/false).
// @Tags animais
// @Produce json
// @Param status_adocao query string false "Filtro opcional"
// @Param offset query int false "Default 0"
// @Param limit query int false "Default 10, máximo 100"
// @Success 200 {array} entity.Animal
// @Router /animais/ordenar/idade [get]
func sortByAgeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		status, present, err := httpx.QueryBool(r, "status_adocao")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		var adopted *bool
		if present {
			adopted = &status
		}
		items, err := svc.FilterByStatus(r.Context(), adopted, OrderByAge, page)
		writeList(w, r, items, err)
	}
}

// detailedListingHandler godoc
// @Summary Listado detallado de animales
// @Description Una fila por adopción: animal, adopción, adoptante y atendentes. 404 si no hay animales en la página.
// @Tags animais
// @Produce json
// @Param offset query int false "Default 0"
// @Param limit query int false "Default 10, máximo 100"
// @Success 200 {array} entity.AnimalAdoptionRow
// @Failure 404 {string} string "no animals found"
// @Router /animais/detalhes [get]
func detailedListingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		rows, err := svc.DetailedListing(r.Context(), page)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rows)
	}
}

func countTotalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.CountTotal(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, countResponse{Total: n})
	}
}

func countByStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adopted, err := httpx.ParseBool("status", chi.URLParam(r, "status"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		n, err := svc.CountByStatus(r.Context(), adopted)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, statusCountResponse{Adopted: adopted, Total: n})
	}
}

// countAdoptedBySpeciesHandler godoc
// @Summary Animales adoptados por especie
// @Tags animais
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /animais/stats/adotados/especie [get]
func countAdoptedBySpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.CountAdoptedBySpecies(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, counts)
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "animalID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal (merge-patch)
// @Description Sólo se aplican los campos enviados. id_animal se ignora; status_adocao sólo se acepta si no cambia.
// @Tags animais
// @Accept json
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a modificar"
// @Success 200 {object} entity.Animal
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "animal not found"
// @Router /animais/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "animalID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		var req updateAnimalRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		a, err := svc.Update(r.Context(), id, entity.AnimalPatch{
			Name:       req.Name,
			Species:    req.Species,
			Age:        req.Age,
			RescueDate: req.RescueDate,
			Adopted:    req.Adopted,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar animal
// @Description 409 si el animal tiene historial de adopciones.
// @Tags animais
// @Produce json
// @Param animalID path int true "ID del animal"
// @Success 200 {object} map[string]bool
// @Failure 404 {string} string "animal not found"
// @Failure 409 {string} string "has adoption history"
// @Router /animais/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "animalID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.Ack(nil))
	}
}

func writeList(w http.ResponseWriter, r *http.Request, items []entity.Animal, err error) {
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if items == nil {
		items = []entity.Animal{}
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}
