package adoptions

import (
	"net/http"

	"shelter-adoptions/internal/domain/entity"
	"shelter-adoptions/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adocoes", func(ar chi.Router) {
		ar.Post("/", createAdoptionHandler(svc))
		ar.Get("/", listAdoptionsHandler(svc))

		ar.Get("/canceladas", cancelledAdoptionsHandler(svc))
		ar.Get("/recentes", recentAdoptionsHandler(svc))
		ar.Get("/ano/{ano}", adoptionsByYearHandler(svc))
		ar.Get("/id/{adoptionID}", getAdoptionHandler(svc))
		ar.Get("/relatorio/completo/ordenados", fullReportHandler(svc))
		ar.Get("/relatorio/ativos", activeReportHandler(svc))

		ar.Route("/{adoptionID}", func(ir chi.Router) {
			ir.Get("/", getAdoptionHandler(svc))
			ir.Put("/", updateAdoptionHandler(svc))
			ir.Patch("/", updateAdoptionHandler(svc))
			ir.Delete("/cancelar", cancelAdoptionHandler(svc))
			ir.Delete("/hard", hardDeleteAdoptionHandler(svc))
			ir.Post("/atendentes/{attendantID}", assignAttendantHandler(svc))
			ir.Delete("/atendentes/{attendantID}", unassignAttendantHandler(svc))
		})
	})
}

// createAdoptionRequest: id_animal e id_adotante pueden venir en query o en body;
// la query tiene prioridad.
type createAdoptionRequest struct {
	AnimalID   int64   `json:"id_animal"`
	AdopterID  int64   `json:"id_adotante"`
	Date       *string `json:"data_adocao"`
	Cancelled  *bool   `json:"cancelamento"`
	Attendants []int64 `json:"atendentes"`
}

type updateAdoptionRequest struct {
	ID        *int64  `json:"id_adocao"` // se ignora
	Date      *string `json:"data_adocao"`
	Cancelled *bool   `json:"cancelamento"`
}

// createAdoptionHandler godoc
// @Summary Registrar adopción
// @Description Marca al animal como adoptado. 409 si ya lo estaba.
// @Tags adocoes
// @Accept json
// @Produce json
// @Param id_animal query int false "ID del animal (o en el body)"
// @Param id_adotante query int false "ID del adoptante (o en el body)"
// @Param payload body createAdoptionRequest false "data_adocao opcional (default hoy), atendentes opcional"
// @Success 201 {object} entity.AdoptionDetail
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "animal/adopter/attendant not found"
// @Failure 409 {string} string "animal already adopted"
// @Router /adocoes [post]
func createAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdoptionRequest
		if err := httpx.DecodeOptionalJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		animalID, err := httpx.OptionalQueryInt64(r, "id_animal")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		adopterID, err := httpx.OptionalQueryInt64(r, "id_adotante")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if animalID == 0 {
			animalID = req.AnimalID
		}
		if adopterID == 0 {
			adopterID = req.AdopterID
		}

		d, err := svc.Create(r.Context(), CreateInput{
			AnimalID:   animalID,
			AdopterID:  adopterID,
			Date:       req.Date,
			Cancelled:  req.Cancelled,
			Attendants: req.Attendants,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, d)
	}
}

func listAdoptionsHandler(svc *Service) http.HandlerFunc {
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

func cancelledAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		status, present, err := httpx.QueryBool(r, "status")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if !present {
			status = true
		}
		items, err := svc.FilterByCancellation(r.Context(), status, page)
		writeList(w, r, items, err)
	}
}

func recentAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		items, err := svc.MostRecent(r.Context(), page)
		writeList(w, r, items, err)
	}
}

func adoptionsByYearHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		year, err := httpx.IDParam(r, "ano")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		items, err := svc.FilterByYear(r.Context(), int(year), page)
		writeList(w, r, items, err)
	}
}

// getAdoptionHandler godoc
// @Summary Adopción con relaciones
// @Tags adocoes
// @Produce json
// @Param adoptionID path int true "ID de la adopción"
// @Success 200 {object} entity.AdoptionDetail
// @Failure 404 {string} string "adoption not found"
// @Router /adocoes/{adoptionID} [get]
func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "adoptionID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		d, err := svc.GetWithRelations(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, d)
	}
}

// updateAdoptionHandler godoc
// @Summary Actualizar adopción (merge-patch)
// @Description cancelamento=true cancela y libera al animal; cancelamento=false sobre una cancelada es 409.
// @Tags adocoes
// @Accept json
// @Produce json
// @Param adoptionID path int true "ID de la adopción"
// @Param payload body updateAdoptionRequest true "Campos a modificar"
// @Success 200 {object} entity.AdoptionDetail
// @Failure 404 {string} string "adoption not found"
// @Failure 409 {string} string "cancelled"
// @Router /adocoes/{adoptionID} [patch]
func updateAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "adoptionID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		var req updateAdoptionRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		d, err := svc.Update(r.Context(), id, entity.AdoptionPatch{Date: req.Date, Cancelled: req.Cancelled})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, d)
	}
}

// cancelAdoptionHandler godoc
// @Summary Cancelar adopción
// @Description Marca cancelamento y libera al animal en la misma transacción.
// @Tags adocoes
// @Produce json
// @Param adoptionID path int true "ID de la adopción"
// @Success 200 {object} map[string]bool
// @Failure 404 {string} string "adoption not found"
// @Failure 409 {string} string "already cancelled"
// @Router /adocoes/{adoptionID}/cancelar [delete]
func cancelAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "adoptionID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		res, err := svc.Cancel(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.Ack(map[string]bool{
			"cancelada":       res.Cancelled,
			"animal_liberado": res.AnimalReleased,
		}))
	}
}

func hardDeleteAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "adoptionID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if err := svc.HardDelete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.Ack(map[string]bool{"deletada": true}))
	}
}

func assignAttendantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, attendantID, ok := linkParams(w, r)
		if !ok {
			return
		}
		d, err := svc.AssignAttendant(r.Context(), id, attendantID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, d)
	}
}

func unassignAttendantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, attendantID, ok := linkParams(w, r)
		if !ok {
			return
		}
		d, err := svc.UnassignAttendant(r.Context(), id, attendantID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, d)
	}
}

// fullReportHandler godoc
// @Summary Reporte completo de adopciones
// @Description Orden por data_adocao desc con animal, adoptante y atendentes. 404 si la página está vacía.
// @Tags adocoes
// @Produce json
// @Param offset query int false "Default 0"
// @Param limit query int false "Default 10, máximo 100"
// @Success 200 {array} entity.AdoptionDetail
// @Failure 404 {string} string "no adoptions found"
// @Router /adocoes/relatorio/completo/ordenados [get]
func fullReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		items, err := svc.FullReport(r.Context(), page)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

// activeReportHandler godoc
// @Summary Adopciones vigentes
// @Tags adocoes
// @Produce json
// @Param offset query int false "Default 0"
// @Param limit query int false "Default 10, máximo 100"
// @Success 200 {array} entity.ActiveAdoptionRow
// @Router /adocoes/relatorio/ativos [get]
func activeReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		rows, err := svc.ActiveReport(r.Context(), page)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if rows == nil {
			rows = []entity.ActiveAdoptionRow{}
		}
		httpx.WriteJSON(w, http.StatusOK, rows)
	}
}

func linkParams(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	id, err := httpx.IDParam(r, "adoptionID")
	if err != nil {
		httpx.WriteError(w, r, err)
		return 0, 0, false
	}
	attendantID, err := httpx.IDParam(r, "attendantID")
	if err != nil {
		httpx.WriteError(w, r, err)
		return 0, 0, false
	}
	return id, attendantID, true
}

func writeList(w http.ResponseWriter, r *http.Request, items []entity.Adoption, err error) {
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if items == nil {
		items = []entity.Adoption{}
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}
