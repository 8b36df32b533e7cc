package attendants

import (
	"net/http"

	"shelter-adoptions/internal/domain/entity"
	"shelter-adoptions/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/atendentes", func(ar chi.Router) {
		ar.Post("/", createAttendantHandler(svc))
		ar.Get("/", listAttendantsHandler(svc))
		ar.Get("/buscar/nome", searchAttendantsHandler(svc))
		ar.Get("/ordenar/nome", sortAttendantsHandler(svc))
		ar.Get("/stats/total", countAttendantsHandler(svc))

		ar.Get("/{attendantID}", getAttendantHandler(svc))
		ar.Put("/{attendantID}", updateAttendantHandler(svc))
		ar.Patch("/{attendantID}", updateAttendantHandler(svc))
		ar.Delete("/{attendantID}", deleteAttendantHandler(svc))
	})
}

type createAttendantRequest struct {
	Name string `json:"nome"`
}

type updateAttendantRequest struct {
	ID   *int64  `json:"id_atendente"` // se ignora
	Name *string `json:"nome"`
}

type countResponse struct {
	Total int64 `json:"total"`
}

func createAttendantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAttendantRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		a, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, a)
	}
}

func listAttendantsHandler(svc *Service) http.HandlerFunc {
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

func searchAttendantsHandler(svc *Service) http.HandlerFunc {
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

// sortAttendantsHandler godoc
// @Summary Atendentes ordenados por nombre
// @Tags atendentes
// @Produce json
// @Param offset query int false "Default 0"
// @Param limit query int false "Default 10, máximo 100"
// @Success 200 {array} entity.Attendant
// @Router /atendentes/ordenar/nome [get]
func sortAttendantsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.Page(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		items, err := svc.SortByName(r.Context(), page)
		writeList(w, r, items, err)
	}
}

func countAttendantsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.CountTotal(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, countResponse{Total: n})
	}
}

func getAttendantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "attendantID")
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

func updateAttendantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "attendantID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		var req updateAttendantRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		a, err := svc.Update(r.Context(), id, entity.AttendantPatch{Name: req.Name})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

// deleteAttendantHandler godoc
// @Summary Eliminar atendente
// @Description 409 si el atendente está vinculado a alguna adopción.
// @Tags atendentes
// @Produce json
// @Param attendantID path int true "ID del atendente"
// @Success 200 {object} map[string]bool
// @Failure 404 {string} string "attendant not found"
// @Failure 409 {string} string "assigned to adoptions"
// @Router /atendentes/{attendantID} [delete]
func deleteAttendantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "attendantID")
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

func writeList(w http.ResponseWriter, r *http.Request, items []entity.Attendant, err error) {
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if items == nil {
		items = []entity.Attendant{}
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}
