package adopters

import (
	"net/http"

	"shelter-adoptions/internal/domain/entity"
	"shelter-adoptions/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adotantes", func(ar chi.Router) {
		ar.Post("/", createAdopterHandler(svc))
		ar.Get("/", listAdoptersHandler(svc))
		ar.Get("/buscar/nome", searchAdoptersHandler(svc))

		ar.Get("/{adopterID}", getAdopterHandler(svc))
		ar.Put("/{adopterID}", updateAdopterHandler(svc))
		ar.Patch("/{adopterID}", updateAdopterHandler(svc))
		ar.Delete("/{adopterID}", deleteAdopterHandler(svc))
	})
}

type createAdopterRequest struct {
	Name        string `json:"nome"`
	Contact     string `json:"contato"`
	Address     string `json:"endereco"`
	Preferences string `json:"preferencias"`
}

type updateAdopterRequest struct {
	ID          *int64  `json:"id_adotante"` // se ignora
	Name        *string `json:"nome"`
	Contact     *string `json:"contato"`
	Address     *string `json:"endereco"`
	Preferences *string `json:"preferencias"`
}

// createAdopterHandler godoc
// @Summary Registrar adoptante
// @Tags adotantes
// @Accept json
// @Produce json
// @Param payload body createAdopterRequest true "nome es obligatorio"
// @Success 201 {object} entity.Adopter
// @Failure 400 {string} string "invalid json / nome is required"
// @Router /adotantes [post]
func createAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdopterRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		a, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Contact:     req.Contact,
			Address:     req.Address,
			Preferences: req.Preferences,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, a)
	}
}

func listAdoptersHandler(svc *Service) http.HandlerFunc {
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

func searchAdoptersHandler(svc *Service) http.HandlerFunc {
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

func getAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "adopterID")
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

func updateAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "adopterID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		var req updateAdopterRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		a, err := svc.Update(r.Context(), id, entity.AdopterPatch{
			Name:        req.Name,
			Contact:     req.Contact,
			Address:     req.Address,
			Preferences: req.Preferences,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

// deleteAdopterHandler godoc
// @Summary Eliminar adoptante
// @Description 409 si el adoptante tiene adopciones registradas.
// @Tags adotantes
// @Produce json
// @Param adopterID path int true "ID del adoptante"
// @Success 200 {object} map[string]bool
// @Failure 404 {string} string "adopter not found"
// @Failure 409 {string} string "has registered adoptions"
// @Router /adotantes/{adopterID} [delete]
func deleteAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "adopterID")
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

func writeList(w http.ResponseWriter, r *http.Request, items []entity.Adopter, err error) {
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if items == nil {
		items = []entity.Adopter{}
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}
