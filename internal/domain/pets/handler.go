package pets

import (
	"net/http"
	"strings"
	"time"

	"pet-daycare/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pet", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/owner/{ownerID}", listPetsByOwnerHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

type petRequest struct {
	Type      string `json:"type" enums:"CAT,DOG,LIZARD,BIRD,FISH,SNAKE,OTHER"`
	Name      string `json:"name"`
	OwnerID   *int64 `json:"ownerId"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD opcional
	Notes     string `json:"notes"`
}

type petResponse struct {
	ID        int64  `json:"id"`
	Type      Type   `json:"type"`
	Name      string `json:"name"`
	OwnerID   int64  `json:"ownerId"`
	BirthDate string `json:"birthDate,omitempty"`
	Notes     string `json:"notes"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota para un customer existente. ownerId es obligatorio.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota; birthDate en formato YYYY-MM-DD"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / type / ownerId requerido"
// @Failure 404 {string} string "customer not found"
// @Router /pet [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := httpx.ParseDate("birthDate", req.BirthDate)
			if err != nil {
				httpx.WriteError(w, r, err)
				return
			}
			bd = &t
		}

		var ownerID int64
		if req.OwnerID != nil {
			ownerID = *req.OwnerID
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Type:      req.Type,
			Name:      req.Name,
			BirthDate: bd,
			Notes:     req.Notes,
			OwnerID:   ownerID,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /pet [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// listPetsByOwnerHandler godoc
// @Summary Mascotas de un customer
// @Tags pets
// @Produce json
// @Param ownerID path int true "ID del customer"
// @Success 200 {array} petResponse
// @Router /pet/owner/{ownerID} [get]
func listPetsByOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := httpx.PathID(r, "ownerID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		items, err := svc.ListByOwner(r.Context(), ownerID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pet/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := httpx.PathID(r, "petID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Type:      p.Type,
		Name:      p.Name,
		OwnerID:   p.OwnerID,
		BirthDate: httpx.FormatDate(p.BirthDate),
		Notes:     p.Notes,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}
