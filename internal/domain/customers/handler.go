package customers

import (
	"net/http"

	"pet-daycare/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/user/customer", func(cr chi.Router) {
		cr.Get("/", listCustomersHandler(svc))
		cr.Post("/", createCustomerHandler(svc))

		// Dueño de una mascota
		cr.Get("/pet/{petID}", getOwnerByPetHandler(svc))
		cr.Get("/{customerID}", getCustomerHandler(svc))
	})
}

// customerRequest es el cuerpo para registrar un customer.
// petIds que no existen se descartan (o fallan, según CUSTOMER_PET_REFS).
type customerRequest struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	Notes       string  `json:"notes"`
	PetIDs      []int64 `json:"petIds"`
}

// customerResponse representa un customer devuelto por la API.
type customerResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	Notes       string  `json:"notes"`
	PetIDs      []int64 `json:"petIds"`
}

// listCustomersHandler godoc
// @Summary Listar customers
// @Tags customers
// @Produce json
// @Success 200 {array} customerResponse
// @Failure 500 {string} string "internal error"
// @Router /user/customer [get]
func listCustomersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]customerResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCustomerResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createCustomerHandler godoc
// @Summary Registrar customer
// @Description Crea un customer. Las mascotas de petIds pasan a tenerlo como dueño.
// @Tags customers
// @Accept json
// @Produce json
// @Param payload body customerRequest true "Datos del customer"
// @Success 200 {object} customerResponse
// @Failure 400 {string} string "invalid json / name is required"
// @Failure 404 {string} string "pet not found (solo con CUSTOMER_PET_REFS=fail)"
// @Router /user/customer [post]
func createCustomerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req customerRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			PhoneNumber: req.PhoneNumber,
			Notes:       req.Notes,
			PetIDs:      req.PetIDs,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toCustomerResponse(c))
	}
}

// getOwnerByPetHandler godoc
// @Summary Dueño de una mascota
// @Tags customers
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} customerResponse
// @Failure 404 {string} string "pet not found"
// @Router /user/customer/pet/{petID} [get]
func getOwnerByPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := httpx.PathID(r, "petID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		c, err := svc.GetByPetID(r.Context(), petID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCustomerResponse(c))
	}
}

func getCustomerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "customerID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCustomerResponse(c))
	}
}

func toCustomerResponse(c Customer) customerResponse {
	petIDs := c.PetIDs
	if petIDs == nil {
		petIDs = []int64{}
	}
	return customerResponse{
		ID:          c.ID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Notes:       c.Notes,
		PetIDs:      petIDs,
	}
}
