package schedules

import (
	"context"
	"net/http"
	"strings"

	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/schedule", func(sr chi.Router) {
		sr.Post("/", createScheduleHandler(svc))
		sr.Get("/", listSchedulesHandler(svc))

		sr.Get("/pet/{petID}", listByPetHandler(svc))
		sr.Get("/employee/{employeeID}", listByEmployeeHandler(svc))
		sr.Get("/customer/{customerID}", listByCustomerHandler(svc))
	})
}

type scheduleRequest struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	Activities  []string `json:"activities" enums:"PETTING,WALKING,FEEDING,MEDICATING,SHAVING"`
	EmployeeIDs []int64  `json:"employeeIds"`
	PetIDs      []int64  `json:"petIds"`
}

type scheduleResponse struct {
	ID          int64             `json:"id"`
	Date        string            `json:"date"`
	Activities  []employees.Skill `json:"activities"`
	EmployeeIDs []int64           `json:"employeeIds"`
	PetIDs      []int64           `json:"petIds"`
}

// createScheduleHandler godoc
// @Summary Crear schedule
// @Description Asigna empleados y mascotas a una fecha. Ids inexistentes fallan con 404 (SCHEDULE_REFS=fail).
// @Tags schedules
// @Accept json
// @Produce json
// @Param payload body scheduleRequest true "Datos del schedule"
// @Success 200 {object} scheduleResponse
// @Failure 400 {string} string "invalid json / date is required / unknown skill"
// @Failure 404 {string} string "employee / pet not found"
// @Router /schedule [post]
func createScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scheduleRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if strings.TrimSpace(req.Date) == "" {
			httpx.WriteError(w, r, errs.Invalid("date is required"))
			return
		}
		date, err := httpx.ParseDate("date", req.Date)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		sc, err := svc.Create(r.Context(), CreateInput{
			Date:        date,
			Activities:  req.Activities,
			EmployeeIDs: req.EmployeeIDs,
			PetIDs:      req.PetIDs,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toScheduleResponse(sc))
	}
}

// listSchedulesHandler godoc
// @Summary Listar schedules
// @Tags schedules
// @Produce json
// @Success 200 {array} scheduleResponse
// @Router /schedule [get]
func listSchedulesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toScheduleResponses(items))
	}
}

// listByPetHandler godoc
// @Summary Schedules de una mascota
// @Tags schedules
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} scheduleResponse
// @Failure 404 {string} string "pet not found"
// @Router /schedule/pet/{petID} [get]
func listByPetHandler(svc *Service) http.HandlerFunc {
	return listByIDHandler("petID", svc.ListForPet)
}

// listByEmployeeHandler godoc
// @Summary Schedules de un empleado
// @Tags schedules
// @Produce json
// @Param employeeID path int true "ID del empleado"
// @Success 200 {array} scheduleResponse
// @Failure 404 {string} string "employee not found"
// @Router /schedule/employee/{employeeID} [get]
func listByEmployeeHandler(svc *Service) http.HandlerFunc {
	return listByIDHandler("employeeID", svc.ListForEmployee)
}

// listByCustomerHandler godoc
// @Summary Schedules de las mascotas de un customer
// @Tags schedules
// @Produce json
// @Param customerID path int true "ID del customer"
// @Success 200 {array} scheduleResponse
// @Failure 404 {string} string "customer not found"
// @Router /schedule/customer/{customerID} [get]
func listByCustomerHandler(svc *Service) http.HandlerFunc {
	return listByIDHandler("customerID", svc.ListForCustomer)
}

func listByIDHandler(param string, list func(ctx context.Context, id int64) ([]Schedule, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, param)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		items, err := list(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toScheduleResponses(items))
	}
}

func toScheduleResponse(s Schedule) scheduleResponse {
	return scheduleResponse{
		ID:          s.ID,
		Date:        httpx.FormatDate(&s.Date),
		Activities:  orEmpty(s.Activities),
		EmployeeIDs: orEmpty(s.EmployeeIDs),
		PetIDs:      orEmpty(s.PetIDs),
	}
}

func toScheduleResponses(items []Schedule) []scheduleResponse {
	out := make([]scheduleResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toScheduleResponse(s))
	}
	return out
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
