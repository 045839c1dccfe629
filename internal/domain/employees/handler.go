package employees

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/user/employee", func(er chi.Router) {
		er.Post("/", createEmployeeHandler(svc))
		er.Get("/", listEmployeesHandler(svc))

		er.Get("/availability", findAvailableHandler(svc))

		er.Post("/{employeeID}", getEmployeeHandler(svc))
		er.Get("/{employeeID}", getEmployeeHandler(svc))
		er.Put("/{employeeID}", setAvailabilityHandler(svc))
	})
}

type employeeRequest struct {
	Name          string   `json:"name"`
	Skills        []string `json:"skills" enums:"PETTING,WALKING,FEEDING,MEDICATING,SHAVING"`
	DaysAvailable []string `json:"daysAvailable" enums:"MONDAY,TUESDAY,WEDNESDAY,THURSDAY,FRIDAY,SATURDAY,SUNDAY"`
}

type employeeResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Skills        []Skill `json:"skills"`
	DaysAvailable []Day   `json:"daysAvailable"`
}

// availabilityRequest es el cuerpo de la búsqueda de disponibilidad.
type availabilityRequest struct {
	Date   string   `json:"date"` // YYYY-MM-DD
	Skills []string `json:"skills"`
}

// createEmployeeHandler godoc
// @Summary Registrar empleado
// @Tags employees
// @Accept json
// @Produce json
// @Param payload body employeeRequest true "Datos del empleado"
// @Success 200 {object} employeeResponse
// @Failure 400 {string} string "invalid json / name is required / unknown skill"
// @Router /user/employee [post]
func createEmployeeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req employeeRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		e, err := svc.Create(r.Context(), CreateInput{
			Name:          req.Name,
			Skills:        req.Skills,
			DaysAvailable: req.DaysAvailable,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toEmployeeResponse(e))
	}
}

func listEmployeesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toEmployeeResponses(items))
	}
}

// getEmployeeHandler godoc
// @Summary Obtener empleado
// @Description Se expone tanto en POST (contrato histórico) como en GET.
// @Tags employees
// @Produce json
// @Param employeeID path int true "ID del empleado"
// @Success 200 {object} employeeResponse
// @Failure 404 {string} string "employee not found"
// @Router /user/employee/{employeeID} [post]
// @Router /user/employee/{employeeID} [get]
func getEmployeeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "employeeID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		e, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toEmployeeResponse(e))
	}
}

// setAvailabilityHandler godoc
// @Summary Reemplazar días disponibles
// @Tags employees
// @Accept json
// @Param employeeID path int true "ID del empleado"
// @Param payload body []string true "Días (MONDAY..SUNDAY)"
// @Success 200
// @Failure 400 {string} string "unknown day"
// @Failure 404 {string} string "employee not found"
// @Router /user/employee/{employeeID} [put]
func setAvailabilityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "employeeID")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		var days []string
		if err := httpx.DecodeJSON(r, &days); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		if err := svc.SetAvailability(r.Context(), id, days); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// findAvailableHandler godoc
// @Summary Buscar empleados disponibles
// @Description Empleados con disponibilidad el día de la semana de date y todas las skills pedidas.
// @Description Acepta el cuerpo JSON o, si viene vacío, ?date=YYYY-MM-DD&skills=A,B.
// @Tags employees
// @Accept json
// @Produce json
// @Param payload body availabilityRequest false "Fecha y skills requeridas"
// @Param date query string false "Fecha YYYY-MM-DD"
// @Param skills query string false "Skills separadas por coma"
// @Success 200 {array} employeeResponse
// @Failure 400 {string} string "date is required / unknown skill"
// @Router /user/employee/availability [get]
func findAvailableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := readAvailabilityRequest(r)
		if err != nil {
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

		items, err := svc.FindAvailable(r.Context(), date, req.Skills)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toEmployeeResponses(items))
	}
}

// readAvailabilityRequest prioriza el body; sin body usa la query string.
func readAvailabilityRequest(r *http.Request) (availabilityRequest, error) {
	var req availabilityRequest

	var raw []byte
	if r.Body != nil {
		b, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			return req, errs.Invalid("invalid body")
		}
		raw = bytes.TrimSpace(b)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &req); err != nil {
			return req, errs.Invalid("invalid json")
		}
		return req, nil
	}

	q := r.URL.Query()
	req.Date = q.Get("date")
	if s := strings.TrimSpace(q.Get("skills")); s != "" {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				req.Skills = append(req.Skills, p)
			}
		}
	}
	return req, nil
}

func toEmployeeResponse(e Employee) employeeResponse {
	skills := e.Skills
	if skills == nil {
		skills = []Skill{}
	}
	days := e.DaysAvailable
	if days == nil {
		days = []Day{}
	}
	return employeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Skills:        skills,
		DaysAvailable: days,
	}
}

func toEmployeeResponses(items []Employee) []employeeResponse {
	out := make([]employeeResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEmployeeResponse(e))
	}
	return out
}
