package router

import (
	"database/sql"
	"net/http"

	"pet-daycare/docs"
	mem "pet-daycare/internal/adapters/storage/memory"
	mongostore "pet-daycare/internal/adapters/storage/mongo"
	pg "pet-daycare/internal/adapters/storage/postgres"
	"pet-daycare/internal/domain/customers"
	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/pets"
	"pet-daycare/internal/domain/refs"
	"pet-daycare/internal/domain/schedules"
	"pet-daycare/internal/middleware"
	"pet-daycare/internal/platform/logger"
	"pet-daycare/internal/platform/metrics"
	"pet-daycare/internal/ports/tx"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Storage: DB (Postgres) gana sobre Mongo; sin ninguno, in-memory.
	DB          *sql.DB
	MongoClient *mongo.Client
	MongoDB     *mongo.Database

	// Políticas para ids que no resuelven ("" => defaults drop / fail).
	CustomerPetRefs              refs.Policy
	ScheduleRefs                 refs.Policy
	ScheduleRequireSkillCoverage bool

	CORSAllowedOrigins []string // vacío => "*"

	Metrics        *metrics.Metrics // nil => sin /metrics
	SwaggerEnabled bool
}

// store agrupa los repos de un backend y su tx.Manager.
type store struct {
	tx        tx.Manager
	customers customers.Repository
	petLinks  customers.PetLinks
	pets      pets.Repository
	employees employees.Repository
	schedules schedules.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID(log))
	r.Use(middleware.Recover)
	r.Use(middleware.AccessLog)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(corsHandler(opts.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	if opts.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		))
	}

	st := newStore(opts, log)

	// Services por módulo
	customersSvc := customers.NewService(st.customers, st.petLinks, st.tx,
		customers.WithPetPolicy(policyOr(opts.CustomerPetRefs, refs.Drop)),
	)
	petsSvc := pets.NewService(st.pets, st.customers, st.tx)
	employeesSvc := employees.NewService(st.employees, st.tx)
	schedulesSvc := schedules.NewService(st.schedules, st.pets, st.employees, st.customers, st.tx,
		schedules.WithRefPolicy(policyOr(opts.ScheduleRefs, refs.Fail)),
		schedules.WithSkillCoverage(opts.ScheduleRequireSkillCoverage),
	)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	customers.RegisterRoutes(r, customersSvc)
	employees.RegisterRoutes(r, employeesSvc)
	schedules.RegisterRoutes(r, schedulesSvc)

	return r
}

func newStore(opts Options, log logger.Logger) store {
	switch {
	case opts.DB != nil:
		log.Info("storage selected", map[string]any{"backend": "postgres"})
		petsRepo := pg.NewPetsRepo(opts.DB)
		return store{
			tx:        pg.NewTxManager(opts.DB),
			customers: pg.NewCustomersRepo(opts.DB),
			petLinks:  petsRepo,
			pets:      petsRepo,
			employees: pg.NewEmployeesRepo(opts.DB),
			schedules: pg.NewSchedulesRepo(opts.DB),
		}

	case opts.MongoClient != nil && opts.MongoDB != nil:
		log.Info("storage selected", map[string]any{"backend": "mongo", "database": opts.MongoDB.Name()})
		petsRepo := mongostore.NewPetRepo(opts.MongoDB)
		return store{
			tx:        mongostore.NewTxManager(opts.MongoClient),
			customers: mongostore.NewCustomerRepo(opts.MongoDB),
			petLinks:  petsRepo,
			pets:      petsRepo,
			employees: mongostore.NewEmployeeRepo(opts.MongoDB),
			schedules: mongostore.NewScheduleRepo(opts.MongoDB),
		}

	default:
		log.Info("storage selected", map[string]any{"backend": "memory"})
		s := mem.NewStore()
		petsRepo := mem.NewPetRepo(s)
		return store{
			tx:        s,
			customers: mem.NewCustomerRepo(s),
			petLinks:  petsRepo,
			pets:      petsRepo,
			employees: mem.NewEmployeeRepo(s),
			schedules: mem.NewScheduleRepo(s),
		}
	}
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	}).Handler
}

func policyOr(p, def refs.Policy) refs.Policy {
	if p == "" {
		return def
	}
	return p
}
