package handlers

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Emerchan23/sisvendas1-sub004/auth"
	"github.com/Emerchan23/sisvendas1-sub004/backup"
	"github.com/Emerchan23/sisvendas1-sub004/expenses"
	"github.com/Emerchan23/sisvendas1-sub004/models"
	"github.com/Emerchan23/sisvendas1-sub004/saleslines"
	"github.com/Emerchan23/sisvendas1-sub004/settlement"
)

// Deps is everything the router needs to build its handlers.
type Deps struct {
	DB          *sql.DB
	Issuer      *auth.Issuer
	Backups     *backup.Service
	CORSOrigins []string
}

// NewRouter sets the shared DB and mounts every route.
func NewRouter(d Deps) http.Handler {
	DB = d.DB

	engine := settlement.NewEngine(d.DB)
	lines := saleslines.NewStore(d.DB)
	users := auth.NewUsers(d.DB)

	settlements := NewSettlementHandler(engine)
	salesLines := NewSalesLineHandler(lines)
	pending := NewExpenseHandler(expenses.NewStore(d.DB))
	dashboard := NewDashboardHandler(lines, engine)
	authH := NewAuthHandler(users, d.Issuer)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authH.Login)

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(d.Issuer))

			r.Get("/auth/me", authH.Me)

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(d.Issuer, models.RoleAdmin))
				r.Get("/users", authH.ListUsers)
				r.Post("/users", authH.CreateUser)
			})

			// Settlements
			r.Get("/settlements", settlements.List)
			r.Post("/settlements", settlements.Create)
			r.Get("/settlements/summary", settlements.Summary)
			r.Get("/settlements/{id}", settlements.Get)
			r.Patch("/settlements/{id}", settlements.Update)
			r.Delete("/settlements/{id}", settlements.Delete)
			r.Post("/settlements/{id}/cancel", settlements.Cancel)

			// Sales lines
			r.Get("/sales-lines", salesLines.List)
			r.Post("/sales-lines", salesLines.Create)
			r.Get("/sales-lines/{id}", salesLines.Get)
			r.Patch("/sales-lines/{id}", salesLines.Patch)
			r.Delete("/sales-lines/{id}", salesLines.Delete)

			// Pending expenses
			r.Get("/expenses", pending.List)
			r.Post("/expenses", pending.Create)
			r.Get("/expenses/{id}", pending.Get)
			r.Patch("/expenses/{id}", pending.Patch)
			r.Delete("/expenses/{id}", pending.Delete)

			// Clients
			r.Get("/clients", ListClients)
			r.Post("/clients", CreateClient)
			r.Get("/clients/{id}", GetClient)
			r.Put("/clients/{id}", UpdateClient)
			r.Delete("/clients/{id}", DeleteClient)
			r.Get("/clients/{id}/vales", GetClientVales)

			// Participants
			r.Get("/participants", ListParticipants)
			r.Post("/participants", CreateParticipant)
			r.Get("/participants/{id}", GetParticipant)
			r.Put("/participants/{id}", UpdateParticipant)
			r.Delete("/participants/{id}", DeleteParticipant)

			// Vales
			r.Get("/vales", ListVales)
			r.Post("/vales", CreateVale)
			r.Delete("/vales/{id}", DeleteVale)

			// Dashboard
			r.Get("/dashboard", dashboard.Get)

			// Backups
			if d.Backups != nil {
				backups := NewBackupHandler(d.Backups)
				r.Get("/backups", backups.Files)
				r.Get("/backups/status", backups.Status)
				r.Post("/backups/start", backups.Start)
				r.Post("/backups/stop", backups.Stop)
				r.Post("/backups/run", backups.Run)
				r.Get("/backups/logs", backups.Logs)
				r.Get("/backups/validations", backups.Validations)
				r.Post("/backups/{name}/validate", backups.Validate)
			}
		})
	})

	return r
}
