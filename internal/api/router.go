package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/freelancer-backend/internal/api/handlers"
	"github.com/baharkarakas/freelancer-backend/internal/api/httpx"
	"github.com/baharkarakas/freelancer-backend/internal/metrics"
	"github.com/baharkarakas/freelancer-backend/internal/middleware"
	"github.com/baharkarakas/freelancer-backend/internal/services"
	"github.com/baharkarakas/freelancer-backend/internal/session"
)

// Deps is everything the HTTP layer needs. Checks are run by /health.
type Deps struct {
	Log       *slog.Logger
	Identity  *services.IdentityService
	Tasks     *services.TaskService
	Offers    *services.OfferService
	Messages  *services.MessageService
	Sessions  *session.Manager
	StaticDir string
	Checks    map[string]func(context.Context) error
}

func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	authH := handlers.NewAuthHandler(d.Identity, d.Sessions)
	userH := &handlers.UserHandler{Users: d.Identity}
	taskH := &handlers.TaskHandler{Tasks: d.Tasks}
	offerH := &handlers.OfferHandler{Offers: d.Offers}
	msgH := &handlers.MessageHandler{Messages: d.Messages}
	static := &handlers.StaticHandler{Dir: d.StaticDir}

	r := chi.NewRouter()
	// Recover sits inside Logging and HTTPMetrics so a panic is logged and counted as a 500.
	r.Use(middleware.RequestID, middleware.Logging(d.Log), middleware.HTTPMetrics, middleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(middleware.Sessions(d.Sessions))

	r.Get("/health", health(d.Checks))
	r.Handle("/metrics", metrics.Handler())

	r.Get("/ping", handlers.Ping)
	r.Get("/api/displaydata", handlers.DisplayData)
	r.Post("/register", authH.Register)
	r.Post("/login", authH.Login)
	r.Get("/task/{id}", taskH.Get)
	r.Get("/offers/{taskId}", offerH.ListByTask)
	r.Get("/user/{userId}", userH.Get)
	r.Get("/tasks", taskH.List)
	r.Get("/messages", msgH.Inbox)
	// add-task answers 401 in its own shape.
	r.Post("/add-task", taskH.Add)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireIdentity)
		r.Get("/current-username", authH.CurrentUsername)
		r.Get("/role-selection", static.RoleSelection())
		r.Get("/reciverIndex/tasks", taskH.Mine)
		r.Get("/receiverIndex/tasks", authH.SessionInfo)
		r.Post("/sendMessage", msgH.Send)
		r.Post("/submit-offer", offerH.Submit)
	})

	r.Get("/", static.Index())
	r.Get("/*", static.Files().ServeHTTP)
	return r
}

func health(checks map[string]func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{}
		code := http.StatusOK
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				slog.WarnContext(r.Context(), "health check failed", "check", name, "err", err)
				status[name] = "down"
				code = http.StatusServiceUnavailable
				continue
			}
			status[name] = "ok"
		}
		httpx.WriteJSON(w, code, status)
	}
}
