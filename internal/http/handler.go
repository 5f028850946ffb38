package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"team-calendar-service/internal/model"
	"team-calendar-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// actorHeader — заголовок с идентификатором актора. Актор передаётся явно
// в каждом запросе и разрешается на каждый вызов; сессий у ядра нет.
const actorHeader = "X-User-Id"

// SchedulingService описывает контракт фасада планирования для HTTP-слоя.
type SchedulingService interface {
	CreateEvent(ctx context.Context, actorID string, input model.Event) (model.Event, error)
	Decide(ctx context.Context, actorID, eventID string, approve bool, note string) (model.Event, error)
	Cancel(ctx context.Context, actorID, eventID string) (model.Event, error)
	ListVisible(ctx context.Context, actorID string, from, to time.Time) ([]model.Event, error)
}

// TeamService описывает контракт сервиса команд для HTTP-слоя.
type TeamService interface {
	CreateTeam(ctx context.Context, actorID string, t model.Team) (model.Team, error)
	GetTeam(ctx context.Context, actorID, name string) (model.Team, error)
}

// UserService описывает контракт сервиса пользователей для HTTP-слоя.
type UserService interface {
	Register(ctx context.Context, username, password, teamName string) (model.User, error)
	SetIsActive(ctx context.Context, actorID, userID string, isActive bool) (model.User, error)
	SetRoleAndTeam(ctx context.Context, actorID, userID string, role model.Role, teamName string) (model.User, error)
}

// IdentityService описывает контракт сервиса идентификации для HTTP-слоя.
type IdentityService interface {
	Login(ctx context.Context, username, password string) (model.User, error)
}

type Handler struct {
	Teams    TeamService
	Users    UserService
	Events   SchedulingService
	Identity IdentityService
	Log      *slog.Logger
}

func NewHandler(teams TeamService, users UserService, events SchedulingService, identity IdentityService, log *slog.Logger) *Handler {
	return &Handler{
		Teams:    teams,
		Users:    users,
		Events:   events,
		Identity: identity,
		Log:      log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", actorHeader},
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/register", h.handleRegister)
	})

	r.Route("/team", func(r chi.Router) {
		r.Post("/add", h.handleTeamAdd)
		r.Get("/get", h.handleTeamGet)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/setIsActive", h.handleUserSetIsActive)
		r.Post("/setRoleAndTeam", h.handleUserSetRoleAndTeam)
	})

	r.Route("/event", func(r chi.Router) {
		r.Post("/create", h.handleEventCreate)
		r.Post("/decide", h.handleEventDecide)
		r.Post("/cancel", h.handleEventCancel)
	})

	r.Get("/calendar/get", h.handleCalendarGet)

	return r
}

// actorID возвращает идентификатор актора из заголовка запроса.
func actorID(r *http.Request) string {
	return r.Header.Get(actorHeader)
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
