package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register/", h.register)
		r.Post("/api/login/", h.login)
		r.Get("/api/users/", h.listUsers)
		r.Get("/api/todo/all/", h.listAllTodos)
	})

	// routes behind token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/todo/create/", h.createTodo)
		r.Get("/api/todo/", h.listTodos)
		r.Get("/api/todo/{id}/", h.getTodo)
		r.Put("/api/todo/update/{id}/", h.updateTodo)
		r.Delete("/api/todo/delete/{id}/", h.deleteTodo)
	})

	return router
}
