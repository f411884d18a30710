package fakeapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withRequestID, h.withLogging, withGZip)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/files/{name}", h.downloadFile)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Route("/api/roles", func(r chi.Router) {
			r.Get("/", h.listRoles)
			r.Post("/", h.createRole)
			r.Get("/{id}", h.getRole)
			r.Put("/{id}", h.updateRole)
			r.Delete("/{id}", h.deleteRole)
		})

		r.Route("/api/core-enums", func(r chi.Router) {
			r.Get("/", h.listEnums)
			r.Post("/", h.createEnum)
			r.Get("/type/{type}", h.enumsByType)
			r.Put("/{id}", h.updateEnum)
			r.Delete("/{id}", h.deleteEnum)
		})

		r.Route("/api/blogs", func(r chi.Router) {
			r.Get("/", h.listBlogs)
			r.Post("/", h.createBlog)
			r.Get("/{id}", h.getBlog)
			r.Put("/{id}", h.updateBlog)
			r.Delete("/{id}", h.deleteBlog)
			r.Post("/{id}/publish", h.publishBlog)
		})

		r.Route("/api/bonuses", func(r chi.Router) {
			r.Get("/", h.listBonuses)
			r.Post("/", h.createBonus)
			r.Put("/{id}", h.updateBonus)
			r.Delete("/{id}", h.deleteBonus)
		})
	})

	return router
}
