package server

import (
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"rating_widget/internal/domain"
	"rating_widget/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/grades", handler(s.getV1Grades))
			r.Get("/variants", handler(s.getV1Variants))
			r.Post("/resolve", handler(s.postV1Resolve))

			r.Route("/widgets", func(r chi.Router) {
				r.Post("/render", handler(s.postV1WidgetsRender))
				r.Get("/{variant}", handler(s.getV1Widget))
			})

			r.Get("/badges/{grade}.svg", handler(s.getV1Badge))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, asFailure(err))
		}
	}
}

// Доменные ошибки с кодом приходят из разбора пользовательского ввода.
func asFailure(err error) error {
	code, ok := domain.GetCode(err)
	if !ok {
		return err
	}

	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(code),
		failure.WithDescription(err.Error()),
	)
}
