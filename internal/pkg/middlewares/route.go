package middlewares

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouteTemplate шаблон mux-роута (/match/{id}/status), чтобы не плодить метки по id.
// Вне роутера возвращает путь запроса.
func RouteTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
