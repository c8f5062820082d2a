package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	httpapi "github.com/yourorg/sumika-api/http"
	httpv1 "github.com/yourorg/sumika-api/http/v1"
	"github.com/yourorg/sumika-api/internal/store"
)

func BuildRouter(search httpapi.SearchDeps, cached httpv1.SearchDeps, st *store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(httprate.LimitByIP(100, 1*time.Minute)) // protect upstream quota
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"ok":true}`)) })

	httpapi.RegisterSearch(r, search)
	if st != nil {
		httpapi.RegisterFavorites(r, httpapi.FavoritesDeps{Store: st, Log: search.Log})
	}

	// v1 cached search: only useful with Redis behind it
	if cached.Redis != nil {
		httpv1.RegisterSearch(r, cached)
	}

	return r
}
