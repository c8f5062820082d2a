package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/sumika-api/internal/store"
)

type FavoritesDeps struct {
	Store *store.Store
	Log   *slog.Logger
}

// RegisterFavorites wires the saved-list endpoints. The user identity
// comes from the X-User-ID header the auth gateway injects; add and
// remove are idempotent in both directions.
func RegisterFavorites(r chi.Router, d FavoritesDeps) {
	r.Route("/favorites", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			userID, ok := requireUser(w, req)
			if !ok {
				return
			}
			favs, err := d.Store.List(req.Context(), userID)
			if err != nil {
				d.logErr("listing favorites failed", err)
				render.Status(req, http.StatusInternalServerError)
				render.JSON(w, req, map[string]any{"error": "favorites_unavailable"})
				return
			}
			if favs == nil {
				favs = []store.Favorite{}
			}
			render.JSON(w, req, map[string]any{
				"ok":        true,
				"total":     len(favs),
				"favorites": favs,
			})
		})

		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			userID, ok := requireUser(w, req)
			if !ok {
				return
			}
			var body struct {
				PropertyID string `json:"property_id"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				render.Status(req, http.StatusBadRequest)
				render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
				return
			}
			if body.PropertyID == "" {
				render.Status(req, http.StatusBadRequest)
				render.JSON(w, req, map[string]any{"error": "property_id_required"})
				return
			}
			if err := d.Store.Add(req.Context(), userID, body.PropertyID); err != nil {
				d.logErr("adding favorite failed", err)
				render.Status(req, http.StatusInternalServerError)
				render.JSON(w, req, map[string]any{"error": "favorite_write_failed"})
				return
			}
			render.Status(req, http.StatusCreated)
			render.JSON(w, req, map[string]any{"ok": true, "property_id": body.PropertyID})
		})

		r.Get("/{propertyID}", func(w http.ResponseWriter, req *http.Request) {
			userID, ok := requireUser(w, req)
			if !ok {
				return
			}
			propertyID := chi.URLParam(req, "propertyID")
			exists, err := d.Store.Exists(req.Context(), userID, propertyID)
			if err != nil {
				d.logErr("checking favorite failed", err)
				render.Status(req, http.StatusInternalServerError)
				render.JSON(w, req, map[string]any{"error": "favorites_unavailable"})
				return
			}
			render.JSON(w, req, map[string]any{"ok": true, "is_favorite": exists})
		})

		r.Delete("/{propertyID}", func(w http.ResponseWriter, req *http.Request) {
			userID, ok := requireUser(w, req)
			if !ok {
				return
			}
			propertyID := chi.URLParam(req, "propertyID")
			if err := d.Store.Remove(req.Context(), userID, propertyID); err != nil {
				d.logErr("removing favorite failed", err)
				render.Status(req, http.StatusInternalServerError)
				render.JSON(w, req, map[string]any{"error": "favorite_write_failed"})
				return
			}
			render.JSON(w, req, map[string]any{"ok": true, "property_id": propertyID})
		})
	})
}

func (d FavoritesDeps) logErr(msg string, err error) {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}
	log.Error(msg, "err", err)
}

func requireUser(w http.ResponseWriter, req *http.Request) (string, bool) {
	userID := req.Header.Get("X-User-ID")
	if userID == "" {
		render.Status(req, http.StatusUnauthorized)
		render.JSON(w, req, map[string]any{"error": "user_required"})
		return "", false
	}
	return userID, true
}
