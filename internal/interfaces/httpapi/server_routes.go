package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /find_clubs", handler.FindClubs)
	mux.HandleFunc("GET /api/clubs/{clubID}", handler.GetClub)
	mux.HandleFunc("GET /api/clubs/{clubID}/courses", handler.ListClubCourses)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /get_recommendations", RequireAuth(verifier, http.HandlerFunc(handler.GetRecommendations)))

	mux.Handle("GET /api/profiles/current", RequireAuth(verifier, http.HandlerFunc(handler.GetCurrentProfile)))
	mux.Handle("PUT /api/profiles/current", RequireAuth(verifier, http.HandlerFunc(handler.UpdateCurrentProfile)))

	mux.Handle("GET /api/favorites", RequireAuth(verifier, http.HandlerFunc(handler.ListFavorites)))
	mux.Handle("POST /api/favorites/{clubID}/toggle", RequireAuth(verifier, http.HandlerFunc(handler.ToggleFavorite)))

	mux.Handle("POST /api/clubs", RequireAuth(verifier, http.HandlerFunc(handler.CreateClub)))
	mux.Handle("PUT /api/clubs/{clubID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateClub)))
	mux.Handle("DELETE /api/clubs/{clubID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteClub)))
}
