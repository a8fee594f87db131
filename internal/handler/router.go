package handler

import (
	"net/http"

	"resume-parser-api/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(container.GetLogger()))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"resume-parser-api"}`))
	}).Methods("GET")

	// Initialize handlers
	resumeHandler := NewResumeHandler(container.GetResumeService(), container.GetConfig(), container.GetLogger())
	profileHandler := NewProfileHandler(container.GetProfileService(), container.GetLogger())

	// Resume upload
	router.HandleFunc("/upload", resumeHandler.UploadResume).Methods("POST")

	// Profile CRUD
	router.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	router.HandleFunc("/profile/{subject_id}", profileHandler.UpdateProfile).Methods("PATCH")
	router.HandleFunc("/profile/{subject_id}", profileHandler.DeleteProfile).Methods("DELETE")

	// Configure CORS; the API is consumed by browser frontends on arbitrary
	// origins, so it stays permissive.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
