package handler

import (
	"encoding/json"
	"net/http"

	"resume-parser-api/internal/domain"

	"github.com/gorilla/mux"
)

// ProfileHandler handles profile CRUD requests
type ProfileHandler struct {
	profileService domain.ProfileService
	logger         domain.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService domain.ProfileService, logger domain.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile returns the profile identified by the subject_id query parameter.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	subjectID := r.URL.Query().Get("subject_id")
	if subjectID == "" {
		writeError(w, http.StatusBadRequest, "subject_id query parameter is required")
		return
	}

	profile, err := h.profileService.Get(subjectID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile applies a partial update to the profile in the path. A body
// that names a different subject_id is rejected.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	subjectID := mux.Vars(r)["subject_id"]

	var update domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	profile, err := h.profileService.UpdatePartial(subjectID, &update)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// DeleteProfile removes the profile in the path.
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	subjectID := mux.Vars(r)["subject_id"]

	if err := h.profileService.Delete(subjectID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "profile deleted"})
}
