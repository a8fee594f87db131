package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"resume-parser-api/internal/domain"
)

var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ResumeHandler handles resume upload requests
type ResumeHandler struct {
	resumeService domain.ResumeService
	config        domain.Config
	logger        domain.Logger
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(resumeService domain.ResumeService, config domain.Config, logger domain.Logger) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
		config:        config,
		logger:        logger,
	}
}

// UploadResume accepts a multipart form with a "file" part and a "subject_id"
// field, runs the processing pipeline, and returns the stored profile.
func (h *ResumeHandler) UploadResume(w http.ResponseWriter, r *http.Request) {
	maxSize := h.config.GetMaxFileSize()
	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	subjectID := r.FormValue("subject_id")
	if subjectID == "" {
		writeError(w, http.StatusBadRequest, "subject_id is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if !allowedResumeExtensions[strings.ToLower(filepath.Ext(filename))] {
		writeError(w, http.StatusBadRequest, "only PDF, DOC and DOCX files are accepted")
		return
	}
	if header.Size > maxSize {
		writeError(w, http.StatusBadRequest, "file exceeds the maximum allowed size")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", err, "filename", filename)
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	result, err := h.resumeService.ProcessUpload(r.Context(), subjectID, filename, data)
	if err != nil {
		h.logger.Error("Resume processing failed", err, "subject_id", subjectID, "filename", filename)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		Message:      "Resume processed successfully",
		UploadResult: result,
	})
}

type uploadResponse struct {
	Message string `json:"message"`
	*domain.UploadResult
}
