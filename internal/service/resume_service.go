package service

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"resume-parser-api/internal/domain"
	apperrors "resume-parser-api/pkg/errors"
)

// ResumeService runs the upload pipeline end to end: store the original
// document, extract and normalize its text, ask the model for structured
// fields, recover a record from whatever comes back, and upsert the profile.
type ResumeService struct {
	extractor      domain.TextExtractor
	completer      domain.Completer
	storage        domain.ObjectStorage
	profileService domain.ProfileService
	config         domain.Config
	logger         domain.Logger
}

// NewResumeService creates a new resume processing service
func NewResumeService(
	extractor domain.TextExtractor,
	completer domain.Completer,
	storage domain.ObjectStorage,
	profileService domain.ProfileService,
	config domain.Config,
	logger domain.Logger,
) *ResumeService {
	return &ResumeService{
		extractor:      extractor,
		completer:      completer,
		storage:        storage,
		profileService: profileService,
		config:         config,
		logger:         logger,
	}
}

// ProcessUpload handles one uploaded resume for a subject. The stored object
// path is subjectID_filename, so a re-upload of the same file replaces the
// previous object.
func (s *ResumeService) ProcessUpload(ctx context.Context, subjectID, filename string, data []byte) (*domain.UploadResult, error) {
	if subjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}
	if filename == "" {
		return nil, apperrors.NewValidationError("filename is required")
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("uploaded file is empty")
	}

	path := subjectID + "_" + filename
	resumeURL, err := s.storage.Upload(ctx, path, contentTypeFor(filename), bytes.NewReader(data))
	if err != nil {
		s.logger.Error("Resume upload to storage failed", err, "subject_id", subjectID, "filename", filename)
		return nil, err
	}
	s.logger.Info("Resume stored", "subject_id", subjectID, "path", path)

	text, err := s.extractor.ExtractText(filename, data)
	if err != nil {
		s.logger.Error("Text extraction failed", err, "subject_id", subjectID, "filename", filename)
		return nil, err
	}
	normalized := NormalizeText(text)
	if normalized == "" {
		return nil, apperrors.NewExtractionError("document contains no extractable text", nil)
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.config.GetAITimeout())
	defer cancel()

	response, err := s.completer.Complete(aiCtx, BuildExtractionPrompt(normalized))
	if err != nil {
		s.logger.Error("Completion call failed", err, "subject_id", subjectID)
		return nil, err
	}

	record := ParseExtraction(response, s.logger)
	profile := ProfileFromExtraction(record, subjectID, resumeURL, filename)

	stored, err := s.profileService.Upsert(profile)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Resume processed", "subject_id", subjectID, "filename", filename,
		"text_length", len(normalized), "experience_entries", len(stored.Experience))

	return &domain.UploadResult{
		ResumeURL:  resumeURL,
		Extraction: record,
		Profile:    stored,
	}, nil
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}
