package service

import (
	"context"
	"io"
	"time"

	"resume-parser-api/internal/domain"
)

// Mock logger used by service package tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// mockProfileRepository is an in-memory domain.ProfileRepository.
type mockProfileRepository struct {
	profiles    map[string]*domain.ProfileRecord
	patchCalls  []map[string]interface{}
	insertCalls int
	updateCalls int
}

func newMockProfileRepository() *mockProfileRepository {
	return &mockProfileRepository{profiles: make(map[string]*domain.ProfileRecord)}
}

func (m *mockProfileRepository) Insert(profile *domain.ProfileRecord) error {
	if _, ok := m.profiles[profile.SubjectID]; ok {
		return domain.ErrProfileExists
	}
	m.insertCalls++
	stored := *profile
	m.profiles[profile.SubjectID] = &stored
	return nil
}

func (m *mockProfileRepository) Get(subjectID string) (*domain.ProfileRecord, error) {
	profile, ok := m.profiles[subjectID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (m *mockProfileRepository) Update(profile *domain.ProfileRecord) error {
	if _, ok := m.profiles[profile.SubjectID]; !ok {
		return domain.ErrProfileNotFound
	}
	m.updateCalls++
	stored := *profile
	m.profiles[profile.SubjectID] = &stored
	return nil
}

func (m *mockProfileRepository) Patch(subjectID string, fields map[string]interface{}) error {
	profile, ok := m.profiles[subjectID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	m.patchCalls = append(m.patchCalls, fields)
	applyPatchForTest(profile, fields)
	return nil
}

func (m *mockProfileRepository) Delete(subjectID string) error {
	delete(m.profiles, subjectID)
	return nil
}

// applyPatchForTest mirrors the column assignments the real store would make
// for the fields the tests exercise.
func applyPatchForTest(profile *domain.ProfileRecord, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "full_name":
			v := value.(string)
			profile.FullName = &v
		case "location":
			v := value.(string)
			profile.Location = &v
		case "skills":
			profile.Skills = value.([]string)
		case "updated_at":
			profile.UpdatedAt = value.(time.Time)
		}
	}
}

// mockStorage records uploads and returns a deterministic URL.
type mockStorage struct {
	lastPath        string
	lastContentType string
	uploadErr       error
}

func (m *mockStorage) Upload(ctx context.Context, path, contentType string, file io.Reader) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	m.lastPath = path
	m.lastContentType = contentType
	return "https://storage.example.com/resumes/" + path, nil
}

// mockCompleter returns a canned response or error.
type mockCompleter struct {
	response   string
	err        error
	lastPrompt string
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// mockExtractor returns canned text or an error, ignoring the file content.
type mockExtractor struct {
	text string
	err  error
}

func (m *mockExtractor) ExtractText(filename string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}
