package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resume-parser-api/internal/domain"
	apperrors "resume-parser-api/pkg/errors"
)

// mockResumeService records the upload it receives and returns a canned result.
type mockResumeService struct {
	result        *domain.UploadResult
	err           error
	lastSubjectID string
	lastFilename  string
	lastData      []byte
}

func (m *mockResumeService) ProcessUpload(ctx context.Context, subjectID, filename string, data []byte) (*domain.UploadResult, error) {
	m.lastSubjectID = subjectID
	m.lastFilename = filename
	m.lastData = data
	return m.result, m.err
}

type handlerTestConfig struct {
	maxFileSize int64
}

func (c *handlerTestConfig) GetServerPort() string       { return "8080" }
func (c *handlerTestConfig) GetLogLevel() string         { return "debug" }
func (c *handlerTestConfig) GetMaxFileSize() int64       { return c.maxFileSize }
func (c *handlerTestConfig) GetSupabaseURL() string      { return "" }
func (c *handlerTestConfig) GetSupabaseKey() string      { return "" }
func (c *handlerTestConfig) GetStorageBucket() string    { return "resumes" }
func (c *handlerTestConfig) GetGeminiAPIKey() string     { return "" }
func (c *handlerTestConfig) GetGeminiModel() string      { return "" }
func (c *handlerTestConfig) GetAITimeout() time.Duration { return time.Second }

func multipartUpload(t *testing.T, subjectID, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if subjectID != "" {
		if err := writer.WriteField("subject_id", subjectID); err != nil {
			t.Fatalf("failed to write field: %v", err)
		}
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("failed to write file content: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func newUploadHandler(svc domain.ResumeService, maxSize int64) *ResumeHandler {
	return NewResumeHandler(svc, &handlerTestConfig{maxFileSize: maxSize}, NewMockHandlerLogger())
}

func TestUploadResume(t *testing.T) {
	fullName := "Ann Lee"
	svc := &mockResumeService{result: &domain.UploadResult{
		ResumeURL:  "https://storage.example.com/resumes/user-1_resume.pdf",
		Extraction: &domain.ExtractionRecord{FullName: &fullName},
		Profile:    &domain.ProfileRecord{SubjectID: "user-1", FullName: &fullName},
	}}
	handler := newUploadHandler(svc, 5*1024*1024)

	body, contentType := multipartUpload(t, "user-1", "resume.pdf", []byte("%PDF-1.4 content"))
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.UploadResume(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastSubjectID != "user-1" || svc.lastFilename != "resume.pdf" {
		t.Errorf("service received %q/%q", svc.lastSubjectID, svc.lastFilename)
	}
	if string(svc.lastData) != "%PDF-1.4 content" {
		t.Errorf("service received wrong file content: %q", svc.lastData)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	for _, key := range []string{"message", "resume_url", "result", "profile"} {
		if _, ok := got[key]; !ok {
			t.Errorf("response is missing %q", key)
		}
	}
}

func TestUploadResumeRequiresSubjectID(t *testing.T) {
	handler := newUploadHandler(&mockResumeService{}, 5*1024*1024)

	body, contentType := multipartUpload(t, "", "resume.pdf", []byte("content"))
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.UploadResume(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUploadResumeRequiresFile(t *testing.T) {
	handler := newUploadHandler(&mockResumeService{}, 5*1024*1024)

	body, contentType := multipartUpload(t, "user-1", "", nil)
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.UploadResume(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUploadResumeRejectsDisallowedExtension(t *testing.T) {
	svc := &mockResumeService{}
	handler := newUploadHandler(svc, 5*1024*1024)

	for _, filename := range []string{"resume.txt", "resume.png", "resume.pdf.exe", "resume"} {
		body, contentType := multipartUpload(t, "user-1", filename, []byte("content"))
		req := httptest.NewRequest("POST", "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		handler.UploadResume(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", filename, rec.Code)
		}
	}
	if svc.lastFilename != "" {
		t.Error("disallowed upload must not reach the service")
	}
}

func TestUploadResumeRejectsOversizedFile(t *testing.T) {
	handler := newUploadHandler(&mockResumeService{}, 16)

	body, contentType := multipartUpload(t, "user-1", "resume.pdf", bytes.Repeat([]byte("x"), 64))
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.UploadResume(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUploadResumeServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"extraction failure", apperrors.NewExtractionError("failed to open PDF document", nil), http.StatusUnprocessableEntity},
		{"external failure", apperrors.NewExternalError("completion request failed", nil), http.StatusServiceUnavailable},
		{"unknown failure", bytes.ErrTooLarge, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newUploadHandler(&mockResumeService{err: tt.err}, 5*1024*1024)

			body, contentType := multipartUpload(t, "user-1", "resume.pdf", []byte("content"))
			req := httptest.NewRequest("POST", "/upload", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			handler.UploadResume(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}
