package domain

import (
	"context"
	"io"
	"time"
)

// ResumeService runs the full upload pipeline: store the file, extract text,
// call the model, parse, transform and upsert the resulting profile.
type ResumeService interface {
	ProcessUpload(ctx context.Context, subjectID, filename string, data []byte) (*UploadResult, error)
}

// ProfileService exposes CRUD over persisted profiles.
type ProfileService interface {
	Upsert(profile *ProfileRecord) (*ProfileRecord, error)
	Get(subjectID string) (*ProfileRecord, error)
	UpdatePartial(subjectID string, update *ProfileUpdate) (*ProfileRecord, error)
	Delete(subjectID string) error
}

// ProfileRepository is the profile store. Get returns ErrProfileNotFound for
// an unknown subject id; Insert returns ErrProfileExists on a duplicate.
type ProfileRepository interface {
	Insert(profile *ProfileRecord) error
	Get(subjectID string) (*ProfileRecord, error)
	Update(profile *ProfileRecord) error
	Patch(subjectID string, fields map[string]interface{}) error
	Delete(subjectID string) error
}

// ObjectStorage uploads a file and returns its publicly retrievable URL.
// Uploads are idempotent under retry with the same path (overwrite-on-conflict).
type ObjectStorage interface {
	Upload(ctx context.Context, path, contentType string, file io.Reader) (string, error)
}

// Completer is the text-completion service: prompt in, free-form text out.
// No schema guarantee on the response; the response parser exists precisely
// because this contract is unreliable.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TextExtractor pulls the visible text out of an uploaded document.
type TextExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxFileSize() int64
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetStorageBucket() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetAITimeout() time.Duration
}
