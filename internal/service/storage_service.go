package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"resume-parser-api/internal/domain"
	apperrors "resume-parser-api/pkg/errors"
)

// SupabaseStorage implements domain.ObjectStorage against the Supabase
// storage REST API. Uploads use x-upsert so a retry with the same path
// overwrites instead of failing on conflict.
type SupabaseStorage struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
}

// NewStorageService creates a Supabase-backed object storage client
func NewStorageService(config domain.Config) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL: config.GetSupabaseURL(),
		apiKey:  config.GetSupabaseKey(),
		bucket:  config.GetStorageBucket(),
		client:  http.DefaultClient,
	}
}

// Upload stores the file under the given path in the configured bucket and
// returns its public URL.
func (s *SupabaseStorage) Upload(ctx context.Context, path, contentType string, file io.Reader) (string, error) {
	escaped := url.PathEscape(path)
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, escaped)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, file)
	if err != nil {
		return "", apperrors.NewInternalError("failed to build storage request", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.NewExternalError("storage upload failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperrors.NewExternalError(
			fmt.Sprintf("storage upload failed with status %d: %s", resp.StatusCode, string(body)), nil)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, escaped), nil
}
