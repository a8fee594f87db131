package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"resume-parser-api/internal/domain"
)

const profilesTable = "profiles"

// SupabaseProfileRepository implements domain.ProfileRepository on top of the
// PostgREST API. The `profiles` table has a unique index on subject_id, so
// concurrent upserts for the same subject serialize at the store.
type SupabaseProfileRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewSupabaseProfileRepository creates a new Supabase profile repository
func NewSupabaseProfileRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.ProfileRepository {
	return &SupabaseProfileRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// Insert creates a new profile row
func (r *SupabaseProfileRepository) Insert(profile *domain.ProfileRecord) error {
	client := r.supabaseClient.DB()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	_, _, err := client.From(profilesTable).Insert(profile, false, "", "", "").Execute()
	if err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "23505") {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	r.logger.Info("Profile created", "subject_id", profile.SubjectID)
	return nil
}

// Get retrieves a profile by subject id
func (r *SupabaseProfileRepository) Get(subjectID string) (*domain.ProfileRecord, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From(profilesTable).
		Select("*", "", false).
		Eq("subject_id", subjectID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profiles []*domain.ProfileRecord
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(profiles) == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return profiles[0], nil
}

// Update replaces every column of an existing profile row
func (r *SupabaseProfileRepository) Update(profile *domain.ProfileRecord) error {
	client := r.supabaseClient.DB()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	_, _, err := client.From(profilesTable).
		Update(profile, "", "").
		Eq("subject_id", profile.SubjectID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

// Patch sets only the given columns on an existing profile row
func (r *SupabaseProfileRepository) Patch(subjectID string, fields map[string]interface{}) error {
	client := r.supabaseClient.DB()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	_, _, err := client.From(profilesTable).
		Update(fields, "", "").
		Eq("subject_id", subjectID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to patch profile: %w", err)
	}

	return nil
}

// Delete removes a profile row by subject id
func (r *SupabaseProfileRepository) Delete(subjectID string) error {
	client := r.supabaseClient.DB()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	_, _, err := client.From(profilesTable).
		Delete("", "").
		Eq("subject_id", subjectID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	r.logger.Info("Profile deleted", "subject_id", subjectID)
	return nil
}
