package service

import (
	"errors"
	"time"

	"resume-parser-api/internal/domain"
	apperrors "resume-parser-api/pkg/errors"
)

// ProfileService implements domain.ProfileService on top of the profile
// repository. Timestamp semantics live here, not in the store: created_at is
// set exactly once, updated_at on every write.
type ProfileService struct {
	repo   domain.ProfileRepository
	logger domain.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(repo domain.ProfileRepository, logger domain.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

// Upsert creates the profile when the subject id is unknown and replaces it
// otherwise. The original created_at survives a replace.
func (s *ProfileService) Upsert(profile *domain.ProfileRecord) (*domain.ProfileRecord, error) {
	if profile == nil || profile.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	now := time.Now().UTC()
	existing, err := s.repo.Get(profile.SubjectID)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		profile.CreatedAt = now
		profile.UpdatedAt = now
		if err := s.repo.Insert(profile); err != nil {
			s.logger.Error("Failed to insert profile", err, "subject_id", profile.SubjectID)
			if errors.Is(err, domain.ErrProfileExists) {
				// Lost a create race for this subject id.
				return nil, apperrors.NewConflictError("profile already exists")
			}
			return nil, err
		}
		s.logger.Info("Profile created", "subject_id", profile.SubjectID)
	case err != nil:
		s.logger.Error("Failed to look up profile for upsert", err, "subject_id", profile.SubjectID)
		return nil, err
	default:
		profile.CreatedAt = existing.CreatedAt
		profile.UpdatedAt = now
		if err := s.repo.Update(profile); err != nil {
			s.logger.Error("Failed to update profile", err, "subject_id", profile.SubjectID)
			return nil, err
		}
		s.logger.Info("Profile replaced", "subject_id", profile.SubjectID)
	}

	return profile, nil
}

// Get retrieves the profile for a subject id.
func (s *ProfileService) Get(subjectID string) (*domain.ProfileRecord, error) {
	if subjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	profile, err := s.repo.Get(subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, err
	}
	return profile, nil
}

// UpdatePartial applies the non-nil fields of the update to an existing
// profile and returns the stored record. subject_id and created_at are never
// patchable; updated_at moves on every applied patch.
func (s *ProfileService) UpdatePartial(subjectID string, update *domain.ProfileUpdate) (*domain.ProfileRecord, error) {
	if subjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}
	if update == nil {
		return nil, apperrors.NewValidationError("update body is required")
	}
	if update.SubjectID != "" && update.SubjectID != subjectID {
		return nil, apperrors.NewValidationError("subject_id in body does not match path")
	}

	current, err := s.repo.Get(subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, err
	}

	fields := patchFields(update)
	if len(fields) == 0 {
		return current, nil
	}
	fields["updated_at"] = time.Now().UTC()

	if err := s.repo.Patch(subjectID, fields); err != nil {
		s.logger.Error("Failed to patch profile", err, "subject_id", subjectID)
		return nil, err
	}
	s.logger.Info("Profile patched", "subject_id", subjectID, "fields", len(fields)-1)

	return s.repo.Get(subjectID)
}

// Delete removes the profile for a subject id.
func (s *ProfileService) Delete(subjectID string) error {
	if subjectID == "" {
		return apperrors.NewValidationError("subject_id is required")
	}

	if _, err := s.repo.Get(subjectID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return apperrors.NewNotFoundError("profile not found")
		}
		return err
	}

	if err := s.repo.Delete(subjectID); err != nil {
		s.logger.Error("Failed to delete profile", err, "subject_id", subjectID)
		return err
	}
	s.logger.Info("Profile deleted", "subject_id", subjectID)
	return nil
}

// patchFields flattens the non-nil members of a partial update into column
// assignments. Nil means "leave unchanged"; an empty list is an explicit
// value and is applied.
func patchFields(update *domain.ProfileUpdate) map[string]interface{} {
	fields := map[string]interface{}{}

	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}
	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}
	if update.WillingToRelocate != nil {
		fields["willing_to_relocate"] = *update.WillingToRelocate
	}
	if update.Role != nil {
		fields["role"] = *update.Role
	}
	if update.CurrentCompany != nil {
		fields["current_company"] = *update.CurrentCompany
	}
	if update.ResumeURL != nil {
		fields["resume_url"] = *update.ResumeURL
	}
	if update.ResumeFilename != nil {
		fields["resume_filename"] = *update.ResumeFilename
	}
	if update.TechnicalSkills != nil {
		fields["technical_skills"] = update.TechnicalSkills
	}
	if update.SoftSkills != nil {
		fields["soft_skills"] = update.SoftSkills
	}
	if update.Skills != nil {
		fields["skills"] = update.Skills
	}
	if update.SocialLinks != nil {
		fields["social_links"] = *update.SocialLinks
	}
	if update.Experience != nil {
		fields["experience"] = update.Experience
	}
	if update.Education != nil {
		fields["education"] = update.Education
	}
	if update.Certifications != nil {
		fields["certifications"] = update.Certifications
	}
	if update.Projects != nil {
		fields["projects"] = update.Projects
	}

	return fields
}
