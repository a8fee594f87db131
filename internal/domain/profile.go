package domain

import "time"

// DefaultRole is assigned to every profile created from a resume upload.
// Role classification from resume content is a future extension point; the
// transformer never derives it from the extraction record.
const DefaultRole = "job_seeker"

// SocialLinks groups the candidate's public profile URLs.
type SocialLinks struct {
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Portfolio *string `json:"portfolio"`
}

// Experience is one work-experience entry in the stable profile schema.
type Experience struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
}

// Education is one education entry in the stable profile schema.
type Education struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Year        *string `json:"year"`
}

// Project is one project entry in the stable profile schema.
type Project struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
}

// ProfileRecord is the persisted user profile, keyed by the subject id.
type ProfileRecord struct {
	SubjectID string `json:"subject_id"`

	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	FullName          *string `json:"full_name"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Location          *string `json:"location"`
	WillingToRelocate bool    `json:"willing_to_relocate"`

	Role           string  `json:"role"`
	CurrentCompany *string `json:"current_company"`

	ResumeURL      *string `json:"resume_url"`
	ResumeFilename *string `json:"resume_filename"`

	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	Skills          []string `json:"skills"`

	SocialLinks SocialLinks `json:"social_links"`

	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications"`
	Projects       []Project    `json:"projects"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries a partial profile update. Only non-nil fields are
// applied; nil means "leave unchanged".
type ProfileUpdate struct {
	SubjectID string `json:"subject_id"`

	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	FullName          *string `json:"full_name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Location          *string `json:"location,omitempty"`
	WillingToRelocate *bool   `json:"willing_to_relocate,omitempty"`

	Role           *string `json:"role,omitempty"`
	CurrentCompany *string `json:"current_company,omitempty"`

	ResumeURL      *string `json:"resume_url,omitempty"`
	ResumeFilename *string `json:"resume_filename,omitempty"`

	TechnicalSkills []string `json:"technical_skills,omitempty"`
	SoftSkills      []string `json:"soft_skills,omitempty"`
	Skills          []string `json:"skills,omitempty"`

	SocialLinks *SocialLinks `json:"social_links,omitempty"`

	Experience     []Experience `json:"experience,omitempty"`
	Education      []Education  `json:"education,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
	Projects       []Project    `json:"projects,omitempty"`
}

// UploadResult is what a successful resume upload produces: where the file
// landed, what the model extracted, and the profile that was persisted.
type UploadResult struct {
	ResumeURL  string            `json:"resume_url"`
	Extraction *ExtractionRecord `json:"result"`
	Profile    *ProfileRecord    `json:"profile"`
}
