package service

import "resume-parser-api/internal/domain"

// ProfileFromExtraction renames the model-facing extraction record into the
// stable profile schema. Pure field mapping: list order is preserved, no
// entries are invented or dropped, and absent optionals stay nil. Role is
// always the default and current_company always starts empty; neither is
// derivable from a resume alone.
func ProfileFromExtraction(rec *domain.ExtractionRecord, subjectID, resumeURL, filename string) *domain.ProfileRecord {
	profile := &domain.ProfileRecord{
		SubjectID: subjectID,

		FirstName:         rec.FirstName,
		LastName:          rec.LastName,
		FullName:          rec.FullName,
		Email:             rec.Email,
		Phone:             rec.Phone,
		Location:          rec.Location,
		WillingToRelocate: rec.WillingToRelocate,

		Role:           domain.DefaultRole,
		CurrentCompany: nil,

		ResumeURL:      strPtr(resumeURL),
		ResumeFilename: strPtr(filename),

		TechnicalSkills: emptyIfNil(rec.TechnicalSkills),
		SoftSkills:      emptyIfNil(rec.SoftSkills),
		Skills:          emptyIfNil(rec.Skills),
		Certifications:  emptyIfNil(rec.Certifications),

		SocialLinks: domain.SocialLinks{
			LinkedIn:  rec.LinkedIn,
			GitHub:    rec.GitHub,
			Portfolio: rec.Portfolio,
		},
	}

	profile.Experience = make([]domain.Experience, 0, len(rec.Experience))
	for _, exp := range rec.Experience {
		profile.Experience = append(profile.Experience, domain.Experience{
			Company:     exp.Company,
			Position:    exp.Role,
			Duration:    exp.Duration,
			Description: exp.Description,
		})
	}

	profile.Education = make([]domain.Education, 0, len(rec.Education))
	for _, edu := range rec.Education {
		profile.Education = append(profile.Education, domain.Education{
			Degree:      edu.Degree,
			Institution: edu.University,
			Year:        edu.Year,
		})
	}

	profile.Projects = make([]domain.Project, 0, len(rec.Projects))
	for _, proj := range rec.Projects {
		profile.Projects = append(profile.Projects, domain.Project{
			Name:         proj.Name,
			Description:  proj.Description,
			Technologies: emptyIfNil(proj.Technologies),
		})
	}

	return profile
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
