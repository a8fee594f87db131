package domain

// ExtractionRecord is the wire contract with the extraction model. The JSON
// keys are the human-readable field names the prompt asks the model to emit;
// they exist only on this boundary and are renamed to the stable profile
// schema by the transformer.
type ExtractionRecord struct {
	FirstName         *string `json:"First Name"`
	LastName          *string `json:"Last Name"`
	FullName          *string `json:"Full Name"`
	Email             *string `json:"Email"`
	Phone             *string `json:"Phone Number"`
	Location          *string `json:"Location"`
	WillingToRelocate bool    `json:"Willing to relocate"`

	LinkedIn  *string `json:"LinkedIn Profile"`
	GitHub    *string `json:"GitHub Profile"`
	Portfolio *string `json:"Portfolio URL"`

	TechnicalSkills []string `json:"Technical Skills"`
	SoftSkills      []string `json:"Soft Skills"`
	Skills          []string `json:"Skills"`
	Certifications  []string `json:"Certifications"`

	Education  []ExtractedEducation  `json:"Education"`
	Experience []ExtractedExperience `json:"Experience"`
	Projects   []ExtractedProject    `json:"Projects"`
}

// ExtractedEducation is one education entry as the model reports it.
type ExtractedEducation struct {
	Degree     *string `json:"Degree"`
	University *string `json:"University"`
	Year       *string `json:"Year"`
}

// ExtractedExperience is one work-experience entry as the model reports it.
type ExtractedExperience struct {
	Company     *string `json:"Company"`
	Role        *string `json:"Role"`
	Duration    *string `json:"Duration"`
	Description *string `json:"Description"`
}

// ExtractedProject is one project entry as the model reports it.
type ExtractedProject struct {
	Name         *string  `json:"Name"`
	Description  *string  `json:"Description"`
	Technologies []string `json:"Technologies"`
}
