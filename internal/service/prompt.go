package service

import "strings"

// extractionPromptTemplate is the fixed instruction template for the
// extraction call. It declares the exact output schema by example and the
// per-field extraction rules; %RESUME_TEXT% is the single substitution point.
const extractionPromptTemplate = `
You are a strict JSON extractor for a comprehensive resume parsing system.

Your task is to extract ALL the following information from a resume and return it in **this exact JSON format**.

DO NOT add explanations or additional text. ONLY return valid JSON.

Here is the expected format with ALL required fields:

{
  "First Name": "John",
  "Last Name": "Doe",
  "Full Name": "John Doe",
  "Email": "john.doe@example.com",
  "Phone Number": "+1 123-456-7890",
  "Location": "San Francisco, CA",
  "Willing to relocate": false,
  "LinkedIn Profile": "https://linkedin.com/in/johndoe",
  "GitHub Profile": "https://github.com/johndoe",
  "Portfolio URL": "https://johndoe.dev",
  "Technical Skills": ["Python", "React", "Machine Learning", "SQL", "AWS"],
  "Soft Skills": ["Communication", "Leadership", "Problem Solving", "Teamwork"],
  "Skills": ["Python", "React", "Machine Learning", "SQL", "Communication"],
  "Education": [
    {
      "Degree": "B.Tech in Computer Science",
      "University": "IIT Delhi",
      "Year": "2021"
    }
  ],
  "Experience": [
    {
      "Company": "TCS",
      "Role": "Software Developer",
      "Duration": "Jan 2022 - Present",
      "Description": "Developed backend APIs using Python and Node.js, improved system performance by 30%."
    }
  ],
  "Certifications": ["AWS Certified Developer", "Google Cloud Professional"],
  "Projects": [
    {
      "Name": "Resume Parser",
      "Description": "Built an intelligent resume parser using Gemini API with 95% accuracy rate."
    }
  ]
}

**IMPORTANT EXTRACTION GUIDELINES:**
1. **Personal Info**: Extract first name, last name separately AND combined full name
2. **Location**: Extract city, state/country if mentioned
3. **Willing to relocate**: Set to false unless explicitly mentioned as willing/open to relocate
4. **Social Links**: Look for LinkedIn, GitHub, portfolio URLs
5. **Skills**:
   - Separate technical skills (programming languages, tools, frameworks)
   - Separate soft skills (communication, leadership, etc.)
   - Also provide combined skills list for backward compatibility
6. **Experience**: Include company, role, duration, and brief description (1-2 lines max)
7. **Education**: Include degree, institution, year
8. **Projects**: Include name and brief description (1-2 lines max)
9. **Certifications**: List all certifications mentioned

If any field is not found, use null for strings/objects or empty array [] for lists.

Now extract the data from the following resume:

"""
%RESUME_TEXT%
"""
`

const promptPlaceholder = "%RESUME_TEXT%"

// BuildExtractionPrompt embeds the normalized resume text into the fixed
// extraction template. Template substitution only, no branching.
func BuildExtractionPrompt(normalizedText string) string {
	return strings.Replace(extractionPromptTemplate, promptPlaceholder, normalizedText, 1)
}
