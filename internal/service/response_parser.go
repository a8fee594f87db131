package service

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"resume-parser-api/internal/domain"
)

var (
	trailingCommaRe  = regexp.MustCompile(`,\s*([}\]])`)
	singleQuoteKeyRe = regexp.MustCompile(`'([^']*)'\s*:`)
	singleQuoteValRe = regexp.MustCompile(`:\s*'([^']*)'`)
)

// ParseExtraction turns a model completion into an ExtractionRecord. The
// completion may be clean JSON, fenced JSON, JSON with prose around it, or
// garbage; recovery is attempted in a fixed order and the function never
// returns an error. When nothing salvageable remains, the default record
// ("Unknown" full name, empty lists) is returned.
func ParseExtraction(raw string, logger domain.Logger) *domain.ExtractionRecord {
	cleaned := stripCodeFences(raw)

	if m := parseObject(cleaned); m != nil {
		return recordFromMap(m)
	}

	candidate := extractObjectCandidate(cleaned)
	if candidate != "" {
		if m := parseObject(candidate); m != nil {
			logger.Debug("Recovered extraction JSON from surrounding text")
			return recordFromMap(m)
		}
		cleaned = candidate
	}

	decoded := decodeEscapes(cleaned)
	if decoded != cleaned {
		if m := parseObject(decoded); m != nil {
			logger.Debug("Recovered extraction JSON after escape decoding")
			return recordFromMap(m)
		}
		cleaned = decoded
	}

	repaired := repairJSON(cleaned)
	if m := parseObject(repaired); m != nil {
		logger.Debug("Recovered extraction JSON after syntax repair")
		return recordFromMap(m)
	}

	logger.Warn("Model response could not be parsed, using default extraction record", "response_length", len(raw))
	return defaultExtractionRecord()
}

// stripCodeFences removes a surrounding markdown code fence, with or without
// a json language tag. Non-fenced input passes through trimmed.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseObject unmarshals s into a JSON object. A nil result means failure:
// either invalid JSON or a valid non-object value such as null or an array.
func parseObject(s string) map[string]interface{} {
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil
	}
	return m
}

// extractObjectCandidate cuts the substring from the first '{' to the last
// '}', discarding prose the model wrapped around the object. Returns "" when
// no such span exists.
func extractObjectCandidate(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// decodeEscapes resolves escape sequences the model emitted literally, as
// happens when JSON is double-encoded inside a fenced block. \uXXXX becomes
// the code point; \n \t \r \" \\ \' \/ become their characters; an
// unrecognized or truncated escape is kept as-is.
func decodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'u':
			if i+6 <= len(s) {
				if code, err := strconv.ParseUint(s[i+2:i+6], 16, 32); err == nil {
					b.WriteRune(rune(code))
					i += 5
					continue
				}
			}
			b.WriteByte(s[i])
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case '"', '\\', '\'', '/':
			b.WriteByte(s[i+1])
			i++
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// repairJSON applies the tolerated syntax deviations: trailing commas before
// a closing brace or bracket, and single-quoted keys or string values.
func repairJSON(s string) string {
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = singleQuoteKeyRe.ReplaceAllString(s, `"$1":`)
	s = singleQuoteValRe.ReplaceAllString(s, `: "$1"`)
	return s
}

// defaultExtractionRecord is the stage of last resort: a record a downstream
// consumer can always work with, no nil lists.
func defaultExtractionRecord() *domain.ExtractionRecord {
	return &domain.ExtractionRecord{
		FullName:        strPtr("Unknown"),
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		Skills:          []string{},
		Education:       []domain.ExtractedEducation{},
		Experience:      []domain.ExtractedExperience{},
		Certifications:  []string{},
		Projects:        []domain.ExtractedProject{},
	}
}

// recordFromMap coerces a parsed object into the extraction schema. Getters
// are type-tolerant: wrong-typed fields fall back to the zero value instead
// of failing the whole record.
func recordFromMap(m map[string]interface{}) *domain.ExtractionRecord {
	return &domain.ExtractionRecord{
		FirstName:         getStringPtr(m, "First Name"),
		LastName:          getStringPtr(m, "Last Name"),
		FullName:          getStringPtr(m, "Full Name"),
		Email:             getStringPtr(m, "Email"),
		Phone:             getStringPtr(m, "Phone Number"),
		Location:          getStringPtr(m, "Location"),
		WillingToRelocate: getBool(m, "Willing to relocate"),
		LinkedIn:          getStringPtr(m, "LinkedIn Profile"),
		GitHub:            getStringPtr(m, "GitHub Profile"),
		Portfolio:         getStringPtr(m, "Portfolio URL"),
		TechnicalSkills:   getStringList(m, "Technical Skills"),
		SoftSkills:        getStringList(m, "Soft Skills"),
		Skills:            getStringList(m, "Skills"),
		Education:         getEducationList(m, "Education"),
		Experience:        getExperienceList(m, "Experience"),
		Certifications:    getStringList(m, "Certifications"),
		Projects:          getProjectList(m, "Projects"),
	}
}

func getStringPtr(m map[string]interface{}, key string) *string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch s := v.(type) {
	case string:
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return strPtr(s)
	case float64:
		return strPtr(strconv.FormatFloat(s, 'f', -1, 64))
	case bool:
		return strPtr(strconv.FormatBool(s))
	default:
		return nil
	}
}

func getBool(m map[string]interface{}, key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true") || strings.EqualFold(strings.TrimSpace(v), "yes")
	default:
		return false
	}
}

func getStringList(m map[string]interface{}, key string) []string {
	out := []string{}
	items, ok := m[key].([]interface{})
	if !ok {
		// A single string where a list was expected still counts.
		if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
			return append(out, s)
		}
		return out
	}
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				out = append(out, v)
			}
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	return out
}

func getEducationList(m map[string]interface{}, key string) []domain.ExtractedEducation {
	out := []domain.ExtractedEducation{}
	items, ok := m[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, domain.ExtractedEducation{
			Degree:     getStringPtr(entry, "Degree"),
			University: getStringPtr(entry, "University"),
			Year:       getStringPtr(entry, "Year"),
		})
	}
	return out
}

func getExperienceList(m map[string]interface{}, key string) []domain.ExtractedExperience {
	out := []domain.ExtractedExperience{}
	items, ok := m[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, domain.ExtractedExperience{
			Company:     getStringPtr(entry, "Company"),
			Role:        getStringPtr(entry, "Role"),
			Duration:    getStringPtr(entry, "Duration"),
			Description: getStringPtr(entry, "Description"),
		})
	}
	return out
}

func getProjectList(m map[string]interface{}, key string) []domain.ExtractedProject {
	out := []domain.ExtractedProject{}
	items, ok := m[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, domain.ExtractedProject{
			Name:         getStringPtr(entry, "Name"),
			Description:  getStringPtr(entry, "Description"),
			Technologies: getStringList(entry, "Technologies"),
		})
	}
	return out
}

func strPtr(s string) *string {
	return &s
}
