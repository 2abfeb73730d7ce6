package model

import (
	"encoding/json"
	"strings"
)

// JobTable is the jobs collection name.
const JobTable = "job"

// Job is a job posting. Postings are open documents: callers may store any
// fields, so the struct keeps the fields the system interprets as typed
// values and carries everything else in Extra. ApplicationCount is derived
// at read time on the list endpoint and is never persisted.
type Job struct {
	ID          string
	HREmail     string
	Company     string
	Title       string
	JobTitle    string // legacy alias for Title
	CompanyLogo string

	ApplicationCount *int

	Extra map[string]interface{}
}

// jobKeys are the document keys lifted into typed fields.
var jobKeys = []string{"id", "hr_email", "company", "title", "jobTitle", "company_logo", "applicationCount"}

// DisplayTitle returns the job title, falling back to the legacy jobTitle
// field for older documents.
func (j *Job) DisplayTitle() string {
	if j.Title != "" {
		return j.Title
	}
	return j.JobTitle
}

// MarshalJSON writes the open document: extension fields first, typed
// fields on top. Empty typed fields are omitted; ApplicationCount is
// included only when it has been computed.
func (j Job) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(j.Extra)+len(jobKeys))
	for k, v := range j.Extra {
		out[k] = v
	}

	setIfNotEmpty(out, "id", j.ID)
	setIfNotEmpty(out, "hr_email", j.HREmail)
	setIfNotEmpty(out, "company", j.Company)
	setIfNotEmpty(out, "title", j.Title)
	setIfNotEmpty(out, "jobTitle", j.JobTitle)
	setIfNotEmpty(out, "company_logo", j.CompanyLogo)
	if j.ApplicationCount != nil {
		out["applicationCount"] = *j.ApplicationCount
	}

	return json.Marshal(out)
}

// UnmarshalJSON lifts the typed keys out of the document and keeps the
// rest in Extra.
func (j *Job) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	j.ID = stringField(raw, "id")
	j.HREmail = stringField(raw, "hr_email")
	j.Company = stringField(raw, "company")
	j.Title = stringField(raw, "title")
	j.JobTitle = stringField(raw, "jobTitle")
	j.CompanyLogo = stringField(raw, "company_logo")
	if count, ok := raw["applicationCount"].(float64); ok {
		c := int(count)
		j.ApplicationCount = &c
	} else {
		j.ApplicationCount = nil
	}

	for _, k := range jobKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		j.Extra = raw
	} else {
		j.Extra = nil
	}

	return nil
}

// CanonicalJobID validates a caller-supplied job identifier and normalizes
// it to record-id form (job:<id>). The table prefix is optional on input.
// Returns false for anything that is not a well-formed identifier, so
// malformed ids are rejected before they reach the store.
func CanonicalJobID(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	id = strings.TrimPrefix(id, JobTable+":")
	if id == "" || len(id) > 64 {
		return "", false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return "", false
		}
	}
	return JobTable + ":" + id, true
}

func setIfNotEmpty(m map[string]interface{}, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
