package model

import "encoding/json"

// ApplicationTable is the applications collection name.
const ApplicationTable = "application"

// Application is a job application. Like Job it is an open document:
// Applicant and JobID are the fields the system interprets, everything
// else rides along in Extra. Company, Title, and CompanyLogo are copied
// from the referenced job at read time; when the referenced job is missing
// or the jobId is malformed they are simply left empty and omitted from
// the response.
type Application struct {
	ID        string
	Applicant string
	JobID     string // raw string form of a job record id; weak reference

	Company     string
	Title       string
	CompanyLogo string

	Extra map[string]interface{}
}

// applicationKeys are the document keys lifted into typed fields.
var applicationKeys = []string{"id", "applicant", "jobId", "company", "title", "company_logo"}

// EnrichFromJob copies the denormalized job metadata onto the application.
func (a *Application) EnrichFromJob(job *Job) {
	a.Company = job.Company
	a.Title = job.DisplayTitle()
	a.CompanyLogo = job.CompanyLogo
}

// MarshalJSON writes the open document with typed fields on top of Extra.
// Empty enrichment fields are omitted.
func (a Application) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(a.Extra)+len(applicationKeys))
	for k, v := range a.Extra {
		out[k] = v
	}

	setIfNotEmpty(out, "id", a.ID)
	setIfNotEmpty(out, "applicant", a.Applicant)
	setIfNotEmpty(out, "jobId", a.JobID)
	setIfNotEmpty(out, "company", a.Company)
	setIfNotEmpty(out, "title", a.Title)
	setIfNotEmpty(out, "company_logo", a.CompanyLogo)

	return json.Marshal(out)
}

// UnmarshalJSON lifts the typed keys out of the document and keeps the
// rest in Extra.
func (a *Application) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.ID = stringField(raw, "id")
	a.Applicant = stringField(raw, "applicant")
	a.JobID = stringField(raw, "jobId")
	a.Company = stringField(raw, "company")
	a.Title = stringField(raw, "title")
	a.CompanyLogo = stringField(raw, "company_logo")

	for _, k := range applicationKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		a.Extra = raw
	} else {
		a.Extra = nil
	}

	return nil
}
