package dto

// BulkAlumniRecord is the explicit schema each bulk-import entry is validated
// against before insertion. No binding tags here: a malformed record must be
// reported individually by the import service, never reject the whole batch.
type BulkAlumniRecord struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Department     string   `json:"department"`
	GraduationYear int      `json:"graduationYear"`
	CurrentCompany string   `json:"currentCompany"`
	CurrentRole    string   `json:"currentRole"`
	Location       string   `json:"location"`
	Skills         []string `json:"skills"`
}

// BulkImportResult aggregates per-record outcomes of a bulk alumni import.
// A failing record never aborts the batch.
type BulkImportResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}
