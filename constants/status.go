package constants

// JobStatus is the canonical status for rows in extract_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusTextOK  JobStatus = "TEXT_OK"  // stage 1 completed (PDF text extracted)
	JobStatusParseOK JobStatus = "PARSE_OK" // stage 2 completed (fields extracted and persisted)
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)
