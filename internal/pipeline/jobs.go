package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

// JobStatus represents the state of an extraction job.
type JobStatus string

const (
	StatusQueued      JobStatus = "queued"
	StatusReading     JobStatus = "reading"
	StatusNormalizing JobStatus = "normalizing"
	StatusExtracting  JobStatus = "extracting"
	StatusScoring     JobStatus = "scoring"
	StatusCompleted   JobStatus = "completed"
	StatusFailed      JobStatus = "failed"
)

// Job tracks the state of a single document extraction.
type Job struct {
	mu sync.Mutex

	ID       string    `json:"job_id"`
	DocID    string    `json:"doc_id"`
	Filename string    `json:"filename"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	errors   []string
}

// Progress tracks extraction progress.
type Progress struct {
	ExtractorsRun  int      `json:"extractors_run"`
	ExtractorTotal int      `json:"extractors_total"`
	Candidates     int      `json:"candidates"`
	FieldsScored   int      `json:"fields_scored"`
	Errors         []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetExtractorTotal records how many extractors will run.
func (j *Job) SetExtractorTotal(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.ExtractorTotal = n
	j.UpdatedAt = time.Now()
}

// IncrExtractorsRun atomically counts a finished extractor and its
// candidate yield.
func (j *Job) IncrExtractorsRun(candidates int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.ExtractorsRun++
	j.Progress.Candidates += candidates
	j.UpdatedAt = time.Now()
}

// SetFieldsScored records how many fields received a confidence entry.
func (j *Job) SetFieldsScored(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.FieldsScored = n
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	DocID    string    `json:"doc_id"`
	Filename string    `json:"filename"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Progress Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:       j.ID,
		DocID:    j.DocID,
		Filename: j.Filename,
		Status:   j.Status,
		Phase:    j.Phase,
		Progress: Progress{
			ExtractorsRun:  j.Progress.ExtractorsRun,
			ExtractorTotal: j.Progress.ExtractorTotal,
			Candidates:     j.Progress.Candidates,
			FieldsScored:   j.Progress.FieldsScored,
			Errors:         errs,
		},
	}
}

// NewJobID derives a job identifier from the document id and time.
func NewJobID(docID string, now time.Time) string {
	h := sha256.Sum256(fmt.Appendf(nil, "%s-%d", docID, now.UnixNano()))
	return fmt.Sprintf("%x", h[:])[:20]
}
