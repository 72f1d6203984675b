package repositories

import (
	"fmt"
	"sync"

	"jobboard/internal/models"
	"jobboard/pkg/apperror"

	"github.com/google/uuid"
)

// MemoryJobRepository is an in-memory implementation of JobRepository.
type MemoryJobRepository struct {
	jobs  map[string]models.Job
	order []string // insertion order of job IDs
	mu    sync.RWMutex
}

// NewMemoryJobRepository creates a new instance of MemoryJobRepository.
func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{
		jobs: make(map[string]models.Job),
	}
}

// Create adds a new job posting.
func (r *MemoryJobRepository) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	r.jobs[job.ID] = *job
	r.order = append(r.order, job.ID)
	return nil
}

// GetByIDAndOwner returns a job matching both the ID and the owner.
func (r *MemoryJobRepository) GetByIDAndOwner(id, ownerID string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok || job.JobPostedBy != ownerID {
		return nil, apperror.NotFound(fmt.Sprintf("job with ID %s not found", id))
	}
	return &job, nil
}

// GetAllByOwner returns the owner's jobs in insertion order.
func (r *MemoryJobRepository) GetAllByOwner(ownerID string) ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]models.Job, 0)
	for _, id := range r.order {
		if job, ok := r.jobs[id]; ok && job.JobPostedBy == ownerID {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

// GetAllPublic returns the title+category projection across all owners.
func (r *MemoryJobRepository) GetAllPublic() ([]models.JobSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]models.JobSummary, 0, len(r.order))
	for _, id := range r.order {
		if job, ok := r.jobs[id]; ok {
			summaries = append(summaries, models.JobSummary{
				ID:          job.ID,
				JobTitle:    job.JobTitle,
				JobCategory: job.JobCategory,
			})
		}
	}
	return summaries, nil
}

// Update overwrites an existing job, matching on ID and owner.
func (r *MemoryJobRepository) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.jobs[job.ID]
	if !ok || stored.JobPostedBy != job.JobPostedBy {
		return apperror.NotFound(fmt.Sprintf("job with ID %s not found", job.ID))
	}
	r.jobs[job.ID] = *job
	return nil
}

// DeleteByIDAndOwner removes a job matching both the ID and the owner.
func (r *MemoryJobRepository) DeleteByIDAndOwner(id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok || job.JobPostedBy != ownerID {
		return apperror.NotFound(fmt.Sprintf("job with ID %s not found", id))
	}
	delete(r.jobs, id)
	for i, jid := range r.order {
		if jid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
