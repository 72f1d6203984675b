package repositories

import "jobboard/internal/models"

// JobRepository defines the interface for job-posting data access.
// Every owner-scoped operation treats a job belonging to another owner as
// missing; Update matches on the job's ID and JobPostedBy.
type JobRepository interface {
	Create(job *models.Job) error
	GetByIDAndOwner(id, ownerID string) (*models.Job, error)
	GetAllByOwner(ownerID string) ([]models.Job, error)
	GetAllPublic() ([]models.JobSummary, error)
	Update(job *models.Job) error
	DeleteByIDAndOwner(id, ownerID string) error
}
