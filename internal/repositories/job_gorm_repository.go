package repositories

import (
	"errors"
	"fmt"

	"jobboard/internal/models"
	"jobboard/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMJobRepository is a GORM implementation of JobRepository.
type GORMJobRepository struct {
	db *gorm.DB
}

// NewGORMJobRepository creates a new instance of GORMJobRepository.
func NewGORMJobRepository(db *gorm.DB) *GORMJobRepository {
	return &GORMJobRepository{
		db: db,
	}
}

// Create persists a new job posting, assigning an ID if unset.
func (r *GORMJobRepository) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetByIDAndOwner retrieves a job matching both the ID and the owner.
func (r *GORMJobRepository) GetByIDAndOwner(id, ownerID string) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, "id = ? AND job_posted_by = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("job with ID %s not found", id))
		}
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return &job, nil
}

// GetAllByOwner retrieves every job posted by the given owner.
func (r *GORMJobRepository) GetAllByOwner(ownerID string) ([]models.Job, error) {
	jobs := make([]models.Job, 0)
	if err := r.db.Find(&jobs, "job_posted_by = ?", ownerID).Error; err != nil {
		return nil, fmt.Errorf("failed to get jobs for owner %s: %w", ownerID, err)
	}
	return jobs, nil
}

// GetAllPublic retrieves the title+category projection across all owners.
func (r *GORMJobRepository) GetAllPublic() ([]models.JobSummary, error) {
	summaries := make([]models.JobSummary, 0)
	if err := r.db.Model(&models.Job{}).
		Select("id", "job_title", "job_category").
		Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get public jobs: %w", err)
	}
	return summaries, nil
}

// Update overwrites the full job record, matching on ID and owner.
func (r *GORMJobRepository) Update(job *models.Job) error {
	res := r.db.Model(&models.Job{}).
		Where("id = ? AND job_posted_by = ?", job.ID, job.JobPostedBy).
		Select("*").
		Updates(job)
	if res.Error != nil {
		return fmt.Errorf("failed to update job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound(fmt.Sprintf("job with ID %s not found", job.ID))
	}
	return nil
}

// DeleteByIDAndOwner deletes a job matching both the ID and the owner.
func (r *GORMJobRepository) DeleteByIDAndOwner(id, ownerID string) error {
	res := r.db.Delete(&models.Job{}, "id = ? AND job_posted_by = ?", id, ownerID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound(fmt.Sprintf("job with ID %s not found", id))
	}
	return nil
}
