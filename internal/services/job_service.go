package services

import (
	"encoding/json"
	"log"
	"time"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// EventPublisher publishes domain events. *rabbitmq.Client satisfies it; a nil
// publisher disables publishing.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// JobService handles business logic for job postings. All validation runs
// before anything is written.
type JobService struct {
	jobRepo      repositories.JobRepository
	publisher    EventPublisher
	validate     *validator.Validate
	strictUpdate bool
}

// NewJobService creates a new JobService. When strictUpdate is true the
// salary-range invariant is re-checked on updates as well as creates.
func NewJobService(jobRepo repositories.JobRepository, publisher EventPublisher, strictUpdate bool) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		publisher:    publisher,
		validate:     validator.New(),
		strictUpdate: strictUpdate,
	}
}

// AddJob validates and persists a new posting for the given owner, then
// publishes a job.created event. The posting date defaults to now.
func (s *JobService) AddJob(job *models.Job, ownerID string) (*models.Job, error) {
	job.JobPostedBy = ownerID
	if job.PostingDate.IsZero() {
		job.PostingDate = time.Now()
	}

	if err := s.validateStructure(job); err != nil {
		return nil, err
	}
	if job.MinSalary >= job.MaxSalary {
		return nil, apperror.BadRequest("minSalary should be less than maxSalary")
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}

	s.publishJobCreated(job)
	return job, nil
}

// GetJobsByOwner returns every posting owned by ownerID.
func (s *JobService) GetJobsByOwner(ownerID string) ([]models.Job, error) {
	return s.jobRepo.GetAllByOwner(ownerID)
}

// GetPublicJobs returns the title+category projection across all owners.
func (s *JobService) GetPublicJobs() ([]models.JobSummary, error) {
	return s.jobRepo.GetAllPublic()
}

// UpdateJob overwrites each non-empty patch field on the owner's posting.
// A job owned by someone else reads as not found. The salary-range invariant
// is only re-checked in strict mode; the legacy contract skips it on update.
func (s *JobService) UpdateJob(jobID, ownerID string, patch *models.Job) (*models.Job, error) {
	job, err := s.jobRepo.GetByIDAndOwner(jobID, ownerID)
	if err != nil {
		return nil, err
	}

	applyPatch(job, patch)

	if err := s.validateStructure(job); err != nil {
		return nil, err
	}
	if s.strictUpdate && job.MinSalary >= job.MaxSalary {
		return nil, apperror.BadRequest("minSalary should be less than maxSalary")
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes the owner's posting; a foreign or missing job is not found.
func (s *JobService) DeleteJob(jobID, ownerID string) error {
	return s.jobRepo.DeleteByIDAndOwner(jobID, ownerID)
}

// validateStructure checks required fields, enum membership and the logo URL.
func (s *JobService) validateStructure(job *models.Job) error {
	if err := s.validate.Struct(job); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			e := validationErrors[0]
			return apperror.BadRequest("invalid value for field " + e.Field())
		}
		return apperror.BadRequest(err.Error())
	}
	if !models.ValidCompanyLogo(job.CompanyLogo) {
		return apperror.BadRequest("Invalid URL format for companyLogo")
	}
	return nil
}

// applyPatch copies every non-zero field of patch onto job. Zero values keep
// the stored value, matching the reference edit semantics.
func applyPatch(job, patch *models.Job) {
	if patch.JobTitle != "" {
		job.JobTitle = patch.JobTitle
	}
	if patch.JobCategory != "" {
		job.JobCategory = patch.JobCategory
	}
	if patch.CompanyName != "" {
		job.CompanyName = patch.CompanyName
	}
	if patch.MinSalary != 0 {
		job.MinSalary = patch.MinSalary
	}
	if patch.MaxSalary != 0 {
		job.MaxSalary = patch.MaxSalary
	}
	if patch.SalaryType != "" {
		job.SalaryType = patch.SalaryType
	}
	if patch.JobLocation != "" {
		job.JobLocation = patch.JobLocation
	}
	if !patch.PostingDate.IsZero() {
		job.PostingDate = patch.PostingDate
	}
	if patch.ExperienceLevel != "" {
		job.ExperienceLevel = patch.ExperienceLevel
	}
	if len(patch.RequiredSkills) > 0 {
		job.RequiredSkills = patch.RequiredSkills
	}
	if patch.CompanyLogo != "" {
		job.CompanyLogo = patch.CompanyLogo
	}
	if patch.EmploymentType != "" {
		job.EmploymentType = patch.EmploymentType
	}
	if patch.JobDescription != "" {
		job.JobDescription = patch.JobDescription
	}
}

// publishJobCreated emits a job.created event. Failures are logged and never
// fail the request.
func (s *JobService) publishJobCreated(job *models.Job) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"jobID":       job.ID,
		"jobTitle":    job.JobTitle,
		"jobCategory": job.JobCategory,
		"postedBy":    job.JobPostedBy,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal job event: %v", err)
		return
	}
	if err := s.publisher.Publish("job.created", body); err != nil {
		log.Printf("Warning: failed to publish job created event for job %s: %v", job.ID, err)
	}
}
