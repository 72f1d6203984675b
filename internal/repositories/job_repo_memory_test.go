package repositories_test

import (
	"net/http"
	"testing"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func storedJob(id, ownerID string) *models.Job {
	return &models.Job{
		ID:              id,
		JobTitle:        "Backend Engineer",
		JobCategory:     "Development",
		CompanyName:     "Acme Corp",
		MinSalary:       3000,
		MaxSalary:       5000,
		SalaryType:      "Monthly",
		JobLocation:     "Jakarta",
		ExperienceLevel: "Mid Level",
		RequiredSkills:  []string{"Go", "SQL"},
		CompanyLogo:     "https://acme.example.com/logo.png",
		EmploymentType:  "Full-Time",
		JobDescription:  "Build and operate backend services.",
		JobPostedBy:     ownerID,
	}
}

func TestMemoryJobRepository_UpdateIsOwnerScoped(t *testing.T) {
	repo := repositories.NewMemoryJobRepository()
	assert.NoError(t, repo.Create(storedJob("job-1", "owner-1")))

	// The owner can overwrite the record
	updated := storedJob("job-1", "owner-1")
	updated.JobTitle = "Senior Backend Engineer"
	assert.NoError(t, repo.Update(updated))

	got, err := repo.GetByIDAndOwner("job-1", "owner-1")
	assert.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", got.JobTitle)

	// An update carrying a different owner reads as not found and changes
	// nothing
	foreign := storedJob("job-1", "owner-2")
	foreign.JobTitle = "Hijacked"
	err = repo.Update(foreign)
	assert.Error(t, err)
	assert.True(t, apperror.IsCode(err, http.StatusNotFound))

	got, err = repo.GetByIDAndOwner("job-1", "owner-1")
	assert.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", got.JobTitle)

	// Missing job is also not found
	missing := storedJob("job-404", "owner-1")
	err = repo.Update(missing)
	assert.Error(t, err)
	assert.True(t, apperror.IsCode(err, http.StatusNotFound))
}

func TestMemoryJobRepository_OwnerListingAndInsertionOrder(t *testing.T) {
	repo := repositories.NewMemoryJobRepository()

	first := storedJob("job-1", "owner-1")
	second := storedJob("job-2", "owner-1")
	second.JobTitle = "Copywriter"
	other := storedJob("job-3", "owner-2")
	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(second))
	assert.NoError(t, repo.Create(other))

	jobs, err := repo.GetAllByOwner("owner-1")
	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Equal(t, "job-2", jobs[1].ID)

	summaries, err := repo.GetAllPublic()
	assert.NoError(t, err)
	assert.Len(t, summaries, 3)
	assert.Equal(t, models.JobSummary{ID: "job-1", JobTitle: "Backend Engineer", JobCategory: "Development"}, summaries[0])
}
