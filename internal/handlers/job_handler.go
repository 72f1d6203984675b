package handlers

import (
	"log"
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// RegisterRoutes registers the job routes. authRequired guards every route
// except the public listing.
func (h *JobHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/add-job", authRequired, h.HandleAddJob)
	router.Put("/edit-job/:jobId", authRequired, h.HandleEditJob)
	router.Get("/get-all-jobs", authRequired, h.HandleGetAllJobs)
	router.Delete("/delete-job/:jobId", authRequired, h.HandleDeleteJob)
	router.Get("/get-Jobs", h.HandleGetPublicJobs)
}

// HandleAddJob creates a new posting owned by the authenticated user.
func (h *JobHandler) HandleAddJob(c *fiber.Ctx) error {
	var job models.Job
	if err := c.BodyParser(&job); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request body",
		})
	}

	// Every field except postingDate is required.
	if missingJobFields(&job) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Required fields are missing.",
		})
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	created, err := h.jobService.AddJob(&job, user.ID)
	if err != nil {
		if apperror.IsCode(err, http.StatusBadRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   true,
				"message": apperror.From(err).Message,
			})
		}
		log.Printf("Error adding job: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"job":     created,
		"message": "Job added successfully.",
	})
}

// HandleEditJob overwrites fields on the authenticated user's posting. A
// posting owned by someone else answers as not found, with a 400 status per
// the published contract.
func (h *JobHandler) HandleEditJob(c *fiber.Ctx) error {
	jobID := c.Params("jobId")

	var patch models.Job
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request body",
		})
	}

	// Edits require the full record, posting date included.
	if missingJobFields(&patch) || patch.PostingDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "No Changes provided",
		})
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	updated, err := h.jobService.UpdateJob(jobID, user.ID, &patch)
	if err != nil {
		if apperror.IsCode(err, http.StatusNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   true,
				"message": "Job not found",
			})
		}
		if apperror.IsCode(err, http.StatusBadRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   true,
				"message": apperror.From(err).Message,
			})
		}
		log.Printf("Error updating job %s: %v", jobID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"job":     updated,
		"message": "Job updated Successfully",
	})
}

// HandleGetAllJobs lists the authenticated user's postings.
func (h *JobHandler) HandleGetAllJobs(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	jobs, err := h.jobService.GetJobsByOwner(user.ID)
	if err != nil {
		log.Printf("Error getting jobs for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"jobs":    jobs,
		"message": "All Jobs retrieved Successfully",
	})
}

// HandleDeleteJob removes the authenticated user's posting.
func (h *JobHandler) HandleDeleteJob(c *fiber.Ctx) error {
	jobID := c.Params("jobId")

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	if err := h.jobService.DeleteJob(jobID, user.ID); err != nil {
		if apperror.IsCode(err, http.StatusNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   true,
				"message": "Job not found",
			})
		}
		log.Printf("Error deleting job %s: %v", jobID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Job Deleted Successfully",
	})
}

// HandleGetPublicJobs lists the title+category projection for all postings.
// No authentication required.
func (h *JobHandler) HandleGetPublicJobs(c *fiber.Ctx) error {
	jobs, err := h.jobService.GetPublicJobs()
	if err != nil {
		log.Printf("Error getting public jobs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"jobs":    jobs,
		"message": "All jobTitle jobCategory retrieved successfully",
	})
}

// missingJobFields reports whether any always-required posting field is absent.
func missingJobFields(job *models.Job) bool {
	return job.JobTitle == "" ||
		job.JobCategory == "" ||
		job.CompanyName == "" ||
		job.MinSalary == 0 ||
		job.MaxSalary == 0 ||
		job.SalaryType == "" ||
		job.JobLocation == "" ||
		job.ExperienceLevel == "" ||
		len(job.RequiredSkills) == 0 ||
		job.CompanyLogo == "" ||
		job.EmploymentType == "" ||
		job.JobDescription == ""
}
