package models

import (
	"regexp"
	"time"
)

// Job represents a job posting owned by the user that created it.
type Job struct {
	ID              string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	JobTitle        string    `json:"jobTitle" gorm:"type:varchar(255)" validate:"required"`
	JobCategory     string    `json:"jobCategory" gorm:"type:varchar(100)" validate:"required,oneof='Sales & Marketing' 'Creative' 'Human Resource' 'Administration' 'Digital Marketing' 'Development' 'Engineering'"`
	CompanyName     string    `json:"companyName" gorm:"type:varchar(255)" validate:"required"`
	MinSalary       float64   `json:"minSalary" validate:"required"`
	MaxSalary       float64   `json:"maxSalary" validate:"required"`
	SalaryType      string    `json:"salaryType" gorm:"type:varchar(20)" validate:"required,oneof=Hourly Monthly Yearly"`
	JobLocation     string    `json:"jobLocation" gorm:"type:varchar(255)" validate:"required"`
	PostingDate     time.Time `json:"postingDate"`
	ExperienceLevel string    `json:"experienceLevel" gorm:"type:varchar(20)" validate:"required,oneof='Entry Level' 'Mid Level' 'Senior Level'"`
	RequiredSkills  []string  `json:"requiredSkills" gorm:"serializer:json" validate:"required,min=1"`
	CompanyLogo     string    `json:"companyLogo" gorm:"type:varchar(512)" validate:"required"`
	EmploymentType  string    `json:"employmentType" gorm:"type:varchar(20)" validate:"required,oneof=Full-Time Part-Time Contract Freelance Internship"`
	JobDescription  string    `json:"jobDescription" gorm:"type:text" validate:"required"`
	JobPostedBy     string    `json:"jobPostedBy" gorm:"index;type:varchar(36)" validate:"required"`
}

// JobSummary is the public projection of a posting.
type JobSummary struct {
	ID          string `json:"_id"`
	JobTitle    string `json:"jobTitle"`
	JobCategory string `json:"jobCategory"`
}

// companyLogoPattern mirrors the schema rule: scheme://host/path, no whitespace.
var companyLogoPattern = regexp.MustCompile(`(?i)^(https?|ftp)://[^\s/$.?#].[^\s]*$`)

// ValidCompanyLogo reports whether the logo value is a well-formed URL.
func ValidCompanyLogo(logo string) bool {
	return companyLogoPattern.MatchString(logo)
}
