package http

import (
	"github.com/google/uuid"

	"github.com/sanketgaikwad/portfolio-api/internal/domain/certification"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/education"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/internship"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/profile"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/project"
)

// Profile DTOs

type UpdateProfileRequest struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
	Title  string `json:"title" binding:"required"`
	About  string `json:"about"`
	CVUrl  string `json:"cv_url"`
}

func (r *UpdateProfileRequest) ToDomain() profile.Profile {
	return profile.Profile{
		Name:   r.Name,
		Avatar: r.Avatar,
		Title:  r.Title,
		About:  r.About,
		CVUrl:  r.CVUrl,
	}
}

// Education DTOs

type EducationRequest struct {
	School string `json:"school" binding:"required"`
	Degree string `json:"degree" binding:"required"`
	Period string `json:"period" binding:"required"`
}

func (r *EducationRequest) ToDomain(id uuid.UUID) education.Education {
	return education.Education{
		ID:     id,
		School: r.School,
		Degree: r.Degree,
		Period: r.Period,
	}
}

// Internship DTOs

type InternshipRequest struct {
	Company        string   `json:"company" binding:"required"`
	Role           string   `json:"role" binding:"required"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Memories       string   `json:"memories"`
	Images         []string `json:"images" binding:"required,min=1"`
	CertificateURL *string  `json:"certificate_url"`
	ReportURL      *string  `json:"report_url"`
}

func (r *InternshipRequest) ToDomain(id uuid.UUID) internship.Internship {
	return internship.Internship{
		ID:             id,
		Company:        r.Company,
		Role:           r.Role,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Location:       r.Location,
		Description:    r.Description,
		Memories:       r.Memories,
		Images:         r.Images,
		CertificateURL: r.CertificateURL,
		ReportURL:      r.ReportURL,
	}
}

// Project DTOs, shared by the finished and ongoing collections.

type ProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	Link         string   `json:"link"`
	Introduction string   `json:"introduction"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	ReportURL    *string  `json:"report_url"`
}

func (r *ProjectRequest) ToDomain(id uuid.UUID) project.Project {
	return project.Project{
		ID:           id,
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Link:         r.Link,
		Introduction: r.Introduction,
		Technologies: r.Technologies,
		Features:     r.Features,
		ReportURL:    r.ReportURL,
	}
}

// Certification DTOs

type CertificationRequest struct {
	Name     string `json:"name" binding:"required"`
	Issuer   string `json:"issuer" binding:"required"`
	Date     string `json:"date"`
	ImageURL string `json:"image_url"`
}

func (r *CertificationRequest) ToDomain(id uuid.UUID) certification.Certification {
	return certification.Certification{
		ID:       id,
		Name:     r.Name,
		Issuer:   r.Issuer,
		Date:     r.Date,
		ImageURL: r.ImageURL,
	}
}

// Contact DTOs

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type UpdateContactRequest struct {
	Read bool `json:"read"`
}

// Suggestion DTOs

type SuggestContentRequest struct {
	ContentType string `json:"content_type" binding:"required,oneof=about project"`
	Content     string `json:"content" binding:"required"`
}
