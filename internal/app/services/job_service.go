package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/repositories"
)

// JobService handles job and internship postings
type JobService struct {
	jobRepo repositories.JobRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repositories.JobRepository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// Create inserts a new posting stamped with the caller as poster
func (s *JobService) Create(ctx context.Context, posterID primitive.ObjectID, req *dto.CreateJobRequest) (*models.Job, error) {
	jobType := models.JobType(req.Type)
	if jobType == "" {
		jobType = models.JobTypeJob
	}

	job := &models.Job{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Poster:          posterID,
		Type:            jobType,
		ApplicationLink: req.ApplicationLink,
		ContactEmail:    req.ContactEmail,
		CreatedAt:       time.Now(),
	}

	id, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	job.ID = id
	return job, nil
}

// List returns all postings, newest first, with the poster populated
func (s *JobService) List(ctx context.Context) ([]*models.Job, error) {
	return s.jobRepo.ListAll(ctx)
}
