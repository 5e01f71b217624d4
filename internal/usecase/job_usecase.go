package usecase

import (
	"context"
	"errors"

	"local-jobs-backend/internal/domain"
	"local-jobs-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validate,
	}
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	jobs, err := u.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return jobs, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, input domain.JobInput) (*domain.Job, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("title, description, category and contact are required")
	}

	job, err := u.jobRepo.Create(ctx, input)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	job, err := u.jobRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return job, nil
}

// mapStoreError turns domain sentinels into distinguishable client-facing
// errors. Anything unrecognized stays internal and is reported generically
// by the error middleware.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Job not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return apperror.BadRequest(err.Error())
	case errors.Is(err, domain.ErrStorageWriteFailed):
		return apperror.New(500, "Could not persist job store; the operation was not committed", err)
	case errors.Is(err, domain.ErrStorageCorrupt):
		return apperror.New(500, "Job store is unavailable until repaired", err)
	default:
		return err
	}
}
