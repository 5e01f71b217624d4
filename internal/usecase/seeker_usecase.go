package usecase

import (
	"context"

	"local-jobs-backend/internal/domain"
	"local-jobs-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type seekerUsecase struct {
	repo     domain.JobSeekerRepository
	validate *validator.Validate
}

func NewSeekerUsecase(repo domain.JobSeekerRepository, validate *validator.Validate) domain.JobSeekerUsecase {
	return &seekerUsecase{
		repo:     repo,
		validate: validate,
	}
}

// SaveProfile upserts a submitted profile into the user-saved set, keyed
// by the normalized identifier. Later submissions with the same key win
// entirely; there is no field-level merge.
func (u *seekerUsecase) SaveProfile(ctx context.Context, input domain.ProfileInput) error {
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest("Incomplete profile data (identifier or name missing)")
	}
	if domain.NormalizeIdentifier(input.Identifier) == "" {
		return apperror.BadRequest("Identifier must contain digits")
	}

	return u.repo.Upsert(ctx, domain.JobSeeker{
		Identifier: input.Identifier,
		Name:       input.Name,
		Age:        input.Age,
		JobType:    input.JobType,
		Skills:     input.Skills,
		Education:  input.Education,
		Location:   input.Location,
		Contact:    input.Contact,
		Experience: input.Experience,
		Email:      input.Email,
		Source:     domain.SourceUserSaved,
	})
}

// ListJobSeekers returns the combined view: bulk records first, then the
// per-key latest submitted records.
func (u *seekerUsecase) ListJobSeekers(ctx context.Context) ([]domain.JobSeeker, error) {
	return u.repo.Combined(ctx)
}
