package usecase

import (
	"context"
	"time"

	"studentregistry/domain"
)

// studentUC delegates 1:1 to the repository; it is the seam for future
// business rules and only adds a per-call timeout.
type studentUC struct {
	studentRepo domain.StudentRepo
	TimeOut     time.Duration
}

func NewStudentUseCase(repo domain.StudentRepo, timeOut time.Duration) domain.StudentUseCase {
	return &studentUC{
		studentRepo: repo,
		TimeOut:     timeOut,
	}
}

func (sUC *studentUC) GetAll(ctx context.Context) (*[]domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.studentRepo.GetAll(ctx)
}

func (sUC *studentUC) GetByID(ctx context.Context, id int) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.studentRepo.GetByID(ctx, id)
}

func (sUC *studentUC) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.studentRepo.Create(ctx, student)
}

func (sUC *studentUC) Update(ctx context.Context, id int, fields *domain.StudentUpdate) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.studentRepo.Update(ctx, id, fields)
}

func (sUC *studentUC) Delete(ctx context.Context, id int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.studentRepo.Delete(ctx, id)
}
