package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"studentregistry/domain"
)

type studentRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewStudentRepository(database *gorm.DB, log *logrus.Logger) domain.StudentRepo {
	return &studentRepository{
		db:  database,
		log: log,
	}
}

func (sr *studentRepository) GetAll(ctx context.Context) (*[]domain.Student, error) {
	var students []domain.Student

	err := sr.db.WithContext(ctx).Find(&students).Error
	if err != nil {
		sr.log.WithFields(logrus.Fields{"op": "get_all", "error": err.Error()}).Error("Failed to retrieve students")
		return nil, domain.ErrRetrievalFailed
	}

	sr.log.WithFields(logrus.Fields{"op": "get_all", "count": len(students)}).Info("Retrieved students")
	return &students, nil
}

func (sr *studentRepository) GetByID(ctx context.Context, id int) (*domain.Student, error) {
	var student domain.Student

	err := sr.db.WithContext(ctx).First(&student, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sr.log.WithFields(logrus.Fields{"op": "get_one", "id": id}).Info("No student found")
		return nil, nil
	}
	if err != nil {
		sr.log.WithFields(logrus.Fields{"op": "get_one", "id": id, "error": err.Error()}).Error("Failed to retrieve student")
		return nil, domain.ErrRetrievalFailed
	}

	sr.log.WithFields(logrus.Fields{"op": "get_one", "id": id}).Info("Retrieved student")
	return &student, nil
}

func (sr *studentRepository) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	if student.EnrollmentDate.IsZero() {
		student.EnrollmentDate = domain.NewDate(time.Now())
	}

	tx := sr.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		sr.log.WithFields(logrus.Fields{"op": "create", "error": tx.Error.Error()}).Error("Failed to begin transaction")
		return nil, domain.ErrCreationFailed
	}

	if err := tx.Create(student).Error; err != nil {
		tx.Rollback()
		sr.log.WithFields(logrus.Fields{"op": "create", "error": err.Error()}).Error("Failed to create student")
		if isDuplicateKey(err) {
			return nil, domain.ErrDuplicatePhoneNumber
		}
		return nil, domain.ErrCreationFailed
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		sr.log.WithFields(logrus.Fields{"op": "create", "error": err.Error()}).Error("Failed to commit student creation")
		return nil, domain.ErrCreationFailed
	}

	student.FullName = student.FirstName + " " + student.LastName
	sr.log.WithFields(logrus.Fields{"op": "create", "id": student.ID}).Info("Created student")
	return student, nil
}

func (sr *studentRepository) Update(ctx context.Context, id int, fields *domain.StudentUpdate) (bool, error) {
	changes := fields.Changes()
	if len(changes) == 0 {
		sr.log.WithFields(logrus.Fields{"op": "update", "id": id}).Info("No fields to update")
		return false, nil
	}

	tx := sr.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		sr.log.WithFields(logrus.Fields{"op": "update", "id": id, "error": tx.Error.Error()}).Error("Failed to begin transaction")
		return false, domain.ErrUpdateFailed
	}

	res := tx.Model(&domain.Student{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		tx.Rollback()
		sr.log.WithFields(logrus.Fields{"op": "update", "id": id, "error": res.Error.Error()}).Error("Failed to update student")
		if isDuplicateKey(res.Error) {
			return false, domain.ErrDuplicatePhoneNumber
		}
		return false, domain.ErrUpdateFailed
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		sr.log.WithFields(logrus.Fields{"op": "update", "id": id, "error": err.Error()}).Error("Failed to commit student update")
		return false, domain.ErrUpdateFailed
	}

	sr.log.WithFields(logrus.Fields{"op": "update", "id": id, "rows": res.RowsAffected}).Info("Updated student")
	return res.RowsAffected > 0, nil
}

func (sr *studentRepository) Delete(ctx context.Context, id int) (bool, error) {
	tx := sr.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		sr.log.WithFields(logrus.Fields{"op": "delete", "id": id, "error": tx.Error.Error()}).Error("Failed to begin transaction")
		return false, domain.ErrDeletionFailed
	}

	res := tx.Where("id = ?", id).Delete(&domain.Student{})
	if res.Error != nil {
		tx.Rollback()
		sr.log.WithFields(logrus.Fields{"op": "delete", "id": id, "error": res.Error.Error()}).Error("Failed to delete student")
		return false, domain.ErrDeletionFailed
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		sr.log.WithFields(logrus.Fields{"op": "delete", "id": id, "error": err.Error()}).Error("Failed to commit student deletion")
		return false, domain.ErrDeletionFailed
	}

	sr.log.WithFields(logrus.Fields{"op": "delete", "id": id, "rows": res.RowsAffected}).Info("Deleted student")
	return res.RowsAffected > 0, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
