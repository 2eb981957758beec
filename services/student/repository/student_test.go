package repository

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studentregistry/domain"
)

func newTestRepo(t *testing.T) (domain.StudentRepo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "students.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Student{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewStudentRepository(db, log), db
}

func newStudent(phone string) *domain.Student {
	return &domain.Student{
		FirstName:      "Ana",
		LastName:       "Lee",
		PhoneNumber:    phone,
		Gender:         domain.GenderFemale,
		BirthDate:      domain.NewDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)),
		Education:      domain.EducationBachelor,
		GraduationDate: domain.NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		Address:        "1 Elm St",
	}
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newStudent("09123456789"))
	require.NoError(t, err)

	assert.Greater(t, created.ID, 0)
	assert.Equal(t, "Ana Lee", created.FullName)
	assert.False(t, created.EnrollmentDate.IsZero(), "enrollment date should default to creation time")
}

func TestCreateDuplicatePhoneLeavesNoRow(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newStudent("09123456789"))
	require.NoError(t, err)

	dup := newStudent("09123456789")
	dup.FirstName = "Ben"
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicatePhoneNumber)

	var count int64
	require.NoError(t, db.Model(&domain.Student{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetByIDAbsent(t *testing.T) {
	repo, _ := newTestRepo(t)

	student, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, student)
}

func TestCreateReadRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newStudent("09123456789"))
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Ana", found.FirstName)
	assert.Equal(t, "Lee", found.LastName)
	assert.Equal(t, "Ana Lee", found.FullName)
	assert.Equal(t, "09123456789", found.PhoneNumber)
	assert.Equal(t, domain.GenderFemale, found.Gender)
	assert.Equal(t, domain.EducationBachelor, found.Education)
	assert.Equal(t, "1 Elm St", found.Address)
	assert.Equal(t, 2000, found.BirthDate.Year())
}

func TestUpdate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newStudent("09123456789"))
	require.NoError(t, err)

	ok, err := repo.Update(ctx, created.ID, &domain.StudentUpdate{Address: "2 Oak St"})
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 Oak St", found.Address)
	assert.Equal(t, "Ana", found.FirstName, "untouched fields keep their values")
}

func TestUpdateAbsentReturnsFalse(t *testing.T) {
	repo, _ := newTestRepo(t)

	ok, err := repo.Update(context.Background(), 42, &domain.StudentUpdate{Address: "2 Oak St"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateWithNoFields(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newStudent("09123456789"))
	require.NoError(t, err)

	ok, err := repo.Update(ctx, created.ID, &domain.StudentUpdate{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateDuplicatePhone(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newStudent("09123456789"))
	require.NoError(t, err)

	second := newStudent("09111111111")
	created, err := repo.Create(ctx, second)
	require.NoError(t, err)

	_, err = repo.Update(ctx, created.ID, &domain.StudentUpdate{PhoneNumber: "09123456789"})
	assert.ErrorIs(t, err, domain.ErrDuplicatePhoneNumber)
}

func TestDelete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newStudent("09123456789"))
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	ok, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete affects no row")
}

func TestGetAll(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	students, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, *students)

	_, err = repo.Create(ctx, newStudent("09123456789"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newStudent("09111111111"))
	require.NoError(t, err)

	students, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, *students, 2)
	assert.Equal(t, "Ana Lee", (*students)[0].FullName)
}
