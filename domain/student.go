package domain

import (
	"context"

	"github.com/asaskevich/govalidator"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
)

type Education string

const (
	EducationDiploma   Education = "DIPLOMA"
	EducationBachelor  Education = "BACHELOR"
	EducationMaster    Education = "MASTER"
	EducationDoctorate Education = "DOCTORATE"
)

type Student struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string    `gorm:"type:varchar(50);not null" json:"first_name" valid:"required~First name is required,maxstringlength(50)~First name is too long"`
	LastName       string    `gorm:"type:varchar(50);not null" json:"last_name" valid:"required~Last name is required,maxstringlength(50)~Last name is too long"`
	PhoneNumber    string    `gorm:"type:varchar(15);not null;uniqueIndex" json:"phone_number" valid:"required~Phone number is required"`
	Gender         Gender    `gorm:"type:varchar(6);not null" json:"gender" valid:"required~Gender is required,in(FEMALE|MALE)~Invalid gender"`
	BirthDate      Date      `json:"birth_date" valid:"-"`
	Education      Education `gorm:"type:varchar(10);not null" json:"education" valid:"required~Education is required,in(DIPLOMA|BACHELOR|MASTER|DOCTORATE)~Invalid education"`
	EnrollmentDate Date      `json:"enrollment_date" valid:"-"`
	GraduationDate Date      `json:"graduation_date" valid:"-"`
	Address        string    `gorm:"type:varchar(255)" json:"address" valid:"maxstringlength(255)~Address is too long"`
	FullName       string    `gorm:"-" json:"full_name"`
}

func (Student) TableName() string {
	return "students"
}

// AfterFind derives the full name on every read. It is never persisted.
func (s *Student) AfterFind(tx *gorm.DB) error {
	s.FullName = s.FirstName + " " + s.LastName
	return nil
}

// Validate is the single well-formedness check for incoming student data.
// Both the create and update paths go through it before the store is touched.
func (s *Student) Validate() error {
	if _, err := govalidator.ValidateStruct(s); err != nil {
		return err
	}
	return ValidatePhoneNumber(s.PhoneNumber)
}

// StudentUpdate carries the updatable fields of a student. Zero-valued
// fields are left out of the UPDATE statement, so partial payloads only
// replace what they name.
type StudentUpdate struct {
	FirstName      string    `json:"first_name" valid:"maxstringlength(50)~First name is too long,optional"`
	LastName       string    `json:"last_name" valid:"maxstringlength(50)~Last name is too long,optional"`
	PhoneNumber    string    `json:"phone_number" valid:"optional"`
	Gender         Gender    `json:"gender" valid:"in(FEMALE|MALE)~Invalid gender,optional"`
	BirthDate      Date      `json:"birth_date" valid:"-"`
	Education      Education `json:"education" valid:"in(DIPLOMA|BACHELOR|MASTER|DOCTORATE)~Invalid education,optional"`
	EnrollmentDate Date      `json:"enrollment_date" valid:"-"`
	GraduationDate Date      `json:"graduation_date" valid:"-"`
	Address        string    `json:"address" valid:"maxstringlength(255)~Address is too long,optional"`
}

func (u *StudentUpdate) Validate() error {
	if _, err := govalidator.ValidateStruct(u); err != nil {
		return err
	}
	if u.PhoneNumber != "" {
		return ValidatePhoneNumber(u.PhoneNumber)
	}
	return nil
}

// Changes returns the set fields keyed by column name, ready for a targeted
// UPDATE. An empty map means the payload named nothing to change.
func (u *StudentUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if u.FirstName != "" {
		changes["first_name"] = u.FirstName
	}
	if u.LastName != "" {
		changes["last_name"] = u.LastName
	}
	if u.PhoneNumber != "" {
		changes["phone_number"] = u.PhoneNumber
	}
	if u.Gender != "" {
		changes["gender"] = u.Gender
	}
	if !u.BirthDate.IsZero() {
		changes["birth_date"] = u.BirthDate
	}
	if u.Education != "" {
		changes["education"] = u.Education
	}
	if !u.EnrollmentDate.IsZero() {
		changes["enrollment_date"] = u.EnrollmentDate
	}
	if !u.GraduationDate.IsZero() {
		changes["graduation_date"] = u.GraduationDate
	}
	if u.Address != "" {
		changes["address"] = u.Address
	}
	return changes
}

// MutationResult reports whether an update or delete affected a row.
type MutationResult struct {
	Result bool `json:"result"`
}

type StudentRepo interface {
	GetAll(ctx context.Context) (*[]Student, error)
	GetByID(ctx context.Context, id int) (*Student, error)
	Create(ctx context.Context, student *Student) (*Student, error)
	Update(ctx context.Context, id int, fields *StudentUpdate) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type StudentUseCase interface {
	GetAll(ctx context.Context) (*[]Student, error)
	GetByID(ctx context.Context, id int) (*Student, error)
	Create(ctx context.Context, student *Student) (*Student, error)
	Update(ctx context.Context, id int, fields *StudentUpdate) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}
