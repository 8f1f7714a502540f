package employee

import "strings"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Employee is one directory record. ID is assigned by the Store and never
// changes afterwards.
type Employee struct {
	ID          string
	Name        string
	DateOfBirth string // YYYY-MM-DD
	Gender      Gender
	Email       string
	Address     string
}

// Fields holds every mutable attribute of an Employee.
type Fields struct {
	Name        string
	DateOfBirth string
	Gender      Gender
	Email       string
	Address     string
}

func (f Fields) withID(id string) Employee {
	return Employee{
		ID:          id,
		Name:        f.Name,
		DateOfBirth: f.DateOfBirth,
		Gender:      f.Gender,
		Email:       f.Email,
		Address:     f.Address,
	}
}

// Patch is a partial update: nil fields keep their current value.
type Patch struct {
	Name        *string
	DateOfBirth *string
	Gender      *Gender
	Email       *string
	Address     *string
}

// PatchFromFields builds a Patch that overwrites every mutable field.
func PatchFromFields(f Fields) Patch {
	return Patch{
		Name:        &f.Name,
		DateOfBirth: &f.DateOfBirth,
		Gender:      &f.Gender,
		Email:       &f.Email,
		Address:     &f.Address,
	}
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.DateOfBirth == nil && p.Gender == nil && p.Email == nil && p.Address == nil
}

func (p Patch) apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.DateOfBirth != nil {
		e.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Address != nil {
		e.Address = *p.Address
	}
	return e
}

// FormatDateOfBirth renders YYYY-MM-DD as DD/MM/YYYY. Values that are not
// three dash separated parts are returned unchanged.
func FormatDateOfBirth(date string) string {
	if date == "" {
		return ""
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
