package employee

type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Email       string `json:"email" binding:"required,email"`
	Address     string `json:"address" binding:"required"`
}

// UpdateEmployeeRequest is a partial update; omitted fields keep their value.
type UpdateEmployeeRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	DateOfBirth *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Address     *string `json:"address" binding:"omitempty,min=1"`
}

type ListEmployeesQuery struct {
	SortBy   string `form:"sort_by"`
	SortDir  string `form:"sort_dir"`
	Q        string `form:"q"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type EmployeeResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	DateOfBirth        string `json:"dateOfBirth"`
	DateOfBirthDisplay string `json:"dateOfBirthDisplay"`
	Gender             string `json:"gender"`
	Email              string `json:"email"`
	Address            string `json:"address"`
}

type EmployeeOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r CreateEmployeeRequest) toFields() Fields {
	gender := Gender(r.Gender)
	if gender == "" {
		gender = GenderMale
	}
	return Fields{
		Name:        r.Name,
		DateOfBirth: r.DateOfBirth,
		Gender:      gender,
		Email:       r.Email,
		Address:     r.Address,
	}
}

func (r UpdateEmployeeRequest) toPatch() Patch {
	p := Patch{
		Name:        r.Name,
		DateOfBirth: r.DateOfBirth,
		Email:       r.Email,
		Address:     r.Address,
	}
	if r.Gender != nil {
		g := Gender(*r.Gender)
		p.Gender = &g
	}
	return p
}
