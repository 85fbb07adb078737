package employee

// EmployeeRequest is the create/update input. CreatedBy is never part of the
// request: it is forced to the caller's identity in the service.
type EmployeeRequest struct {
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Position      string   `json:"position"`
	Department    string   `json:"department"`
	Salary        *float64 `json:"salary"`
	DateOfJoining string   `json:"dateOfJoining"`
}

type EmployeeResponse struct {
	ID            string   `json:"id"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	Position      string   `json:"position"`
	Department    string   `json:"department"`
	Salary        *float64 `json:"salary,omitempty"`
	DateOfJoining string   `json:"dateOfJoining"`
	CreatedBy     string   `json:"createdBy"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}
