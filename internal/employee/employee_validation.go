package employee

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go-ems/internal/shared/apperror"
)

// Employee input rules, checked in a fixed order: the first violated rule is
// the only one reported. Callers depend on that precedence (an empty first
// name must win over a bad email), so do not reorder or aggregate.

const (
	maxNameLen     = 50
	maxPhoneLen    = 20
	maxPositionLen = 100
	maxDeptLen     = 100
	maxSalary      = 10_000_000

	dateLayout = "2006-01-02"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Validate applies the ordered rules and returns a ValidationFailed error
// for the first violation, or nil.
func (r EmployeeRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return apperror.ValidationFailed("First name is required")
	}
	if utf8.RuneCountInString(r.FirstName) > maxNameLen {
		return apperror.ValidationFailed("First name must be less than 50 characters")
	}

	if strings.TrimSpace(r.LastName) == "" {
		return apperror.ValidationFailed("Last name is required")
	}
	if utf8.RuneCountInString(r.LastName) > maxNameLen {
		return apperror.ValidationFailed("Last name must be less than 50 characters")
	}

	if !emailPattern.MatchString(r.Email) {
		return apperror.ValidationFailed("Please provide a valid email address")
	}

	if r.Phone != "" && utf8.RuneCountInString(r.Phone) > maxPhoneLen {
		return apperror.ValidationFailed("Phone number is too long")
	}

	if strings.TrimSpace(r.Position) == "" {
		return apperror.ValidationFailed("Position is required")
	}
	if utf8.RuneCountInString(r.Position) > maxPositionLen {
		return apperror.ValidationFailed("Position must be less than 100 characters")
	}

	if strings.TrimSpace(r.Department) == "" {
		return apperror.ValidationFailed("Department is required")
	}
	if utf8.RuneCountInString(r.Department) > maxDeptLen {
		return apperror.ValidationFailed("Department must be less than 100 characters")
	}

	if r.Salary != nil {
		if *r.Salary < 0 {
			return apperror.ValidationFailed("Salary must be a valid positive number")
		}
		if *r.Salary > maxSalary {
			return apperror.ValidationFailed("Salary cannot exceed $10,000,000")
		}
	}

	if r.DateOfJoining != "" {
		joined, err := time.Parse(dateLayout, r.DateOfJoining)
		if err != nil {
			return apperror.ValidationFailed("Invalid date of joining, expected YYYY-MM-DD")
		}
		// Date-only comparison: anything up to and including today passes.
		y, m, d := time.Now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if joined.After(today) {
			return apperror.ValidationFailed("Date of joining cannot be in the future")
		}
	}

	return nil
}

// dateOfJoining resolves the request's joining date, defaulting to now.
// Validate must have passed already.
func (r EmployeeRequest) dateOfJoining(now time.Time) time.Time {
	if r.DateOfJoining == "" {
		return now
	}
	joined, err := time.Parse(dateLayout, r.DateOfJoining)
	if err != nil {
		return now
	}
	return joined
}
