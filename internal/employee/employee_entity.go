package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string    `gorm:"type:varchar(50);not null"`
	LastName      string    `gorm:"type:varchar(50);not null"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex:uq_employee_email;not null"`
	Phone         string    `gorm:"type:varchar(20)"`
	Position      string    `gorm:"type:varchar(100);not null"`
	Department    string    `gorm:"type:varchar(100);not null"`
	Salary        *float64
	DateOfJoining time.Time
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}
