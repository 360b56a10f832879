package models

import "time"

// Role is a user's access role
type Role string

const (
	RolePatient Role = "patient"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// UserStatus is a user's account status
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents a user in the directory
type User struct {
	ID        string     `json:"id" bson:"_id"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email" bson:"email"`
	Role      Role       `json:"role" bson:"role"`
	Status    UserStatus `json:"status" bson:"status"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
}

// UserFilter narrows a directory listing. Empty fields match everything and
// a zero Limit means no limit.
type UserFilter struct {
	Status UserStatus
	Role   Role
	Limit  int
}

// ReportFilters are the optional query parameters shared by every report.
// Months is a pointer so an explicit value can be told apart from the default.
type ReportFilters struct {
	StartDate       string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate         string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Months          *int   `form:"months" binding:"omitempty,min=1,max=12"`
	IncludeInactive bool   `form:"includeInactive"`
}

// DateRange is a resolved, inclusive report window
type DateRange struct {
	Start       time.Time
	End         time.Time
	MonthsRange int
}

// RangeInfo is the wire form of a DateRange
type RangeInfo struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	MonthsRange int    `json:"months_range"`
}
