/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import "github.com/adidayastudio/directory-engine/schedule"

// =============================================================================
// DIRECTORY RECORDS
// =============================================================================

// DepartmentDTO represents a department in API responses.
type DepartmentDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	ClusterCode string `json:"cluster_code"`
}

// CreateDepartmentRequest is the request to create or update a department.
type CreateDepartmentRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	ClusterCode string `json:"cluster_code"`
}

type PositionDTO struct {
	ID           string `json:"id"`
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	CategoryCode string `json:"category_code"`
}

type CreatePositionRequest struct {
	ID           string `json:"id,omitempty"`
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	CategoryCode string `json:"category_code"`
}

type LevelDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LevelCode int    `json:"level_code"`
	RomanCode string `json:"roman_code"`
}

type CreateLevelRequest struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	LevelCode int    `json:"level_code"`
	RomanCode string `json:"roman_code"`
}

type EmploymentTypeDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MinLevelCode int    `json:"min_level_code"`
	MaxLevelCode int    `json:"max_level_code"`
}

type CreateEmploymentTypeRequest struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	MinLevelCode int    `json:"min_level_code"`
	MaxLevelCode int    `json:"max_level_code"`
}

// =============================================================================
// WORK SCHEDULES
// =============================================================================

// WorkScheduleDTO represents a schedule configuration. Days reuses the
// schedule package's JSON form directly - it is already the stored
// config shape.
type WorkScheduleDTO struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Type         string              `json:"type"`
	StartTime    string              `json:"start_time,omitempty"`
	EndTime      string              `json:"end_time,omitempty"`
	BreakMinutes *int                `json:"break_minutes,omitempty"`
	Days         schedule.DaysConfig `json:"days_config"`
}

type CreateWorkScheduleRequest struct {
	ID           string              `json:"id,omitempty"`
	Name         string              `json:"name"`
	Type         string              `json:"type"`
	StartTime    string              `json:"start_time,omitempty"`
	EndTime      string              `json:"end_time,omitempty"`
	BreakMinutes *int                `json:"break_minutes,omitempty"`
	Days         schedule.DaysConfig `json:"days_config"`
}

// DayGroupDTO is one merged display row of the weekly summary.
type DayGroupDTO struct {
	TimeRange string   `json:"time_range"`
	Label     string   `json:"label"`
	Days      []string `json:"days"`
}

// ScheduleSummaryDTO is the derived weekly view for display.
type ScheduleSummaryDTO struct {
	ScheduleID       string        `json:"schedule_id,omitempty"`
	TotalWeeklyHours float64       `json:"total_weekly_hours"`
	DayGroups        []DayGroupDTO `json:"day_groups"`
	Note             string        `json:"note,omitempty"`
}

// =============================================================================
// IDENTIFIER PREVIEW
// =============================================================================

// PreviewIdentifiersRequest carries the form's current selections. Any
// id may be empty or unknown; derivation degrades instead of failing.
type PreviewIdentifiersRequest struct {
	DepartmentID     string `json:"department_id"`
	PositionID       string `json:"position_id"`
	LevelID          string `json:"level_id"`
	EmploymentTypeID string `json:"employment_type_id,omitempty"`
	JoinDate         string `json:"join_date,omitempty"`
	Sequence         string `json:"sequence"`
}

// PreviewIdentifiersResponse returns the derived pair plus the two
// caller-side validation verdicts the form surfaces.
type PreviewIdentifiersResponse struct {
	IDNumber      string `json:"id_number"`
	IDCode        string `json:"id_code"`
	SequenceTaken bool   `json:"sequence_taken"`
	LevelValid    bool   `json:"level_valid"`
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// EmployeeDTO represents a stored profile, including the identifiers
// persisted at save time.
type EmployeeDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	DepartmentID     string `json:"department_id,omitempty"`
	PositionID       string `json:"position_id,omitempty"`
	LevelID          string `json:"level_id,omitempty"`
	EmploymentTypeID string `json:"employment_type_id,omitempty"`
	WorkScheduleID   string `json:"work_schedule_id,omitempty"`
	JoinDate         string `json:"join_date,omitempty"`
	Sequence         string `json:"sequence"`
	IDNumber         string `json:"id_number"`
	IDCode           string `json:"id_code"`
	Active           bool   `json:"active"`
	CreatedAt        string `json:"created_at,omitempty"`
}

// CreateEmployeeRequest is the explicit save: the server re-derives the
// identifiers from the referenced records and persists the result.
type CreateEmployeeRequest struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	DepartmentID     string `json:"department_id,omitempty"`
	PositionID       string `json:"position_id,omitempty"`
	LevelID          string `json:"level_id,omitempty"`
	EmploymentTypeID string `json:"employment_type_id,omitempty"`
	WorkScheduleID   string `json:"work_schedule_id,omitempty"`
	JoinDate         string `json:"join_date,omitempty"`
	Sequence         string `json:"sequence"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
