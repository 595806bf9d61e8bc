/*
handlers.go - HTTP API handlers for the directory service

PURPOSE:
  Exposes the directory and the derivation engines via REST API. Handles
  HTTP request/response, JSON serialization, and delegates to domain
  logic.

ENDPOINTS:
  Directory:
    GET/POST       /api/departments            List / create
    GET/DELETE     /api/departments/{id}       Get / delete
    GET            /api/departments/{id}/positions
    GET/POST       /api/positions              (same shape for levels,
    GET/POST       /api/levels                  employment types, and
    GET/POST       /api/employment-types        work schedules)
    GET/POST       /api/schedules
    GET            /api/schedules/{id}/summary Weekly-hours summary

  Derivation:
    POST   /api/identifiers/preview  Derive idNumber/idCode from the
                                     form's current selections

  Employees:
    GET    /api/employees            List profiles
    POST   /api/employees            Save a profile (derives + persists)
    GET    /api/employees/{id}
    DELETE /api/employees/{id}

  Admin:
    POST   /api/seed                 Load the demo directory
    POST   /api/reset                Clear all data (dev only)

RECOMPUTATION:
  Preview and summary endpoints build a fresh snapshot from the store on
  every call and re-derive from scratch. Nothing derived is cached; the
  only persisted identifiers are the ones an explicit employee save
  wrote, verbatim.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid input
  - 404: Record not found
  - 409: Sequence already taken
  - 422: Level outside the employment type's band
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - seed.go: Demo directory loader
*/
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adidayastudio/directory-engine/directory"
	"github.com/adidayastudio/directory-engine/identity"
	"github.com/adidayastudio/directory-engine/schedule"
	"github.com/adidayastudio/directory-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store     *sqlite.Store
	Generator *identity.Generator
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:     store,
		Generator: identity.NewGenerator(),
	}
}

// =============================================================================
// DEPARTMENT HANDLERS
// =============================================================================

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Store.ListDepartments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list departments", err)
		return
	}

	dtos := make([]DepartmentDTO, len(departments))
	for i, d := range departments {
		dtos[i] = DepartmentDTO{ID: d.ID, Name: d.Name, Code: d.Code, ClusterCode: d.ClusterCode}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required", nil)
		return
	}

	dept := identity.Department{
		ID:          orNewID(req.ID, "dept"),
		Name:        req.Name,
		Code:        req.Code,
		ClusterCode: req.ClusterCode,
	}
	if err := h.Store.SaveDepartment(r.Context(), dept); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save department", err)
		return
	}
	writeJSON(w, http.StatusCreated, DepartmentDTO{
		ID: dept.ID, Name: dept.Name, Code: dept.Code, ClusterCode: dept.ClusterCode,
	})
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	dept, err := h.Store.GetDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get department", err)
		return
	}
	if dept == nil {
		writeError(w, http.StatusNotFound, "Department not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, DepartmentDTO{
		ID: dept.ID, Name: dept.Name, Code: dept.Code, ClusterCode: dept.ClusterCode,
	})
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete department", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// ListDepartmentPositions returns the positions belonging to one
// department, for the cascading position picker.
func (h *Handler) ListDepartmentPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Store.ListPositionsByDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list positions", err)
		return
	}
	writeJSON(w, http.StatusOK, toPositionDTOs(positions))
}

// =============================================================================
// POSITION HANDLERS
// =============================================================================

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Store.ListPositions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list positions", err)
		return
	}
	writeJSON(w, http.StatusOK, toPositionDTOs(positions))
}

func (h *Handler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" || req.DepartmentID == "" {
		writeError(w, http.StatusBadRequest, "Name and department_id are required", nil)
		return
	}

	// A position belongs to exactly one department; reject dangling refs
	// here so the invariant holds at the edge.
	dept, err := h.Store.GetDepartment(r.Context(), req.DepartmentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to resolve department", err)
		return
	}
	if dept == nil {
		writeError(w, http.StatusUnprocessableEntity, "Unknown department", nil)
		return
	}

	pos := identity.Position{
		ID:           orNewID(req.ID, "pos"),
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Code:         req.Code,
		CategoryCode: req.CategoryCode,
	}
	if err := h.Store.SavePosition(r.Context(), pos); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save position", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPositionDTO(pos))
}

func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	pos, err := h.Store.GetPosition(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get position", err)
		return
	}
	if pos == nil {
		writeError(w, http.StatusNotFound, "Position not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toPositionDTO(*pos))
}

func (h *Handler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeletePosition(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete position", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// =============================================================================
// LEVEL HANDLERS
// =============================================================================

func (h *Handler) ListLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.Store.ListLevels(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list levels", err)
		return
	}
	dtos := make([]LevelDTO, len(levels))
	for i, l := range levels {
		dtos[i] = LevelDTO{ID: l.ID, Name: l.Name, LevelCode: l.LevelCode, RomanCode: l.RomanCode}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateLevel(w http.ResponseWriter, r *http.Request) {
	var req CreateLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required", nil)
		return
	}

	lvl := identity.Level{
		ID:        orNewID(req.ID, "lvl"),
		Name:      req.Name,
		LevelCode: req.LevelCode,
		RomanCode: req.RomanCode,
	}
	if err := h.Store.SaveLevel(r.Context(), lvl); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save level", err)
		return
	}
	writeJSON(w, http.StatusCreated, LevelDTO{
		ID: lvl.ID, Name: lvl.Name, LevelCode: lvl.LevelCode, RomanCode: lvl.RomanCode,
	})
}

func (h *Handler) DeleteLevel(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteLevel(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete level", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// =============================================================================
// EMPLOYMENT TYPE HANDLERS
// =============================================================================

func (h *Handler) ListEmploymentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Store.ListEmploymentTypes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employment types", err)
		return
	}
	dtos := make([]EmploymentTypeDTO, len(types))
	for i, et := range types {
		dtos[i] = EmploymentTypeDTO{
			ID: et.ID, Name: et.Name,
			MinLevelCode: et.MinLevelCode, MaxLevelCode: et.MaxLevelCode,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateEmploymentType(w http.ResponseWriter, r *http.Request) {
	var req CreateEmploymentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required", nil)
		return
	}
	if req.MaxLevelCode < req.MinLevelCode {
		writeError(w, http.StatusBadRequest, "max_level_code must be >= min_level_code", nil)
		return
	}

	et := directory.EmploymentType{
		ID:           orNewID(req.ID, "et"),
		Name:         req.Name,
		MinLevelCode: req.MinLevelCode,
		MaxLevelCode: req.MaxLevelCode,
	}
	if err := h.Store.SaveEmploymentType(r.Context(), et); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save employment type", err)
		return
	}
	writeJSON(w, http.StatusCreated, EmploymentTypeDTO{
		ID: et.ID, Name: et.Name,
		MinLevelCode: et.MinLevelCode, MaxLevelCode: et.MaxLevelCode,
	})
}

func (h *Handler) DeleteEmploymentType(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteEmploymentType(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete employment type", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// =============================================================================
// WORK SCHEDULE HANDLERS
// =============================================================================

func (h *Handler) ListWorkSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.Store.ListWorkSchedules(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list schedules", err)
		return
	}
	dtos := make([]WorkScheduleDTO, len(schedules))
	for i, ws := range schedules {
		dtos[i] = toWorkScheduleDTO(ws)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateWorkSchedule(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required", nil)
		return
	}
	switch schedule.Type(req.Type) {
	case schedule.TypeFixed, schedule.TypeFlexible, schedule.TypeShift:
	default:
		writeError(w, http.StatusBadRequest, "Type must be Fixed, Flexible, or Shift", nil)
		return
	}

	ws := schedule.WorkSchedule{
		ID:           orNewID(req.ID, "sched"),
		Name:         req.Name,
		Type:         schedule.Type(req.Type),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		Days:         req.Days,
	}
	if err := h.Store.SaveWorkSchedule(r.Context(), ws); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkScheduleDTO(ws))
}

func (h *Handler) GetWorkSchedule(w http.ResponseWriter, r *http.Request) {
	ws, err := h.Store.GetWorkSchedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get schedule", err)
		return
	}
	if ws == nil {
		writeError(w, http.StatusNotFound, "Schedule not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toWorkScheduleDTO(*ws))
}

func (h *Handler) DeleteWorkSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteWorkSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// GetScheduleSummary derives the weekly-hours view for one schedule.
// Recomputed on every call.
func (h *Handler) GetScheduleSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ws, err := h.Store.GetWorkSchedule(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get schedule", err)
		return
	}
	if ws == nil {
		writeError(w, http.StatusNotFound, "Schedule not found", nil)
		return
	}

	summary := schedule.Summarize(*ws)
	writeJSON(w, http.StatusOK, toSummaryDTO(id, summary))
}

// =============================================================================
// IDENTIFIER PREVIEW
// =============================================================================

// PreviewIdentifiers derives idNumber/idCode from the form's current
// selections. Unresolved ids degrade to the engine's fallback tokens;
// the response also carries the caller-side verdicts (sequence taken,
// level within the employment type's band) so the form can warn without
// blocking the preview.
func (h *Handler) PreviewIdentifiers(w http.ResponseWriter, r *http.Request) {
	var req PreviewIdentifiersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	snap, err := h.Store.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load directory", err)
		return
	}

	var joinDate time.Time
	if req.JoinDate != "" {
		joinDate, err = time.Parse("2006-01-02", req.JoinDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid join_date format (use YYYY-MM-DD)", err)
			return
		}
	}

	level := snap.Level(req.LevelID)
	ids := h.Generator.Generate(identity.Input{
		Department: snap.Department(req.DepartmentID),
		Position:   snap.Position(req.PositionID),
		Level:      level,
		JoinDate:   joinDate,
		Sequence:   req.Sequence,
	})

	taken, err := h.Store.TakenSequences(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check sequences", err)
		return
	}
	registry := directory.NewSequenceRegistry(taken)

	levelValid := true
	if et := snap.EmploymentType(req.EmploymentTypeID); et != nil && level != nil {
		levelValid = directory.LevelWithinType(*level, *et)
	}

	writeJSON(w, http.StatusOK, PreviewIdentifiersResponse{
		IDNumber:      ids.IDNumber,
		IDCode:        ids.IDCode,
		SequenceTaken: registry.Taken(req.Sequence),
		LevelValid:    levelValid,
	})
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}
	dtos := make([]EmployeeDTO, len(employees))
	for i, emp := range employees {
		dtos[i] = toEmployeeDTO(emp)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// CreateEmployee is the explicit save: the caller-side validations run
// first (sequence free, level within the employment type's band), then
// the identifiers are derived one last time and persisted verbatim.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" || req.Sequence == "" {
		writeError(w, http.StatusBadRequest, "Name and sequence are required", nil)
		return
	}

	var joinDate time.Time
	if req.JoinDate != "" {
		var err error
		joinDate, err = time.Parse("2006-01-02", req.JoinDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid join_date format (use YYYY-MM-DD)", err)
			return
		}
	}

	snap, err := h.Store.Snapshot(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load directory", err)
		return
	}

	taken, err := h.Store.TakenSequences(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check sequences", err)
		return
	}
	if directory.NewSequenceRegistry(taken).Taken(req.Sequence) {
		writeError(w, http.StatusConflict, "Sequence already taken", directory.ErrSequenceTaken)
		return
	}

	level := snap.Level(req.LevelID)
	if et := snap.EmploymentType(req.EmploymentTypeID); et != nil && level != nil {
		if !directory.LevelWithinType(*level, *et) {
			writeError(w, http.StatusUnprocessableEntity,
				"Level outside employment type range", directory.ErrLevelOutOfRange)
			return
		}
	}

	ids := h.Generator.Generate(identity.Input{
		Department: snap.Department(req.DepartmentID),
		Position:   snap.Position(req.PositionID),
		Level:      level,
		JoinDate:   joinDate,
		Sequence:   req.Sequence,
	})

	emp := sqlite.Employee{
		ID:               orNewID(req.ID, "emp"),
		Name:             req.Name,
		Email:            req.Email,
		DepartmentID:     req.DepartmentID,
		PositionID:       req.PositionID,
		LevelID:          req.LevelID,
		EmploymentTypeID: req.EmploymentTypeID,
		WorkScheduleID:   req.WorkScheduleID,
		JoinDate:         joinDate,
		Sequence:         identity.PadSequence(req.Sequence),
		IDNumber:         ids.IDNumber,
		IDCode:           ids.IDCode,
		Active:           true,
	}
	if err := h.Store.SaveEmployee(ctx, emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete employee", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// =============================================================================
// ADMIN
// =============================================================================

// ResetDatabase clears all data. Dev/demo only.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "reset"})
}

// =============================================================================
// DTO CONVERSION / RESPONSE HELPERS
// =============================================================================

func toPositionDTO(p identity.Position) PositionDTO {
	return PositionDTO{
		ID: p.ID, DepartmentID: p.DepartmentID,
		Name: p.Name, Code: p.Code, CategoryCode: p.CategoryCode,
	}
}

func toPositionDTOs(positions []identity.Position) []PositionDTO {
	dtos := make([]PositionDTO, len(positions))
	for i, p := range positions {
		dtos[i] = toPositionDTO(p)
	}
	return dtos
}

func toWorkScheduleDTO(ws schedule.WorkSchedule) WorkScheduleDTO {
	return WorkScheduleDTO{
		ID:           ws.ID,
		Name:         ws.Name,
		Type:         string(ws.Type),
		StartTime:    ws.StartTime,
		EndTime:      ws.EndTime,
		BreakMinutes: ws.BreakMinutes,
		Days:         ws.Days,
	}
}

func toSummaryDTO(scheduleID string, s schedule.Summary) ScheduleSummaryDTO {
	groups := make([]DayGroupDTO, len(s.DayGroups))
	for i, g := range s.DayGroups {
		groups[i] = DayGroupDTO{TimeRange: g.TimeRange, Label: g.Label, Days: g.Days}
	}
	return ScheduleSummaryDTO{
		ScheduleID:       scheduleID,
		TotalWeeklyHours: s.TotalWeeklyHours,
		DayGroups:        groups,
		Note:             s.Note,
	}
}

func toEmployeeDTO(emp sqlite.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:               emp.ID,
		Name:             emp.Name,
		Email:            emp.Email,
		DepartmentID:     emp.DepartmentID,
		PositionID:       emp.PositionID,
		LevelID:          emp.LevelID,
		EmploymentTypeID: emp.EmploymentTypeID,
		WorkScheduleID:   emp.WorkScheduleID,
		Sequence:         emp.Sequence,
		IDNumber:         emp.IDNumber,
		IDCode:           emp.IDCode,
		Active:           emp.Active,
	}
	if !emp.JoinDate.IsZero() {
		dto.JoinDate = emp.JoinDate.Format("2006-01-02")
	}
	if !emp.CreatedAt.IsZero() {
		dto.CreatedAt = emp.CreatedAt.Format(time.RFC3339)
	}
	return dto
}

// orNewID keeps a client-supplied id or mints a prefixed one.
func orNewID(id, prefix string) string {
	if id != "" {
		return id
	}
	return prefix + "-" + uuid.NewString()
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
