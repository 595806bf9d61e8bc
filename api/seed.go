/*
seed.go - Demo directory loader for testing and demonstrations

PURPOSE:
  Populates the database with a small, realistic directory so the
  console has something to show on first run: two departments with
  positions, a level ladder, employment-type bands, three schedule
  shapes, and a pair of employees with derived identifiers.

HOW THE SEED WORKS:
 1. Reset database (clear all data)
 2. Create departments, positions, levels, employment types, schedules
 3. Create employees - identifiers are derived through the same path an
    operator save takes, not hand-written

USAGE VIA API:
  POST /api/seed

NOTE:
  The seed resets the database. Only use in development/demo
  environments.

SEE ALSO:
  - handlers.go: CreateEmployee (the derivation path the seed reuses)
*/
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/adidayastudio/directory-engine/directory"
	"github.com/adidayastudio/directory-engine/identity"
	"github.com/adidayastudio/directory-engine/schedule"
	"github.com/adidayastudio/directory-engine/store/sqlite"
)

// LoadSeed resets the database and loads the demo directory.
// POST /api/seed
func (h *Handler) LoadSeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	if err := h.loadSeedData(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load seed data", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"status": "seeded"})
}

func (h *Handler) loadSeedData(ctx context.Context) error {
	departments := []identity.Department{
		{ID: "dept-ar", Name: "Architecture", Code: "ADY-AR-CORE", ClusterCode: "1"},
		{ID: "dept-dsn", Name: "Design Studio", Code: "ADY-DSN-STUDIO", ClusterCode: "2"},
	}
	for _, d := range departments {
		if err := h.Store.SaveDepartment(ctx, d); err != nil {
			return err
		}
	}

	positions := []identity.Position{
		{ID: "pos-arch", DepartmentID: "dept-ar", Name: "Architect", Code: "AR", CategoryCode: "5"},
		{ID: "pos-jr", DepartmentID: "dept-dsn", Name: "Junior Designer", Code: "JR", CategoryCode: "6"},
		{ID: "pos-sr", DepartmentID: "dept-dsn", Name: "Senior Designer", Code: "SR", CategoryCode: "7"},
	}
	for _, p := range positions {
		if err := h.Store.SavePosition(ctx, p); err != nil {
			return err
		}
	}

	levels := []identity.Level{
		{ID: "lvl-1", Name: "Level 1", LevelCode: 1, RomanCode: "I"},
		{ID: "lvl-2", Name: "Level 2", LevelCode: 2, RomanCode: "II"},
		{ID: "lvl-3", Name: "Level 3", LevelCode: 3, RomanCode: "III"},
		{ID: "lvl-4", Name: "Level 4", LevelCode: 4, RomanCode: "IV"},
		{ID: "lvl-5", Name: "Level 5", LevelCode: 5, RomanCode: "V"},
	}
	for _, l := range levels {
		if err := h.Store.SaveLevel(ctx, l); err != nil {
			return err
		}
	}

	employmentTypes := []directory.EmploymentType{
		{ID: "et-intern", Name: "Internship", MinLevelCode: 0, MaxLevelCode: 1},
		{ID: "et-contract", Name: "Contract", MinLevelCode: 1, MaxLevelCode: 3},
		{ID: "et-perm", Name: "Permanent", MinLevelCode: 1, MaxLevelCode: 9},
	}
	for _, et := range employmentTypes {
		if err := h.Store.SaveEmploymentType(ctx, et); err != nil {
			return err
		}
	}

	sixty := 60
	thirty := 30
	schedules := []schedule.WorkSchedule{
		{
			ID: "sched-std", Name: "Standard Office", Type: schedule.TypeFixed,
			StartTime: "09:00", EndTime: "17:00", BreakMinutes: &sixty,
			Days: schedule.DaysConfig{
				WorkingDays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			},
		},
		{
			ID: "sched-flex", Name: "Flexible Remote", Type: schedule.TypeFlexible,
			StartTime: "08:00", EndTime: "16:00", BreakMinutes: &thirty,
			Days: schedule.DaysConfig{DaysPerWeek: 4},
		},
		{
			ID: "sched-crew", Name: "Event Crew", Type: schedule.TypeShift,
		},
	}
	for _, ws := range schedules {
		if err := h.Store.SaveWorkSchedule(ctx, ws); err != nil {
			return err
		}
	}

	snap, err := h.Store.Snapshot(ctx)
	if err != nil {
		return err
	}

	employees := []struct {
		id, name, email                string
		deptID, posID, lvlID, etID, ws string
		joined                         time.Time
		sequence                       string
	}{
		{
			"emp-rafi", "Rafi Pratama", "rafi@adidaya.example",
			"dept-dsn", "pos-sr", "lvl-3", "et-perm", "sched-std",
			time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), "042",
		},
		{
			"emp-sari", "Sari Wulandari", "sari@adidaya.example",
			"dept-ar", "pos-arch", "lvl-4", "et-perm", "sched-flex",
			time.Date(2022, time.August, 1, 0, 0, 0, 0, time.UTC), "007",
		},
	}
	for _, e := range employees {
		ids := h.Generator.Generate(identity.Input{
			Department: snap.Department(e.deptID),
			Position:   snap.Position(e.posID),
			Level:      snap.Level(e.lvlID),
			JoinDate:   e.joined,
			Sequence:   e.sequence,
		})
		emp := sqlite.Employee{
			ID:               e.id,
			Name:             e.name,
			Email:            e.email,
			DepartmentID:     e.deptID,
			PositionID:       e.posID,
			LevelID:          e.lvlID,
			EmploymentTypeID: e.etID,
			WorkScheduleID:   e.ws,
			JoinDate:         e.joined,
			Sequence:         identity.PadSequence(e.sequence),
			IDNumber:         ids.IDNumber,
			IDCode:           ids.IDCode,
			Active:           true,
		}
		if err := h.Store.SaveEmployee(ctx, emp); err != nil {
			return err
		}
	}

	return nil
}
