/*
Package schedule computes weekly working hours and compact day-range
groupings from work-schedule configurations.

PURPOSE:
  A work schedule names a pattern (fixed, flexible, or shift), default
  start/end times, a break allowance, and optional per-day overrides.
  This package turns one of those configurations into the summary the
  profile screen displays: total weekly hours plus the grouped
  "Mon-Fri 09:00 - 17:00" style day ranges.

KEY CONCEPTS IN THIS FILE (types.go):
  - WorkSchedule: the configuration record (read-only input)
  - DaysConfig/DayHours: which days are worked and any per-day overrides
  - Summary/DayGroup: the derived display values

DESIGN PRINCIPLES:
  1. Purity: summarizing never errors and never mutates the schedule;
     missing fields fall back to documented defaults (09:00, 17:00, 60')
  2. Precision: hour math runs on decimal.Decimal so the one-decimal
     rounding rule is exact (no binary-float drift)
  3. Recompute-on-read: summaries are transient display values, derived
     fresh on every call - nothing here is cached or persisted

USAGE:
  summary := schedule.Summarize(ws)
  // summary.TotalWeeklyHours, summary.DayGroups, summary.Note

SEE ALSO:
  - summary.go: The branching calculator and hour arithmetic
*/
package schedule

// =============================================================================
// SCHEDULE CONFIGURATION - Read-only input
// =============================================================================

type Type string

const (
	TypeFixed    Type = "Fixed"
	TypeFlexible Type = "Flexible"
	TypeShift    Type = "Shift"
)

// Defaults applied wherever a time or break field is missing.
const (
	DefaultStart        = "09:00"
	DefaultEnd          = "17:00"
	DefaultBreakMinutes = 60
	DefaultDaysPerWeek  = 5
)

// DayHours overrides the schedule-level times for one day. A nil
// BreakMinutes means "use the schedule default", which is distinct from
// an explicit zero-minute break.
type DayHours struct {
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
	BreakMinutes *int   `json:"break_minutes,omitempty"`
}

// DaysConfig selects the working days. WorkingDays holds 3-letter day
// codes (Mon..Sun); CustomHours overrides individual days; DaysPerWeek
// applies to flexible schedules only (0 = unset, defaults to 5).
type DaysConfig struct {
	WorkingDays []string            `json:"working_days,omitempty"`
	CustomHours map[string]DayHours `json:"custom_hours,omitempty"`
	DaysPerWeek int                 `json:"days_per_week,omitempty"`
}

// WorkSchedule is a named work-schedule configuration as supplied by
// the directory. BreakMinutes is a pointer for the same reason as in
// DayHours.
type WorkSchedule struct {
	ID           string
	Name         string
	Type         Type
	StartTime    string
	EndTime      string
	BreakMinutes *int
	Days         DaysConfig
}

// =============================================================================
// DERIVED SUMMARY - Display output
// =============================================================================

// DayGroup is a set of working days sharing one effective start/end
// range. TimeRange is the "HH:MM - HH:MM" key; Label is the compact
// day list ("Mon-Fri" or "Mon, Wed, Fri").
type DayGroup struct {
	TimeRange string
	Label     string
	Days      []string
}

// Summary is the derived weekly view. Note carries the display line for
// schedule types that produce no day groups ("5 days/week" for flexible,
// "varies by roster" for shift).
type Summary struct {
	TotalWeeklyHours float64
	DayGroups        []DayGroup
	Note             string
}
