package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adidayastudio/directory-engine/schedule"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func intPtr(n int) *int { return &n }

func standardWeek() schedule.WorkSchedule {
	return schedule.WorkSchedule{
		ID:           "sched-std",
		Name:         "Standard Office",
		Type:         schedule.TypeFixed,
		StartTime:    "09:00",
		EndTime:      "17:00",
		BreakMinutes: intPtr(60),
		Days: schedule.DaysConfig{
			WorkingDays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		},
	}
}

// =============================================================================
// FIXED SCHEDULES
// =============================================================================

func TestSummarize_Fixed_StandardWeek(t *testing.T) {
	summary := schedule.Summarize(standardWeek())

	assert.Equal(t, 35.0, summary.TotalWeeklyHours)
	require.Len(t, summary.DayGroups, 1)
	assert.Equal(t, "09:00 - 17:00", summary.DayGroups[0].TimeRange)
	assert.Equal(t, "Mon-Fri", summary.DayGroups[0].Label)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, summary.DayGroups[0].Days)
	assert.Empty(t, summary.Note)
}

func TestSummarize_Fixed_CustomDaySplitsGroup(t *testing.T) {
	// Friday ends early, so it forms its own display group while the
	// total reflects the shorter day.
	ws := standardWeek()
	ws.Days.CustomHours = map[string]schedule.DayHours{
		"Fri": {End: "13:00", BreakMinutes: intPtr(0)},
	}

	summary := schedule.Summarize(ws)

	// Mon-Thu: 7h each. Fri: 09:00-13:00, no break = 4h.
	assert.Equal(t, 32.0, summary.TotalWeeklyHours)
	require.Len(t, summary.DayGroups, 2)
	assert.Equal(t, "09:00 - 17:00", summary.DayGroups[0].TimeRange)
	assert.Equal(t, "Mon, Tue, Wed, Thu", summary.DayGroups[0].Label)
	assert.Equal(t, "09:00 - 13:00", summary.DayGroups[1].TimeRange)
	assert.Equal(t, "Fri", summary.DayGroups[1].Label)
}

func TestSummarize_Fixed_BreakDifferenceDoesNotSplitGroup(t *testing.T) {
	// Wednesday has a half-hour break instead of an hour. Same start/end
	// range, so it stays in the Mon-Fri group - but the extra half hour
	// still lands in the total.
	ws := standardWeek()
	ws.Days.CustomHours = map[string]schedule.DayHours{
		"Wed": {BreakMinutes: intPtr(30)},
	}

	summary := schedule.Summarize(ws)

	assert.Equal(t, 35.5, summary.TotalWeeklyHours)
	require.Len(t, summary.DayGroups, 1)
	assert.Equal(t, "Mon-Fri", summary.DayGroups[0].Label)
}

func TestSummarize_Fixed_DaysVisitedInCanonicalOrder(t *testing.T) {
	// The caller's ordering of working days does not leak into the
	// output: grouping follows Mon..Sun.
	ws := standardWeek()
	ws.Days.WorkingDays = []string{"Fri", "Mon", "Wed", "Tue", "Thu"}

	summary := schedule.Summarize(ws)

	require.Len(t, summary.DayGroups, 1)
	assert.Equal(t, "Mon-Fri", summary.DayGroups[0].Label)
}

func TestSummarize_Fixed_WeekendCrew(t *testing.T) {
	ws := standardWeek()
	ws.Days.WorkingDays = []string{"Sat", "Sun"}

	summary := schedule.Summarize(ws)

	assert.Equal(t, 14.0, summary.TotalWeeklyHours)
	require.Len(t, summary.DayGroups, 1)
	assert.Equal(t, "Sat, Sun", summary.DayGroups[0].Label)
}

func TestSummarize_Fixed_MissingFieldsUseDefaults(t *testing.T) {
	// GIVEN: a schedule with nothing but working days configured
	// THEN: 09:00-17:00 with a 60' break is assumed per day
	ws := schedule.WorkSchedule{
		Type: schedule.TypeFixed,
		Days: schedule.DaysConfig{WorkingDays: []string{"Mon", "Tue"}},
	}

	summary := schedule.Summarize(ws)

	assert.Equal(t, 14.0, summary.TotalWeeklyHours)
	require.Len(t, summary.DayGroups, 1)
	assert.Equal(t, "09:00 - 17:00", summary.DayGroups[0].TimeRange)
}

func TestSummarize_Fixed_NoWorkingDays(t *testing.T) {
	ws := standardWeek()
	ws.Days.WorkingDays = nil

	summary := schedule.Summarize(ws)

	assert.Equal(t, 0.0, summary.TotalWeeklyHours)
	assert.Empty(t, summary.DayGroups)
}

func TestSummarize_Fixed_OvernightClampsToZero(t *testing.T) {
	// End before start does not wrap past midnight; the day contributes
	// zero hours. Known limitation, preserved deliberately.
	ws := standardWeek()
	ws.StartTime = "22:00"
	ws.EndTime = "06:00"

	summary := schedule.Summarize(ws)

	assert.Equal(t, 0.0, summary.TotalWeeklyHours)
	require.Len(t, summary.DayGroups, 1)
	assert.Equal(t, "22:00 - 06:00", summary.DayGroups[0].TimeRange)
}

func TestSummarize_Fixed_BreakLongerThanSpanClampsToZero(t *testing.T) {
	ws := standardWeek()
	ws.StartTime = "09:00"
	ws.EndTime = "09:30"
	ws.BreakMinutes = intPtr(60)

	summary := schedule.Summarize(ws)

	assert.Equal(t, 0.0, summary.TotalWeeklyHours)
}

func TestSummarize_Fixed_QuarterHoursRoundToOneDecimal(t *testing.T) {
	// 09:00-17:20 with 60' break = 7h20' = 7.333... -> 7.3 per day.
	ws := standardWeek()
	ws.EndTime = "17:20"
	ws.Days.WorkingDays = []string{"Mon"}

	summary := schedule.Summarize(ws)

	assert.Equal(t, 7.3, summary.TotalWeeklyHours)
}

// =============================================================================
// FLEXIBLE SCHEDULES
// =============================================================================

func TestSummarize_Flexible_FourDayWeek(t *testing.T) {
	ws := schedule.WorkSchedule{
		Type:         schedule.TypeFlexible,
		StartTime:    "08:00",
		EndTime:      "16:00",
		BreakMinutes: intPtr(30),
		Days:         schedule.DaysConfig{DaysPerWeek: 4},
	}

	summary := schedule.Summarize(ws)

	// 7.5h daily x 4 days.
	assert.Equal(t, 30.0, summary.TotalWeeklyHours)
	assert.Empty(t, summary.DayGroups)
	assert.Equal(t, "4 days/week", summary.Note)
}

func TestSummarize_Flexible_DefaultsToFiveDays(t *testing.T) {
	ws := schedule.WorkSchedule{Type: schedule.TypeFlexible}

	summary := schedule.Summarize(ws)

	assert.Equal(t, 35.0, summary.TotalWeeklyHours)
	assert.Equal(t, "5 days/week", summary.Note)
}

// =============================================================================
// SHIFT SCHEDULES
// =============================================================================

func TestSummarize_Shift_NeverComputes(t *testing.T) {
	// Shift rosters are not statically knowable; whatever else is
	// configured, the summary totals zero and says so.
	ws := schedule.WorkSchedule{
		Type:         schedule.TypeShift,
		StartTime:    "06:00",
		EndTime:      "18:00",
		BreakMinutes: intPtr(45),
		Days: schedule.DaysConfig{
			WorkingDays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			DaysPerWeek: 7,
		},
	}

	summary := schedule.Summarize(ws)

	assert.Equal(t, 0.0, summary.TotalWeeklyHours)
	assert.Empty(t, summary.DayGroups)
	assert.Equal(t, "varies by roster", summary.Note)
}

// =============================================================================
// PURITY
// =============================================================================

func TestSummarize_IsDeterministicAndNonMutating(t *testing.T) {
	ws := standardWeek()
	ws.Days.CustomHours = map[string]schedule.DayHours{
		"Fri": {End: "13:00"},
	}

	first := schedule.Summarize(ws)
	second := schedule.Summarize(ws)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, ws.Days.WorkingDays)
	assert.Equal(t, "13:00", ws.Days.CustomHours["Fri"].End)
}
