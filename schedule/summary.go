/*
summary.go - Weekly-hour calculation and day grouping

PURPOSE:
  Implements Summarize, branching on schedule type:

  Flexible: dailyHours x daysPerWeek, no day groups
  Shift:    no computation - hours are not statically knowable, the
            summary says "varies by roster" and totals zero
  Fixed:    per-day effective hours accumulated over the working days,
            with days merged into display groups by their start/end range

GROUPING KEY:
  Days group by "HH:MM - HH:MM" (start/end only). A per-day break
  difference changes that day's hours but NOT its group - two days at
  09:00-17:00 with 30' and 60' breaks share one display row while the
  total still sums their true hours.

KNOWN LIMITATION:
  hoursBetween does not wrap past midnight: an end time earlier than the
  start goes negative and is clamped to zero rather than treated as an
  overnight shift.

SEE ALSO:
  - types.go: WorkSchedule input and Summary output
*/
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// weekDays is the candidate set, in canonical order. Working days are
// visited in this order regardless of how the caller ordered them, so
// grouping and the Mon-Fri collapse are deterministic.
var weekDays = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var workweek = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

var sixty = decimal.NewFromInt(60)

// Summarize derives the weekly summary for a schedule. Pure; never
// errors. Unknown schedule types take the fixed-schedule path.
func Summarize(ws WorkSchedule) Summary {
	switch ws.Type {
	case TypeFlexible:
		return summarizeFlexible(ws)
	case TypeShift:
		return Summary{TotalWeeklyHours: 0, Note: "varies by roster"}
	default:
		return summarizeFixed(ws)
	}
}

func summarizeFlexible(ws WorkSchedule) Summary {
	start, end, brk := effectiveDefaults(ws)
	daily := hoursBetween(start, end, brk)

	daysPerWeek := ws.Days.DaysPerWeek
	if daysPerWeek <= 0 {
		daysPerWeek = DefaultDaysPerWeek
	}

	total := daily.Mul(decimal.NewFromInt(int64(daysPerWeek)))
	return Summary{
		TotalWeeklyHours: total.InexactFloat64(),
		Note:             fmt.Sprintf("%d days/week", daysPerWeek),
	}
}

func summarizeFixed(ws WorkSchedule) Summary {
	working := make(map[string]bool, len(ws.Days.WorkingDays))
	for _, d := range ws.Days.WorkingDays {
		working[d] = true
	}

	total := decimal.Zero
	var groups []DayGroup
	index := make(map[string]int)

	for _, day := range weekDays {
		if !working[day] {
			continue
		}

		start, end, brk := effectiveFor(ws, day)
		total = total.Add(hoursBetween(start, end, brk))

		// Break duration is deliberately NOT part of the key.
		rng := start + " - " + end
		if i, ok := index[rng]; ok {
			groups[i].Days = append(groups[i].Days, day)
		} else {
			index[rng] = len(groups)
			groups = append(groups, DayGroup{TimeRange: rng, Days: []string{day}})
		}
	}

	for i := range groups {
		groups[i].Label = dayLabel(groups[i].Days)
	}

	return Summary{
		TotalWeeklyHours: total.InexactFloat64(),
		DayGroups:        groups,
	}
}

// effectiveDefaults resolves the schedule-level triple, substituting the
// package defaults for anything missing or unparseable.
func effectiveDefaults(ws WorkSchedule) (start, end string, breakMinutes int) {
	start = normalizeClock(ws.StartTime, DefaultStart)
	end = normalizeClock(ws.EndTime, DefaultEnd)
	breakMinutes = DefaultBreakMinutes
	if ws.BreakMinutes != nil {
		breakMinutes = *ws.BreakMinutes
	}
	return
}

// effectiveFor resolves one day's triple: the custom entry when present,
// field by field over the schedule-level values.
func effectiveFor(ws WorkSchedule, day string) (start, end string, breakMinutes int) {
	start, end, breakMinutes = effectiveDefaults(ws)
	custom, ok := ws.Days.CustomHours[day]
	if !ok {
		return
	}
	if s := normalizeClock(custom.Start, ""); s != "" {
		start = s
	}
	if e := normalizeClock(custom.End, ""); e != "" {
		end = e
	}
	if custom.BreakMinutes != nil {
		breakMinutes = *custom.BreakMinutes
	}
	return
}

// hoursBetween converts a clock range and break allowance to hours,
// rounded to one decimal. Negative spans (end before start, or a break
// longer than the span) clamp to zero; there is no overnight wrap.
func hoursBetween(start, end string, breakMinutes int) decimal.Decimal {
	startMin, _ := clockMinutes(start)
	endMin, _ := clockMinutes(end)

	net := endMin - startMin - breakMinutes
	if net < 0 {
		net = 0
	}
	return decimal.NewFromInt(int64(net)).Div(sixty).Round(1)
}

// clockMinutes parses "HH:MM" to minutes since midnight.
func clockMinutes(clock string) (int, bool) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

// normalizeClock returns the clock string when parseable, else fallback.
func normalizeClock(clock, fallback string) string {
	if _, ok := clockMinutes(clock); ok {
		return clock
	}
	return fallback
}

// dayLabel collapses the standard workweek to "Mon-Fri"; any other
// grouping lists the days in the order encountered.
func dayLabel(days []string) string {
	if len(days) == len(workweek) {
		match := true
		for i, d := range days {
			if d != workweek[i] {
				match = false
				break
			}
		}
		if match {
			return "Mon-Fri"
		}
	}
	return strings.Join(days, ", ")
}
