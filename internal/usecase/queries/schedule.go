package queries

import (
	"cmp"
	"slices"
	"time"

	"shift-booking/internal/domain/shift"
)

const dayKeyLayout = "2006-01-02"

const (
	DayKeyToday    = "Today"
	DayKeyTomorrow = "Tomorrow"
)

type DaySchedule struct {
	Date   string
	Shifts []*shift.Shift
}

type AreaSchedule struct {
	Area shift.Area
	Days []DaySchedule
}

type BookedDay struct {
	Key        string
	Shifts     []*shift.Shift
	TotalHours float64
}

// GroupByAreaThenDay partitions shifts by area, then by the wall-clock date of their start
// in loc. Areas follow shift.Areas order, days ascend, and shifts in a day ascend by start.
func GroupByAreaThenDay(shifts []*shift.Shift, loc *time.Location) []AreaSchedule {
	byArea := make(map[shift.Area][]*shift.Shift)
	for _, s := range shifts {
		if s == nil || !s.Area().IsValid() {
			continue
		}
		byArea[s.Area()] = append(byArea[s.Area()], s)
	}

	result := make([]AreaSchedule, 0, len(byArea))
	for _, area := range shift.Areas {
		areaShifts, ok := byArea[area]
		if !ok {
			continue
		}
		result = append(result, AreaSchedule{
			Area: area,
			Days: groupByDay(areaShifts, loc),
		})
	}
	return result
}

func groupByDay(shifts []*shift.Shift, loc *time.Location) []DaySchedule {
	sorted := sortedByStart(shifts)

	var days []DaySchedule
	for _, s := range sorted {
		date := s.StartTime().In(loc).Format(dayKeyLayout)
		if n := len(days); n > 0 && days[n-1].Date == date {
			days[n-1].Shifts = append(days[n-1].Shifts, s)
			continue
		}
		days = append(days, DaySchedule{Date: date, Shifts: []*shift.Shift{s}})
	}
	return days
}

// GroupBookedByDateWithHours keeps booked shifts only and groups them under "Today",
// "Tomorrow" (relative to now in loc) or a long-form date such as "March 5".
// Groups are ordered by their earliest shift.
func GroupBookedByDateWithHours(shifts []*shift.Shift, now time.Time, loc *time.Location) []BookedDay {
	booked := make([]*shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		if s != nil && s.IsBooked() {
			booked = append(booked, s)
		}
	}

	var days []BookedDay
	index := make(map[string]int)
	for _, s := range sortedByStart(booked) {
		key := DayKey(s.StartTime(), now, loc)
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, BookedDay{Key: key})
		}
		days[i].Shifts = append(days[i].Shifts, s)
		days[i].TotalHours += s.DurationHours()
	}
	return days
}

// DayKey labels t relative to now, both read as wall-clock dates in loc.
func DayKey(t, now time.Time, loc *time.Location) string {
	local := t.In(loc)
	today := now.In(loc)
	tomorrow := time.Date(today.Year(), today.Month(), today.Day()+1, 12, 0, 0, 0, loc)

	switch {
	case sameDay(local, today):
		return DayKeyToday
	case sameDay(local, tomorrow):
		return DayKeyTomorrow
	default:
		return local.Format("January 2")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sortedByStart(shifts []*shift.Shift) []*shift.Shift {
	sorted := slices.Clone(shifts)
	slices.SortStableFunc(sorted, func(a, b *shift.Shift) int {
		if c := a.StartTime().Compare(b.StartTime()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return sorted
}
