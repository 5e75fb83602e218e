package shift

type Area string

const (
	AreaHelsinki Area = "Helsinki"
	AreaTampere  Area = "Tampere"
	AreaTurku    Area = "Turku"
)

// Areas lists the closed set of areas in display order.
var Areas = []Area{AreaHelsinki, AreaTampere, AreaTurku}

func NewArea(value string) (Area, error) {
	a := Area(value)
	if !a.IsValid() {
		return "", ErrInvalidArea
	}
	return a, nil
}

func (a Area) String() string {
	return string(a)
}

func (a Area) IsValid() bool {
	switch a {
	case AreaHelsinki, AreaTampere, AreaTurku:
		return true
	default:
		return false
	}
}

// Status is the display classification of a shift at an instant. It is never stored.
type Status string

const (
	StatusCompleted   Status = "completed"
	StatusInProgress  Status = "in-progress"
	StatusBooked      Status = "booked"
	StatusOverlapping Status = "overlapping"
	StatusAvailable   Status = "available"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusBooked, StatusOverlapping, StatusAvailable:
		return true
	default:
		return false
	}
}

// Filter narrows a shift listing. Nil fields match everything.
type Filter struct {
	Area   *Area
	Booked *bool
}

func (f Filter) Matches(s *Shift) bool {
	if f.Area != nil && s.Area() != *f.Area {
		return false
	}
	if f.Booked != nil && s.IsBooked() != *f.Booked {
		return false
	}
	return true
}
