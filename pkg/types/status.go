package types

// Status is the outcome of a check that may have no opinion
type Status int

const (
	// StatusNone means there was nothing to check
	StatusNone Status = iota
	// StatusPass means every check succeeded
	StatusPass
	// StatusFail means at least one check failed
	StatusFail
)

// StatusFromBool converts a plain success flag
func StatusFromBool(ok bool) Status {
	if ok {
		return StatusPass
	}
	return StatusFail
}

// Known reports whether the status carries an opinion
func (s Status) Known() bool {
	return s != StatusNone
}

// Combine folds another result into s: any failure wins, then any pass.
func (s Status) Combine(other Status) Status {
	if s == StatusFail || other == StatusFail {
		return StatusFail
	}
	if s == StatusPass || other == StatusPass {
		return StatusPass
	}
	return StatusNone
}

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	default:
		return "none"
	}
}
