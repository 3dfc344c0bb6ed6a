package dcell

// BorrowError is the panic value for an aliasing-discipline violation:
// acquiring a guard, or running an operation that acquires one
// internally, while the cell is in a state that forbids it. Guard misuse
// (use after release, cross-goroutine traffic) reports the same way.
//
// Only the checked profile constructs BorrowErrors; the unchecked
// profile never detects the violation.
type BorrowError struct {
	Reason string // which rule was violated
	Site   string // call site that opened the conflicting borrow set, if known
	Msg    string // optional caller-supplied message
}

func (e *BorrowError) Error() string {
	s := "dcell: " + e.Reason
	if e.Site != "" {
		s += " (borrowed at " + e.Site + ")"
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

func borrowErr(reason, site, msg string) *BorrowError {
	return &BorrowError{Reason: reason, Site: site, Msg: msg}
}

// CheckError is the panic value for the companion helpers: Unwrap and
// Expect on an absent value, Must and MustErr on the wrong result arm,
// At out of range, and Unreachable.
type CheckError struct {
	Reason string
	Site   string // call site of the failed helper
	Msg    string // optional caller-supplied message
}

func (e *CheckError) Error() string {
	s := "dcell: " + e.Reason
	if e.Site != "" {
		s += " at " + e.Site
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

func checkErr(reason, site, msg string) *CheckError {
	return &CheckError{Reason: reason, Site: site, Msg: msg}
}
