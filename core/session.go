package core

import "fmt"

// Session carries the state for one checking pass: the confirmation policy,
// the writer used to persist accepted fixes, and the counters backing the
// final summary. A fresh Session is created for every pass so a retried run
// starts from a clean slate.
type Session struct {
	confirmer Confirmer
	writer    DocWriter

	issues   int
	fixes    int
	declined int
}

func NewSession(confirmer Confirmer, writer DocWriter) *Session {
	return &Session{
		confirmer: confirmer,
		writer:    writer,
	}
}

// Confirm records a finding and asks whether the proposed fix should be
// applied.
func (s *Session) Confirm(question string) bool {
	s.issues++
	if s.confirmer.Confirm(question) {
		s.fixes++
		return true
	}
	s.declined++
	return false
}

// SaveDoc writes doc back to its file path.
func (s *Session) SaveDoc(doc Writable) error {
	return s.writer.Write(doc)
}

// FixName runs the naming convention check over name, asking for confirmation
// when a fix is needed. It returns the name to use from here on and whether
// it differs from the input.
func (s *Session) FixName(name string) (string, bool) {
	needsFix, fixed := NormalizeName(name)
	if !needsFix {
		return name, false
	}
	if !s.Confirm(fmt.Sprintf("%q does not follow the naming convention (lowercase, no spaces), it can be renamed to %q", name, fixed)) {
		return name, false
	}
	return fixed, true
}

func (s *Session) Issues() int {
	return s.issues
}

func (s *Session) Fixes() int {
	return s.fixes
}

func (s *Session) Declined() int {
	return s.declined
}
