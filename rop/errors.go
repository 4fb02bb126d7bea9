package rop

import (
	"fmt"
)

type ErrorEntry struct {
	Message string
	Fatal   bool
}

// ErrorManager collects everything that went wrong during an export
// session. Non-fatal entries are warnings; a fatal entry fails the
// session.
type ErrorManager struct {
	entries []ErrorEntry
}

func (em *ErrorManager) Reset() { em.entries = nil }

func (em *ErrorManager) AddErrorf(format string, args ...interface{}) {
	em.entries = append(em.entries, ErrorEntry{Message: fmt.Sprintf(format, args...)})
}

func (em *ErrorManager) AddFatalf(format string, args ...interface{}) {
	em.entries = append(em.entries, ErrorEntry{Message: fmt.Sprintf(format, args...), Fatal: true})
}

func (em *ErrorManager) Entries() []ErrorEntry { return em.entries }

func (em *ErrorManager) HasFatal() bool {
	for _, e := range em.entries {
		if e.Fatal {
			return true
		}
	}
	return false
}
