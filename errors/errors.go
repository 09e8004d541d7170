package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrMissingUsername    = fmt.Errorf("system message requires a username")
	ErrUnknownMessage     = fmt.Errorf("unknown message")
	ErrUnknownRoom        = fmt.Errorf("unknown room")
	ErrMentionNotAllowed  = fmt.Errorf("mention not allowed")
	ErrConstraintExceeded = fmt.Errorf("message constraint exceeded")
)

type VetoKind string

const (
	VetoMentionAll  = VetoKind("mention-all")
	VetoMentionHere = VetoKind("mention-here")
	VetoConstraint  = VetoKind("constraint")
)

// VetoError rejects a message before persistence. Only the validation
// group produces one; enrichment failures are silent skips and must
// never surface as a VetoError.
type VetoError struct {
	Kind   VetoKind
	Detail string
}

func (e *VetoError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("message vetoed: %s", e.Kind)
	}
	return fmt.Sprintf("message vetoed: %s (%s)", e.Kind, e.Detail)
}

// Is maps veto kinds onto the package sentinels so callers can use
// errors.Is without inspecting kinds directly.
func (e *VetoError) Is(target error) bool {
	switch target {
	case ErrMentionNotAllowed:
		return e.Kind == VetoMentionAll || e.Kind == VetoMentionHere
	case ErrConstraintExceeded:
		return e.Kind == VetoConstraint
	}
	return false
}
