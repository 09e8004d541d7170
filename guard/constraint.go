package guard

import (
	"context"
	"fmt"
	"unicode/utf8"

	"chat-pipeline/domain"
	"chat-pipeline/errors"
	"chat-pipeline/pipeline"
)

// LengthConstraint is the default content constraint: a per-deployment
// ceiling on message length in runes, read from the snapshot. The
// metric is deliberately a pluggable policy; any pipeline.Check
// returning a constraint veto can replace this one.
type LengthConstraint struct{}

func NewLengthConstraint() *LengthConstraint {
	return &LengthConstraint{}
}

func (c *LengthConstraint) Name() string { return "length-constraint" }

func (c *LengthConstraint) Validate(_ context.Context, msg domain.Message, run pipeline.Run) error {
	limit := run.Config.MessageMaxChars
	if limit <= 0 {
		return nil
	}
	length := utf8.RuneCountInString(msg.Content)
	if length > limit {
		return &errors.VetoError{
			Kind:   errors.VetoConstraint,
			Detail: fmt.Sprintf("message is %d chars, limit is %d", length, limit),
		}
	}
	return nil
}
