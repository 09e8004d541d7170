package guard

import (
	"context"
	"strings"
	"testing"

	"chat-pipeline/domain"
	"chat-pipeline/errors"
	"chat-pipeline/settings"

	"github.com/stretchr/testify/require"
)

func TestLengthConstraint_Validate(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	check := NewLengthConstraint()

	tests := []struct {
		name    string
		limit   int
		content string
		wantErr bool
	}{
		{"Under the limit", 10, "short", false},
		{"Exactly at the limit", 5, "12345", false},
		{"Over the limit", 5, "123456", true},
		{"Runes counted, not bytes", 4, "héhé", false},
		{"Zero limit means unlimited", 0, strings.Repeat("x", 10000), false},
		{"Negative limit means unlimited", -1, "anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &settings.Snapshot{MessageMaxChars: tt.limit}
			err := check.Validate(ctx, domain.Message{Content: tt.content}, guardRun(cfg))
			if !tt.wantErr {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, errors.ErrConstraintExceeded)
			var veto *errors.VetoError
			req.ErrorAs(err, &veto)
			req.Equal(errors.VetoConstraint, veto.Kind)
			req.Contains(veto.Detail, "limit is 5")
		})
	}
}
