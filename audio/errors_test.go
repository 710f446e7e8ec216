// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotMono, "only mono sources are supported"},
		{ErrStalled, "source returned no data"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading template: %w", ErrNotMono)
	if !errors.Is(wrapped, ErrNotMono) {
		t.Error("errors.Is() failed for wrapped ErrNotMono")
	}
	if errors.Is(wrapped, ErrStalled) {
		t.Error("errors.Is() matched an unrelated sentinel")
	}
}
