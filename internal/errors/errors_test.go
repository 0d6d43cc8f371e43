package errors

import (
	"fmt"
	"testing"
)

func TestCodeOfWalksWrappedChain(t *testing.T) {
	base := New(CodeInventoryParse, "parse vehicles.yaml", nil)
	wrapped := fmt.Errorf("load inventory: %w", base)

	if got := CodeOf(wrapped); got != CodeInventoryParse {
		t.Fatalf("expected %s, got %s", CodeInventoryParse, got)
	}
	if !IsCode(wrapped, CodeInventoryParse) {
		t.Fatal("expected IsCode to match through fmt wrapping")
	}
	if IsCode(wrapped, CodeInvalidSelection) {
		t.Fatal("expected IsCode to reject a different code")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if got := CodeOf(fmt.Errorf("boom")); got != CodeUnknown {
		t.Fatalf("expected %s for unstructured error, got %s", CodeUnknown, got)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{name: "message wins", err: New(CodeUnknownFacet, "unknown facet \"color\"", cause), want: "unknown facet \"color\""},
		{name: "cause when no message", err: New(CodeInventoryQuery, "", cause), want: "disk on fire"},
		{name: "code when empty", err: New(CodeInvalidRecord, "", nil), want: "invalid_record"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
