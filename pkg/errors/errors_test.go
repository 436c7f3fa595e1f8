package errors

import (
	stderrors "errors"
	"testing"
	"time"
)

func TestMotionErrorString(t *testing.T) {
	err := &MotionError{
		Op:   "animation.Advance",
		Kind: KindState,
		Err:  stderrors.New("animation advanced before Prepare"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	want := "[state]"
	if !contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestMotionErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &MotionError{Op: "test.op", Kind: KindConfig, Err: inner}

	if !stderrors.Is(err, inner) {
		t.Error("expected errors.Is to reach the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindState, "state"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:    "motion.demo",
		Value: "boom",
	}
	got := err.Error()
	want := "panic in motion.demo: boom"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

// captureHandler records reported errors for assertions.
type captureHandler struct {
	errors []*MotionError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *MotionError) { h.errors = append(h.errors, err) }
func (h *captureHandler) HandlePanic(err *PanicError)  { h.panics = append(h.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&MotionError{Op: "test.op", Kind: KindState, Err: stderrors.New("x")})

	if len(h.errors) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.errors))
	}
	if h.errors[0].Timestamp.IsZero() {
		t.Error("Report should stamp errors with a timestamp")
	}
}

func TestReportNilIsNoop(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)

	if len(h.errors) != 0 || len(h.panics) != 0 {
		t.Error("nil reports should be ignored")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(h.panics))
	}
	if h.panics[0].Op != "test.op" {
		t.Errorf("expected op test.op, got %q", h.panics[0].Op)
	}
	if h.panics[0].StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.op", func(r any) { got = r })
		panic("boom")
	}()

	if got != "boom" {
		t.Errorf("expected callback to receive the panic value, got %v", got)
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)

	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected the default LogHandler, got %T", DefaultHandler)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
