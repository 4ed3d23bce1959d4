package errors

import (
	"fmt"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain weave error": {
			err:      ErrNotFound,
			wantCode: ErrNotFound.code,
			wantLog:  "not found",
		},
		"wrapped weave error": {
			err:      Wrap(Wrap(ErrNotFound, "foo"), "bar"),
			wantCode: ErrNotFound.code,
			wantLog:  "bar: foo: not found",
		},
		"nil is empty message": {
			err:      nil,
			wantCode: 0,
			wantLog:  "",
		},
		"nil weave error is not an error": {
			err:      (*Error)(nil),
			wantCode: 0,
			wantLog:  "",
		},
		"stdlib is generic message": {
			err:      fmt.Errorf("stdlib error"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"wrapped stdlib is only a generic message": {
			err:      Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"stdlib is full message in debug mode": {
			err:      fmt.Errorf("stdlib error"),
			debug:    true,
			wantCode: 1,
			wantLog:  "stdlib error",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(ErrPanic, false); ErrPanic.Is(err) {
		t.Error("panic must be redacted")
	}
	if err := Redact(ErrNotFound, false); !ErrNotFound.Is(err) {
		t.Error("registered error must not be redacted")
	}
	if err := Redact(fmt.Errorf("secret"), false); err.Error() != "internal error" {
		t.Errorf("stdlib error must be redacted, got %q", err)
	}
	if err := Redact(fmt.Errorf("secret"), true); err.Error() != "secret" {
		t.Errorf("debug mode must not redact, got %q", err)
	}
}
