package ggicon

import (
	"errors"
	"testing"
)

func TestReport(t *testing.T) {
	r := &Report{Results: []Result{
		{Size: 16, Status: StatusDone, Origin: OriginProcedural},
		{Size: 32, Status: StatusFailed, Err: errors.New("x")},
		{Size: 48, Status: StatusDone, Origin: OriginVector},
	}}
	if r.Total() != 3 {
		t.Errorf("Total() = %d, want 3", r.Total())
	}
	if r.Successes() != 2 {
		t.Errorf("Successes() = %d, want 2", r.Successes())
	}
	if f := r.Failed(); len(f) != 1 || f[0].Size != 32 {
		t.Errorf("Failed() = %+v, want size 32", f)
	}
	if r.OK() {
		t.Error("OK() = true with a failed size")
	}

	empty := &Report{}
	if !empty.OK() || empty.Failed() != nil {
		t.Error("empty report should be OK with no failures")
	}
}

func TestStatusAndOriginString(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{StatusPending.String(), "pending"},
		{StatusDone.String(), "done"},
		{StatusFailed.String(), "failed"},
		{Status(9).String(), "Status(9)"},
		{OriginNone.String(), "none"},
		{OriginVector.String(), "vector"},
		{OriginProcedural.String(), "procedural"},
		{Origin(7).String(), "Origin(7)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
