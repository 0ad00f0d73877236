package chord

import "testing"

func TestTraceBasicOperations(t *testing.T) {
	tr := NewTrace(ModCommand)
	if !tr.IsEmpty() {
		t.Error("new trace should be empty")
	}

	tr.AppendDown(CodeA)
	tr.AppendUp(CodeA)
	tr.AppendDown(CodeS)

	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
	if tr.DownCount() != 2 {
		t.Errorf("DownCount() = %d, want 2", tr.DownCount())
	}
}

func TestTraceSanitize(t *testing.T) {
	tr := NewTrace(ModCommand | ModShift | ModNumericPad)
	tr.AppendDown(CodeA)
	tr.AppendUp(CodeA)
	tr.AppendDown(CodeA)

	got := tr.Sanitize()
	want := New(ModCommand|ModShift, CodeA, CodeA)
	if !got.Matches(want) {
		t.Errorf("Sanitize() = %s, want %s", got, want)
	}
}

func TestTraceSanitizeEmpty(t *testing.T) {
	tr := NewTrace(ModNone)
	tr.AppendUp(CodeA)

	got := tr.Sanitize()
	if len(got.Keys) != 0 {
		t.Errorf("up-only trace should sanitize to no keys, got %v", got.Keys)
	}
}

func TestTraceClone(t *testing.T) {
	tr := NewTrace(ModShift)
	tr.AppendDown(CodeA)

	clone := tr.Clone()
	clone.AppendDown(CodeB)
	clone.Mods = ModNone

	if tr.Len() != 1 {
		t.Error("mutating clone should not affect original steps")
	}
	if tr.Mods != ModShift {
		t.Error("mutating clone should not affect original mask")
	}
}

func TestTraceClear(t *testing.T) {
	tr := NewTrace(ModNone)
	tr.AppendDown(CodeA)
	tr.Clear(ModShift)

	if !tr.IsEmpty() {
		t.Error("Clear should remove all steps")
	}
	if tr.Mods != ModShift {
		t.Errorf("Clear should set mask, got %#x", uint64(tr.Mods))
	}
}

func TestTraceString(t *testing.T) {
	tr := NewTrace(ModNone)
	tr.AppendDown(CodeA)
	tr.AppendUp(CodeA)

	if got := tr.String(); got != "[+a -a]" {
		t.Errorf("String() = %q, want %q", got, "[+a -a]")
	}
}
