package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(name string, args []string) {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
}

func (f *fakeExec) Dashboard(ctx context.Context) error { f.record("dash", nil); return nil }
func (f *fakeExec) Body(ctx context.Context, args []string) error {
	f.record("body", args)
	return nil
}
func (f *fakeExec) Mind(ctx context.Context, args []string) error {
	f.record("mind", args)
	return nil
}
func (f *fakeExec) Music(ctx context.Context, args []string) error {
	f.record("music", args)
	return nil
}
func (f *fakeExec) Habits(ctx context.Context, args []string) error {
	f.record("habits", args)
	return nil
}
func (f *fakeExec) Record(ctx context.Context, args []string) error {
	f.record("record", args)
	return nil
}
func (f *fakeExec) Export(ctx context.Context, args []string) error {
	f.record("export", args)
	return nil
}
func (f *fakeExec) Import(ctx context.Context, args []string) error {
	f.record("import", args)
	return nil
}
func (f *fakeExec) Reset(ctx context.Context) error { f.record("reset", nil); return nil }
func (f *fakeExec) Archive(ctx context.Context, args []string) error {
	f.record("archive", args)
	return nil
}
func (f *fakeExec) Research(ctx context.Context, args []string) error {
	f.record("research", args)
	return nil
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"dash",
		"body weight 60.5",
		"mind save reading",
		"habits check water",
		"archive 123",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"dash", "body weight 60.5", "mind save reading", "habits check water", "archive 123"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q", i, exec.calls[i], want[i])
		}
	}
}

func TestRunREPL_QuitWithoutCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n\nquit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
