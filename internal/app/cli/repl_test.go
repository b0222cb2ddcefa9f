package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.loggedIn = true
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error        { return f.record("whoami") }
func (f *fakeExec) DeleteAccount(ctx context.Context) error { return f.record("deleteaccount") }
func (f *fakeExec) Grades(ctx context.Context) error        { return f.record("grades") }
func (f *fakeExec) UpdateScore(ctx context.Context) error   { return f.record("updatescore") }
func (f *fakeExec) AddGoal(ctx context.Context) error       { return f.record("addgoal") }
func (f *fakeExec) Goals(ctx context.Context) error         { return f.record("goals") }
func (f *fakeExec) EditGoal(ctx context.Context) error      { return f.record("editgoal") }
func (f *fakeExec) CompleteGoal(ctx context.Context) error  { return f.record("complete") }
func (f *fakeExec) DeleteGoal(ctx context.Context) error    { return f.record("deletegoal") }
func (f *fakeExec) AddItem(ctx context.Context) error       { return f.record("additem") }
func (f *fakeExec) Portfolio(ctx context.Context) error     { return f.record("portfolio") }
func (f *fakeExec) DeleteItem(ctx context.Context) error    { return f.record("deleteitem") }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"grades", // not available before login
		"login",
		"help",
		"grades",
		"addgoal",
		"goals",
		"portfolio",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	want := []string{"login", "grades", "addgoal", "goals", "portfolio", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls mismatch at %d: got %v, want %v", i, exec.calls, want)
		}
	}
}

func TestRunREPL_ExitBeforeLogin(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("whoami\nexit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFEndsLoop(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("grades\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if len(exec.calls) != 1 || exec.calls[0] != "grades" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
