package testutil

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/sqve/arbor/internal/process"
)

// Call is one command recorded by FakeRunner.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Line renders the call the way responses are keyed: "git worktree list --porcelain".
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// FakeRunner is a scripted process.Runner. Responses are keyed by the
// command line; an exact key wins, otherwise the longest matching prefix.
// Queued responses for a key are consumed in order and the last one repeats.
type FakeRunner struct {
	mu        sync.Mutex
	Calls     []Call
	responses map[string][]fakeResponse
}

type fakeResponse struct {
	result process.Result
	err    error
}

func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string][]fakeResponse)}
}

// On queues a successful response with the given stdout.
func (f *FakeRunner) On(key, stdout string) *FakeRunner {
	return f.OnResult(key, process.Result{Stdout: stdout})
}

// OnExit queues a failed response with the given exit code and stderr.
func (f *FakeRunner) OnExit(key string, exitCode int, stderr string) *FakeRunner {
	return f.OnResult(key, process.Result{ExitCode: exitCode, Stderr: stderr})
}

// OnError queues a spawn failure.
func (f *FakeRunner) OnError(key string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[key] = append(f.responses[key], fakeResponse{err: err})
	return f
}

func (f *FakeRunner) OnResult(key string, res process.Result) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[key] = append(f.responses[key], fakeResponse{result: res})
	return f
}

func (f *FakeRunner) Run(dir, name string, args ...string) (process.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := Call{Dir: dir, Name: name, Args: slices.Clone(args)}
	f.Calls = append(f.Calls, call)
	line := call.Line()

	key, ok := f.match(line)
	if !ok {
		return process.Result{ExitCode: 127, Stderr: "fake: unhandled command"}, fmt.Errorf("fake: unhandled command: %s", line)
	}

	queue := f.responses[key]
	resp := queue[0]
	if len(queue) > 1 {
		f.responses[key] = queue[1:]
	}
	return resp.result, resp.err
}

func (f *FakeRunner) match(line string) (string, bool) {
	if _, ok := f.responses[line]; ok {
		return line, true
	}
	best := ""
	for key := range f.responses {
		if strings.HasPrefix(line, key+" ") && len(key) > len(best) {
			best = key
		}
	}
	return best, best != ""
}

// Lines returns every recorded command line in order.
func (f *FakeRunner) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.Line())
	}
	return lines
}

// Ran reports whether a command line starting with prefix was executed.
func (f *FakeRunner) Ran(prefix string) bool {
	return f.Index(prefix) >= 0
}

// Index returns the position of the first command line starting with prefix, or -1.
func (f *FakeRunner) Index(prefix string) int {
	for i, line := range f.Lines() {
		if line == prefix || strings.HasPrefix(line, prefix+" ") {
			return i
		}
	}
	return -1
}

// CallFor returns the first recorded call whose line starts with prefix.
func (f *FakeRunner) CallFor(prefix string) (Call, bool) {
	i := f.Index(prefix)
	if i < 0 {
		return Call{}, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[i], true
}
