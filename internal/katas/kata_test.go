package katas

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/deadlyengineer/functional-streams-with-go/internal/config"
	"github.com/deadlyengineer/functional-streams-with-go/internal/logging"
)

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

// cancelingWriter cancels its context on the n-th write, after writing it.
type cancelingWriter struct {
	buf    bytes.Buffer
	n      int
	cancel context.CancelFunc
}

func (w *cancelingWriter) Write(b []byte) (int, error) {
	written, err := w.buf.Write(b)

	w.n--
	if w.n == 0 {
		w.cancel()
	}

	return written, err
}

func newTestEnv(out io.Writer) *Env {
	return &Env{
		Out: out,
		Log: logging.Nop(),
		Config: &config.Config{
			Parallel: config.ParallelConfig{Workers: 3},
		},
	}
}

func runForTest(t *testing.T, name string) (string, int) {
	t.Helper()

	kata, ok := Lookup(name)
	if !ok {
		t.Fatalf("kata %s not found", name)
	}

	buf := bytes.Buffer{}
	code := runKata(context.Background(), kata, newTestEnv(&buf))

	return buf.String(), code
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return lines[len(lines)-1]
}

func TestNames(t *testing.T) {
	is := is.New(t)

	names := Names()

	is.Equal(len(names), 20)
	is.Equal(names[0], "biconsumers")
	is.Equal(names[len(names)-1], "unaryoperators")
}

func TestNames_HaveProgram(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			src, err := os.ReadFile(filepath.Join("..", "..", "cmd", name, "main.go"))
			is.NoErr(err)
			is.True(strings.Contains(string(src), `katas.Main("`+name+`")`))
		})
	}
}

func TestKatas_Succeed(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			out, code := runForTest(t, name)

			is.Equal(code, 0)
			is.True(strings.HasPrefix(out, "=== "))
		})
	}
}

func TestKatas_Output(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{
			name: "collectors",
			want: []string{
				"[Alice, Bob, Charlie, Daniel, Eve]",
				"map[London:[Alice (30, London) Bob (20, London)] Berlin:[Charlie (25, Berlin) Daniel (30, Berlin)] Paris:[Eve (35, Paris)]]",
				"map[London:2 Berlin:2 Paris:1]",
				"Mapping city to name fails: duplicate key: London",
			},
		},
		{
			name: "binaryoperators",
			want: []string{"Total sum: 15", "Total product: 120"},
		},
		{
			name: "optionals",
			want: []string{"Name: Alice", "Default Name", "Value not present", "Email1: alice@example.com", "Email2: Optional.empty"},
		},
		{
			name: "streams",
			want: []string{
				"[alice, charlie]",
				"Debug: ALICE",
				"[1, 2, 3, 4, 5]",
				"Fourth to seventh even numbers: [8, 10, 12, 14]",
				"Negative limit fails: Limit: negative count: -1",
			},
		},
		{
			name: "streamscollectorsoptional",
			want: []string{
				"Chicago -> [Bob, David]\nBoston -> [Eve]\nNew York -> [Frank]",
				"Person found: No person found",
				"Total age: 194",
				"Oldest person: Eve (35, Boston)",
				"Count by city: map[New York:3 Chicago:2 Boston:2]",
			},
		},
		{
			name: "parallelstreams",
			want: []string{
				"Processing (sequential): 1\nResult (sequential): 2\nProcessing (sequential): 2",
				"[2, 4, 6, 8, 10, 12, 14, 16, 18, 20]",
			},
		},
		{
			name: "suppliers",
			want: []string{"Hello, Supplier!", "Linked list copy: [Alice, Bob, Charlie]", "Underlying supplier calls: 1"},
		},
		{
			name: "suppliersadvanced",
			want: []string{
				"Short names (<=4 letters): [Bob, Eve]",
				"Generated 2 persons with 2 distinct IDs",
				"Squares of [1, 2, 3, 4, 5] = [1, 4, 9, 16, 25]",
				"Names in set: [Alice, Bob]",
			},
		},
		{
			name: "methodreferences",
			want: []string{"=== Package-level function ===\n42\n"},
		},
		{
			name: "consumers",
			want: []string{"=== Exercise 6: Optional step ===\nAlice\nBob\n"},
		},
		{
			name: "overview",
			want: []string{"Sum: 30", "Short names: [Bob, Eve, Zeki]", "Name starting with Z: Zeki", "ALICE", "Multiply 5 * 6 = 30"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)

			out, code := runForTest(t, test.name)

			is.Equal(code, 0)

			for _, want := range test.want {
				if !strings.Contains(out, want) {
					t.Errorf("output does not contain %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestParallelStreams_ProcessesEveryElement(t *testing.T) {
	is := is.New(t)

	out, code := runForTest(t, "parallelstreams")

	is.Equal(code, 0)
	is.Equal(strings.Count(out, "Processing (parallel):"), 10)
	is.Equal(strings.Count(out, "Result (parallel):"), 10)
}

func TestKatas_CanceledMidway(t *testing.T) {
	tests := []struct {
		name       string
		unexpected string
	}{
		{name: "collectors", unexpected: "=== Count ==="},
		{name: "streams", unexpected: "Debug:"},
		{name: "streamscollectorsoptional", unexpected: "Person found:"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)

			kata, ok := Lookup(test.name)
			is.True(ok)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			w := cancelingWriter{n: 3, cancel: cancel}

			code := runKata(ctx, kata, newTestEnv(&w))

			out := w.buf.String()

			is.Equal(code, 1)
			is.Equal(lastLine(out), context.Canceled.Error())
			is.True(!strings.Contains(out, test.unexpected))
		})
	}
}

func TestConsumers_AuditLog(t *testing.T) {
	is := is.New(t)

	out := bytes.Buffer{}
	logs := bytes.Buffer{}

	env := newTestEnv(&out)
	env.Log = logging.New(logging.Config{Level: "debug", Format: logging.FormatJSON}, &logs)

	code := runKata(context.Background(), Consumers, env)

	is.Equal(code, 0)
	is.Equal(strings.Count(logs.String(), `"message":"audited"`), 2)
	is.True(strings.Contains(logs.String(), `"element":"Bob"`))
}

func TestRunKata_Error(t *testing.T) {
	is := is.New(t)

	buf := bytes.Buffer{}

	code := runKata(context.Background(), func(_ context.Context, env *Env) error {
		p := newPrinter(env.Out)
		p.println("working")

		return errors.New("boom")
	}, newTestEnv(&buf))

	is.Equal(code, 1)
	is.Equal(buf.String(), "working\nboom\n")
}

func TestRun_UnknownKata(t *testing.T) {
	is := is.New(t)

	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}

	code := Run(context.Background(), "nope", &stdout, &stderr)

	is.Equal(code, 1)
	is.Equal(lastLine(stdout.String()), "unknown kata: nope")
	is.True(strings.Contains(stderr.String(), "scenario failed"))
}

func TestRun(t *testing.T) {
	is := is.New(t)

	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}

	code := Run(context.Background(), "overview", &stdout, &stderr)

	is.Equal(code, 0)
	is.True(strings.Contains(stdout.String(), "Sum: 30"))
	is.True(strings.Contains(stderr.String(), "scenario finished"))
	is.True(!strings.Contains(stdout.String(), "scenario"))
}

func TestRun_InvalidConfig(t *testing.T) {
	is := is.New(t)

	t.Setenv("KATAS_PARALLEL_WORKERS", "0")

	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}

	code := Run(context.Background(), "overview", &stdout, &stderr)

	is.Equal(code, 1)
	is.True(strings.HasPrefix(lastLine(stdout.String()), "invalid config: "))
	is.Equal(stderr.Len(), 0)
}

func TestPrinter_StickyError(t *testing.T) {
	is := is.New(t)

	w := failingWriter{}
	p := newPrinter(&w)

	p.section("first")
	p.println("skipped")
	p.printf("%s\n", "skipped")

	is.Equal(w.writes, 1)
	is.Equal(p.err.Error(), "disk full")
}

func TestPrinter_Sections(t *testing.T) {
	is := is.New(t)

	buf := bytes.Buffer{}
	p := newPrinter(&buf)

	p.section("one")
	p.println("a")
	p.section("two")
	p.println("b")

	is.NoErr(p.err)
	is.Equal(buf.String(), "=== one ===\na\n\n=== two ===\nb\n")
}
