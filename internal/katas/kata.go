// Package katas contains the demonstration programs. Each kata narrates one functional idiom, printing
// annotated results to its writer. Katas are run by the programs under cmd, one program per kata.
package katas

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/rs/zerolog"

	"github.com/deadlyengineer/functional-streams-with-go/internal/config"
)

// Env is passed to every kata.
type Env struct {
	// Out receives the narration.
	Out io.Writer

	// Log receives diagnostics. It never writes to Out.
	Log zerolog.Logger

	Config *config.Config
}

// A Kata is a demonstration program.
type Kata func(ctx context.Context, env *Env) error

var registry = map[string]Kata{
	"biconsumers":               BiConsumers,
	"bifunctions":               BiFunctions,
	"binaryoperators":           BinaryOperators,
	"bipredicates":              BiPredicates,
	"collectors":                Collectors,
	"consumers":                 Consumers,
	"functionalinterfaces":      FunctionalInterfaces,
	"functionchaining":          FunctionChaining,
	"functions":                 Functions,
	"methodreferences":          MethodReferences,
	"optionals":                 Optionals,
	"overview":                  Overview,
	"parallelstreams":           ParallelStreams,
	"predicates":                Predicates,
	"streams":                   Streams,
	"streamscollectorsoptional": StreamsCollectorsOptional,
	"suppliers":                 Suppliers,
	"suppliersadvanced":         SuppliersAdvanced,
	"suppliervsdirect":          SupplierVsDirect,
	"unaryoperators":            UnaryOperators,
}

// Lookup returns the kata with the given name.
func Lookup(name string) (Kata, bool) {
	kata, ok := registry[name]
	return kata, ok
}

// Names returns the names of all katas, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// printer writes narration. After the first write error, all further writes are skipped,
// and the error is reported by err.
type printer struct {
	w        io.Writer
	err      error
	sections int
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

// section prints a section heading, separated from the previous section by an empty line.
func (p *printer) section(title string) {
	if p.sections > 0 {
		p.println()
	}

	p.sections++

	p.printf("=== %s ===\n", title)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintln(p.w, args...)
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) printLine(s string) {
	p.println(s)
}
