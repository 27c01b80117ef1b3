// Package aoc is a small harness for running Advent of Code solutions, plus
// the parsing, math, grid and interval helpers the solutions share.
// (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
	"tailscale.com/util/mak"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// function declarations of every non-test Go file in fsys, keyed by function
// name. A sample without input reuses the previous sample's input from the
// same file.
func extractSamples(fsys fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, errors.Wrap(err, "listing sources")
	}
	slices.Sort(names)
	fset := token.NewFileSet()
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s to extract samples", name)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

// Puzzle is the state of one day while its parts run. Solvers embed a
// *Puzzle and read their input through it.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte
	parsed  map[parseKey]any
}

// Input returns the input of the running part: the part's sample in sample
// mode, and the contents of <input dir>/<day>.input otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		dir := Or(flagInputDir, strconv.Itoa(p.year))
		name := filepath.Join(dir, fmt.Sprintf("%d.input", p.day.day))
		b, err := os.ReadFile(name)
		if err != nil {
			log.Fatalf("reading input for day %d: %v", p.day.day, err)
		}
		p.input = b
	}
	return p.input
}

// Text returns Input as a string.
func (p *Puzzle) Text() string {
	return string(p.Input())
}

// Scanner returns a line scanner over Input.
func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input along with its row number,
// starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type parseKey struct {
	fn  uintptr
	sum deephash.Sum
}

// Parse returns parse(p.Text()), aborting if parse fails. Results are cached
// per parse function and input content, so the parts of a day share a single
// parse. Callers must not modify the returned value.
func Parse[T any](p *Puzzle, parse func(string) (T, error)) T {
	in := p.Text()
	k := parseKey{
		fn:  reflect.ValueOf(parse).Pointer(),
		sum: deephash.Hash(&in),
	}
	if v, ok := p.parsed[k]; ok {
		return v.(T)
	}
	v := MustGet(parse(in))
	mak.Set(&p.parsed, k, any(v))
	return v
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// label formats the part the way answers are printed, e.g. "01".
func (ps partSolver) label() string {
	if len(ps.Part) == 1 {
		return "0" + ps.Part
	}
	return ps.Part
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i).Interface().(func() any)
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagInputDir   string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputDir, "input", "", "directory holding <day>.input files; defaults to the year")
}

var initFlags = sync.OnceFunc(flag.Parse)

// attach points slvr's embedded Puzzle at p.
func attach(slvr any, p *Puzzle) {
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
}

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	attach(slvr, &p)
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("Part %s: %v ❌; want %v\n", ps.label(), got, sample.want)
					return
				}
				fmt.Printf("Part %s sample: %v ✅ (%v)\n", ps.label(), got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("Part %s: %v (took %v)\n", ps.label(), got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// CheckSamples runs every part of slvr against the sample found in its doc
// comment in fsys and reports the first part whose answer does not match.
func CheckSamples(fsys fs.FS, slvr any) error {
	samples, err := extractSamples(fsys)
	if err != nil {
		return err
	}
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		p := Puzzle{
			day:        days[d],
			samples:    samples,
			SampleMode: true,
		}
		attach(slvr, &p)
		for _, ps := range days[d].parts {
			s, ok := samples[ps.Name]
			if !ok {
				return errors.Errorf("no sample found for %v", ps.Name)
			}
			p.solver = ps
			if got := fmt.Sprint(ps.fn()); got != s.want {
				return errors.Errorf("%s: got %v; want %v", ps.Name, got, s.want)
			}
		}
	}
	return nil
}

// Run solves the puzzles of year registered as methods on slvr, taking
// samples from the Go sources in fsys. Flags choose the day and part.
func Run(year int, fsys fs.FS, slvr any) {
	samples, err := extractSamples(fsys)
	if err != nil {
		log.Fatal(err)
	}
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
