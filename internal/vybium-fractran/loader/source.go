// Package loader reads Fractran programs from text, YAML documents and the
// built-in catalogue, and turns them into executable programs.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vybium/vybium-fractran/internal/vybium-fractran/core"
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/vm"
)

// ErrMalformedFraction is returned for tokens that are not "n/d".
var ErrMalformedFraction = errors.New("malformed fraction")

// Pair is a numerator/denominator pair as written in a program source.
type Pair struct {
	Num uint64
	Den uint64
}

// String renders the pair as "n/d"
func (p Pair) String() string {
	return fmt.Sprintf("%d/%d", p.Num, p.Den)
}

// Source is a program description as stored in a YAML document.
type Source struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Fractions   []string `yaml:"fractions"`
	Input       uint64   `yaml:"input,omitempty"`
	MaxRegs     uint16   `yaml:"max_regs,omitempty"`
	MaxSteps    uint64   `yaml:"max_steps,omitempty"`
}

// Pairs parses the source's fraction list.
func (s *Source) Pairs() ([]Pair, error) {
	if len(s.Fractions) == 0 {
		return nil, fmt.Errorf("program %q: %w", s.Name, vm.ErrEmptyProgram)
	}
	pairs := make([]Pair, 0, len(s.Fractions))
	for i, tok := range s.Fractions {
		p, err := ParsePair(tok)
		if err != nil {
			return nil, fmt.Errorf("program %q, fraction %d: %w", s.Name, i, err)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// ParsePair parses a single "n/d" token. A bare integer n means n/1.
func ParsePair(tok string) (Pair, error) {
	tok = strings.TrimSpace(tok)
	numStr, denStr, found := strings.Cut(tok, "/")
	if !found {
		denStr = "1"
	}

	num, err := strconv.ParseUint(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Pair{}, fmt.Errorf("%w %q: %v", ErrMalformedFraction, tok, err)
	}
	den, err := strconv.ParseUint(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return Pair{}, fmt.Errorf("%w %q: %v", ErrMalformedFraction, tok, err)
	}
	if num == 0 || den == 0 {
		return Pair{}, fmt.Errorf("fraction %q: %w", tok, core.ErrZeroValue)
	}
	return Pair{Num: num, Den: den}, nil
}

// ParseFractions parses fractions separated by whitespace or commas. Text
// after '#' on a line is a comment.
func ParseFractions(text string) ([]Pair, error) {
	var tokens []string
	for _, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})...)
	}
	if len(tokens) == 0 {
		return nil, vm.ErrEmptyProgram
	}

	pairs := make([]Pair, 0, len(tokens))
	for _, tok := range tokens {
		p, err := ParsePair(tok)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// FromPairs wraps parsed pairs in an anonymous Source.
func FromPairs(name string, pairs []Pair) *Source {
	fracs := make([]string, len(pairs))
	for i, p := range pairs {
		fracs[i] = p.String()
	}
	return &Source{Name: name, Fractions: fracs}
}

// LoadYAML decodes a YAML program document and checks its fractions.
func LoadYAML(r io.Reader) (*Source, error) {
	var src Source
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&src); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty program document: %w", vm.ErrEmptyProgram)
		}
		return nil, fmt.Errorf("failed to decode program: %w", err)
	}
	if _, err := src.Pairs(); err != nil {
		return nil, err
	}
	return &src, nil
}

// LoadFile reads a program from path. Files ending in .yaml or .yml are YAML
// documents; anything else is plain fraction text.
func LoadFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open program: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		src, err := LoadYAML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if src.Name == "" {
			src.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		return src, nil
	default:
		text, err := io.ReadAll(bufio.NewReader(f))
		if err != nil {
			return nil, fmt.Errorf("failed to read program: %w", err)
		}
		pairs, err := ParseFractions(string(text))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return FromPairs(filepath.Base(path), pairs), nil
	}
}

// Build turns pairs into a program over T using newT for each side.
// Representation failures such as *core.RegisterOverflowError are returned
// with the offending fraction's position.
func Build[T core.Nat[T]](pairs []Pair, newT core.Constructor[T]) (*vm.Program[T], error) {
	if len(pairs) == 0 {
		return nil, vm.ErrEmptyProgram
	}

	fracs := make([]vm.Fraction[T], 0, len(pairs))
	for i, p := range pairs {
		num, err := newT(p.Num)
		if err != nil {
			return nil, fmt.Errorf("fraction %d (%s) numerator: %w", i, p, err)
		}
		den, err := newT(p.Den)
		if err != nil {
			return nil, fmt.Errorf("fraction %d (%s) denominator: %w", i, p, err)
		}
		fracs = append(fracs, vm.NewFraction(num, den))
	}
	return vm.NewProgram(fracs), nil
}

// BuildNative builds a program over native integers
func BuildNative(pairs []Pair) (*vm.Program[core.Uint], error) {
	return Build[core.Uint](pairs, core.NewUint)
}

// BuildBasis builds a program over factorized integers
func BuildBasis(pairs []Pair) (*vm.Program[core.Basis], error) {
	return Build[core.Basis](pairs, core.NewBasis)
}
