package calc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	bigint "github.com/shabbyrobe/go-bigint"
)

// Case is one operation and its expected outcome. Unary cases leave B empty.
// Err, when set, names the error the operation must fail with and Want is
// ignored.
//
//	[[case]]
//	name = "scenario 2"
//	a    = "1000000000000000000"
//	op   = "/"
//	b    = "999999999999999999"
//	want = "1"
type Case struct {
	Name string `toml:"name"`
	A    string `toml:"a"`
	Op   string `toml:"op"`
	B    string `toml:"b"`
	Want string `toml:"want"`
	Err  string `toml:"err"`
}

type caseFile struct {
	Cases []Case `toml:"case"`
}

// Error names accepted in Case.Err.
var errorNames = map[string]error{
	"divide-by-zero": bigint.ErrDivideByZero,
	"invalid-format": bigint.ErrInvalidFormat,
	"unknown-op":     ErrUnknownOp,
	"shift-range":    ErrShiftRange,
}

// LoadFile reads the cases from a TOML file.
func LoadFile(path string) ([]Case, error) {
	var f caseFile
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, Error.New("%s: failed to parse TOML: %v", path, err)
	}
	if err := checkDecoded(meta); err != nil {
		return nil, Error.New("%s: %v", path, err)
	}
	return f.Cases, nil
}

// Load reads cases from TOML text.
func Load(r io.Reader) ([]Case, error) {
	var f caseFile
	meta, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, Error.New("failed to parse TOML: %v", err)
	}
	if err := checkDecoded(meta); err != nil {
		return nil, Error.Wrap(err)
	}
	return f.Cases, nil
}

func checkDecoded(meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func (c Case) String() string {
	var expr string
	if c.B == "" && IsUnary(c.Op) {
		expr = fmt.Sprintf("%s %s", c.Op, c.A)
	} else {
		expr = fmt.Sprintf("%s %s %s", c.A, c.Op, c.B)
	}
	if c.Name != "" {
		return c.Name + ": " + expr
	}
	return expr
}

// Eval runs the operation and returns its textual result.
func (c Case) Eval() (string, error) {
	if c.B == "" && IsUnary(c.Op) {
		return Unary(c.Op, c.A)
	}
	return Binary(c.A, c.Op, c.B)
}

// Check runs the case and reports any disagreement with its expectation.
func (c Case) Check() error {
	got, err := c.Eval()
	if c.Err != "" {
		want, ok := errorNames[c.Err]
		if !ok {
			return Error.New("%s: unknown error name %q", c, c.Err)
		}
		if err == nil {
			return Error.New("%s: got %s, want error %s", c, got, c.Err)
		}
		if !errors.Is(err, want) {
			return Error.New("%s: got error %v, want %s", c, err, c.Err)
		}
		return nil
	}
	if err != nil {
		return Error.New("%s: unexpected error: %v", c, err)
	}
	if got != c.Want {
		return Error.New("%s: got %s, want %s", c, got, c.Want)
	}
	return nil
}
