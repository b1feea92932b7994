// Package perm translates chmod mode expressions into numeric modes.
//
// A symbolic expression such as "u+rwx" or "go-w" is split into a category
// set (u, g, o, a), an operator (+, -) and a capability set (r, w, x).
// Characters outside those buckets are ignored. The capability weights
// (r=4, w=2, x=1) form one octal digit that is written into the digit of
// every selected category; "a" selects all three, on top of any other letter.
//
// An expression made only of decimal digits is read as an octal literal and
// replaces the mode outright.
package perm

import (
	"fmt"
	"strconv"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
)

const applet = "chmod"

// Mode is a numeric file mode: the nine rwx bits plus setuid, setgid and sticky.
type Mode uint32

// MaxMode is the largest mode an octal literal may name.
const MaxMode Mode = 0o7777

func (m Mode) String() string {
	return fmt.Sprintf("%04o", uint32(m))
}

// Category is a set of permission classes.
type Category uint8

const (
	User Category = 1 << iota
	Group
	Other
	All
)

// Capability is a set of permissions. Its value is already the octal digit.
type Capability uint8

const (
	Execute Capability = 1
	Write   Capability = 2
	Read    Capability = 4
)

// Operator combines the current mode with the expression's delta.
type Operator byte

const (
	Add      Operator = '+'
	Subtract Operator = '-'
)

// Subtraction selects how Subtract clears bits.
type Subtraction int

const (
	// Toggle flips the delta bits (XOR). Bits that were already clear get
	// set, which is what the utility has always done.
	Toggle Subtraction = iota
	// Clear removes the delta bits (AND NOT).
	Clear
)

// ParseSubtraction maps a config value ("toggle", "clear") to a Subtraction.
func ParseSubtraction(s string) (Subtraction, error) {
	switch s {
	case "", "toggle", "xor":
		return Toggle, nil
	case "clear", "and-not":
		return Clear, nil
	default:
		return Toggle, fmt.Errorf("unknown subtraction mode %q", s)
	}
}

// Expression is a parsed mode expression.
type Expression struct {
	Categories   Category
	Op           Operator
	Capabilities Capability

	// Literal holds the mode of a numeric expression.
	Literal Mode
	Numeric bool
}

// Parse decomposes expr. It only fails for operators it cannot apply and for
// numeric expressions that are not valid octal modes.
func Parse(expr string) (Expression, error) {
	if isDecimal(expr) {
		return parseLiteral(expr)
	}

	e := Expression{Op: Add}
	for _, c := range expr {
		switch c {
		case 'u':
			e.Categories |= User
		case 'g':
			e.Categories |= Group
		case 'o':
			e.Categories |= Other
		case 'a':
			e.Categories |= All
		case 'r':
			e.Capabilities |= Read
		case 'w':
			e.Capabilities |= Write
		case 'x':
			e.Capabilities |= Execute
		case '+', '-', '=':
			e.Op = Operator(c)
		}
	}
	if e.Op != Add && e.Op != Subtract {
		return Expression{}, core.Validation(applet, fmt.Sprintf("unsupported operator '%c' in %q", e.Op, expr))
	}
	return e, nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseLiteral(expr string) (Expression, error) {
	v, err := strconv.ParseUint(expr, 8, 32)
	if err != nil {
		return Expression{}, core.Validation(applet, fmt.Sprintf("invalid mode: %q", expr))
	}
	if Mode(v) > MaxMode {
		return Expression{}, core.Validation(applet, fmt.Sprintf("mode out of range: %q", expr))
	}
	return Expression{Numeric: true, Literal: Mode(v)}, nil
}

// Delta returns the three-digit octal value the expression contributes.
func (e Expression) Delta() Mode {
	if e.Numeric {
		return e.Literal
	}
	digit := Mode(e.Capabilities)
	var m Mode
	if e.Categories&(User|All) != 0 {
		m |= digit << 6
	}
	if e.Categories&(Group|All) != 0 {
		m |= digit << 3
	}
	if e.Categories&(Other|All) != 0 {
		m |= digit
	}
	return m
}

// Apply combines the current mode with the expression.
func (e Expression) Apply(current Mode, sub Subtraction) Mode {
	if e.Numeric {
		return e.Literal
	}
	delta := e.Delta()
	switch {
	case e.Op == Subtract && sub == Clear:
		return current &^ delta
	case e.Op == Subtract:
		return current ^ delta
	default:
		return current | delta
	}
}

type options struct {
	sub Subtraction
}

// Option configures Translate.
type Option func(*options)

// WithSubtraction selects how the '-' operator clears bits.
func WithSubtraction(s Subtraction) Option {
	return func(o *options) { o.sub = s }
}

// Translate computes the mode targetPath should get for expr. It reads the
// current mode for symbolic expressions and never modifies the filesystem.
func Translate(expr, targetPath string, opts ...Option) (Mode, error) {
	o := options{sub: Toggle}
	for _, opt := range opts {
		opt(&o)
	}

	e, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	if e.Numeric {
		return e.Literal, nil
	}

	current, err := fs.Mode(targetPath)
	if err != nil {
		return 0, core.Lookup(targetPath, err)
	}
	return e.Apply(Mode(current), o.sub), nil
}
