package bigint

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	apperrors "github.com/agbru/dhcalc/internal/errors"
	"github.com/agbru/dhcalc/internal/logging"
)

// Observer is notified after every operation forwarded by a Math facade.
// Implementations must be safe for concurrent use when shared between
// facades.
type Observer interface {
	Observe(engine EngineName, op Op, elapsed time.Duration, err error)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(engine EngineName, op Op, elapsed time.Duration, err error)

// Observe calls f.
func (f ObserverFunc) Observe(engine EngineName, op Op, elapsed time.Duration, err error) {
	f(engine, op, elapsed, err)
}

type options struct {
	logger    logging.Logger
	observers []Observer
	available func(EngineName) error
}

// Option configures a Math facade.
type Option func(*options)

// WithLogger sets the logger used to report engine selection.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an observer for forwarded operations. It may be
// given more than once.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithAvailability replaces the runtime availability probe. The selection is
// still restricted to the known variants, and a variant reported available
// must also be buildable in this binary.
func WithAvailability(probe func(EngineName) error) Option {
	return func(o *options) { o.available = probe }
}

// Math is the engine facade. It binds one Engine at construction and
// forwards every operation to it for its whole lifetime.
type Math struct {
	engine    Engine
	logger    logging.Logger
	observers []Observer
}

// New constructs a facade bound to the preferred engine, or to the first
// available engine in priority order when preferred is empty.
//
// Parameters:
//   - preferred: An engine name ("gmp", "big") or "" for automatic selection.
//   - opts: Functional options.
//
// Returns:
//   - *Math: The facade.
//   - error: An apperrors.ConfigError if the engine is unknown or unavailable,
//     or if no engine is available at all.
func New(preferred string, opts ...Option) (*Math, error) {
	o := options{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	probe := probeVariant
	if o.available != nil {
		probe = func(v variant) error { return o.available(v.name) }
	}

	v, err := resolve(preferred, probe)
	if err != nil {
		return nil, err
	}
	engine, err := v.build()
	if err != nil {
		return nil, apperrors.NewConfigError("engine %q could not be initialised: %v", v.name, err)
	}

	o.logger.Debug("arithmetic engine selected",
		logging.String("engine", string(v.name)),
		logging.String("requested", preferred))

	return &Math{engine: engine, logger: o.logger, observers: o.observers}, nil
}

// NewWithEngine binds an explicit Engine implementation, bypassing selection.
func NewWithEngine(engine Engine, opts ...Option) *Math {
	o := options{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Math{engine: engine, logger: o.logger, observers: o.observers}
}

// Engine returns the name of the bound engine.
func (m *Math) Engine() EngineName { return m.engine.Name() }

func (m *Math) observe(op Op, start time.Time, errp *error) {
	if len(m.observers) == 0 {
		return
	}
	elapsed := time.Since(start)
	name := m.engine.Name()
	for _, obs := range m.observers {
		obs.Observe(name, op, elapsed, *errp)
	}
}

// Init parses value in base (0 or 2..36) on the bound engine.
func (m *Math) Init(value string, base int) (x Int, err error) {
	defer m.observe(OpInit, time.Now(), &err)
	return m.engine.Init(value, base)
}

// Add returns a + b.
func (m *Math) Add(a, b Int) (x Int, err error) {
	defer m.observe(OpAdd, time.Now(), &err)
	return m.engine.Add(a, b)
}

// Subtract returns a - b.
func (m *Math) Subtract(a, b Int) (x Int, err error) {
	defer m.observe(OpSubtract, time.Now(), &err)
	return m.engine.Subtract(a, b)
}

// Compare returns -1, 0 or +1.
func (m *Math) Compare(a, b Int) (c int, err error) {
	defer m.observe(OpCompare, time.Now(), &err)
	return m.engine.Compare(a, b)
}

// Divide returns a / b truncated toward zero.
func (m *Math) Divide(a, b Int) (x Int, err error) {
	defer m.observe(OpDivide, time.Now(), &err)
	return m.engine.Divide(a, b)
}

// Modulus returns the Euclidean remainder of a modulo n.
func (m *Math) Modulus(a, n Int) (x Int, err error) {
	defer m.observe(OpModulus, time.Now(), &err)
	return m.engine.Modulus(a, n)
}

// Multiply returns a * b.
func (m *Math) Multiply(a, b Int) (x Int, err error) {
	defer m.observe(OpMultiply, time.Now(), &err)
	return m.engine.Multiply(a, b)
}

// Pow returns a**e.
func (m *Math) Pow(a, e Int) (x Int, err error) {
	defer m.observe(OpPow, time.Now(), &err)
	return m.engine.Pow(a, e)
}

// PowMod returns a**e mod n.
func (m *Math) PowMod(a, e, n Int) (x Int, err error) {
	defer m.observe(OpPowMod, time.Now(), &err)
	return m.engine.PowMod(a, e, n)
}

// Sqrt returns the floor of the square root of a.
func (m *Math) Sqrt(a Int) (x Int, err error) {
	defer m.observe(OpSqrt, time.Now(), &err)
	return m.engine.Sqrt(a)
}

// Result is the outcome of Invoke. Order holds the result of compare; Value
// holds the result of every other operation.
type Result struct {
	Op    Op
	Value Int
	Order int
}

// String renders the result in base 10.
func (r Result) String() string {
	if r.Op == OpCompare {
		return strconv.Itoa(r.Order)
	}
	return r.Value.String()
}

// Invoke dispatches an operation by name.
//
// The name is validated against the capability set first, then the operand
// count. Operands may be Int, string (base 10), int, int64, uint64 or
// *big.Int; for init the operands are the literal and an optional base.
// Engine errors are returned unchanged.
func (m *Math) Invoke(name string, args ...any) (Result, error) {
	op, ok := ParseOp(name)
	if !ok {
		return Result{}, apperrors.UnsupportedOperationError{Engine: string(m.Engine()), Operation: name}
	}
	minArgs, maxArgs := op.Arity()
	if len(args) < minArgs || len(args) > maxArgs {
		return Result{}, apperrors.ValidationError{
			Field:   string(op),
			Message: arityMessage(minArgs, maxArgs, len(args)),
		}
	}

	if op == OpInit {
		return m.invokeInit(args)
	}

	operands := make([]Int, len(args))
	for i, arg := range args {
		x, err := m.operand(arg)
		if err != nil {
			return Result{}, err
		}
		operands[i] = x
	}

	res := Result{Op: op}
	var err error
	switch op {
	case OpAdd:
		res.Value, err = m.Add(operands[0], operands[1])
	case OpSubtract:
		res.Value, err = m.Subtract(operands[0], operands[1])
	case OpCompare:
		res.Order, err = m.Compare(operands[0], operands[1])
	case OpDivide:
		res.Value, err = m.Divide(operands[0], operands[1])
	case OpModulus:
		res.Value, err = m.Modulus(operands[0], operands[1])
	case OpMultiply:
		res.Value, err = m.Multiply(operands[0], operands[1])
	case OpPow:
		res.Value, err = m.Pow(operands[0], operands[1])
	case OpPowMod:
		res.Value, err = m.PowMod(operands[0], operands[1], operands[2])
	case OpSqrt:
		res.Value, err = m.Sqrt(operands[0])
	}
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (m *Math) invokeInit(args []any) (Result, error) {
	literal, ok := args[0].(string)
	if !ok {
		return Result{}, apperrors.ValidationError{Field: "init", Message: fmt.Sprintf("literal must be a string, got %T", args[0])}
	}
	base := 10
	if len(args) == 2 {
		switch b := args[1].(type) {
		case int:
			base = b
		case string:
			n, err := strconv.Atoi(b)
			if err != nil {
				return Result{}, apperrors.ValidationError{Field: "init", Message: fmt.Sprintf("base %q is not an integer", b)}
			}
			base = n
		default:
			return Result{}, apperrors.ValidationError{Field: "init", Message: fmt.Sprintf("base must be an int, got %T", args[1])}
		}
	}
	x, err := m.Init(literal, base)
	if err != nil {
		return Result{}, err
	}
	return Result{Op: OpInit, Value: x}, nil
}

// operand converts a dispatch argument into an Int.
func (m *Math) operand(arg any) (Int, error) {
	switch v := arg.(type) {
	case Int:
		return v, nil
	case string:
		return m.Init(v, 10)
	case int:
		return m.Init(strconv.Itoa(v), 10)
	case int64:
		return m.Init(strconv.FormatInt(v, 10), 10)
	case uint64:
		return m.Init(strconv.FormatUint(v, 10), 10)
	case *big.Int:
		if v == nil {
			return Int{}, apperrors.ValidationError{Field: "operand", Message: "nil *big.Int"}
		}
		return m.Init(v.Text(16), 16)
	default:
		return Int{}, apperrors.ValidationError{Field: "operand", Message: fmt.Sprintf("unsupported operand type %T", arg)}
	}
}

func arityMessage(minArgs, maxArgs, got int) string {
	if minArgs == maxArgs {
		return fmt.Sprintf("expects %d operand(s), got %d", minArgs, got)
	}
	return fmt.Sprintf("expects %d to %d operands, got %d", minArgs, maxArgs, got)
}
