package linop

// Operator — matrix-free linear map
//
// Description:
//
//	An Operator represents a linear transformation T of shape Rows×Cols
//	without materializing its matrix. Apply computes T·x for a vector x of
//	length Cols; ApplyAdjoint computes Tᵀ·y for a vector y of length Rows.
//	The algebraic contract is adjointness: <T·x, y> = <x, Tᵀ·y> for all
//	x, y — and, for the operators in this module, the stronger bit-for-bit
//	guarantee Dense(T)ᵀ == Dense(Tᵀ) (see AdjointExact).
//
// Contract:
//   - Apply and ApplyAdjoint allocate their results; inputs are read-only.
//   - Implementations hold no mutable state: calls are independent,
//     deterministic, and safe from concurrent call sites.
//   - Length mismatches surface as the implementation's sentinel error,
//     never as silent truncation or padding.
type Operator interface {
	// Apply computes T·x. len(x) must equal Cols(); the result has length Rows().
	Apply(x []float64) ([]float64, error)

	// ApplyAdjoint computes Tᵀ·y. len(y) must equal Rows(); the result has length Cols().
	ApplyAdjoint(y []float64) ([]float64, error)

	// Rows returns the output dimension of Apply.
	Rows() int

	// Cols returns the input dimension of Apply.
	Cols() int

	// Name returns a fixed identifying string for introspection.
	Name() string
}

// transposed is the O(1) adjoint view of an Operator: roles of Apply and
// ApplyAdjoint are swapped and the shape is flipped.
type transposed struct {
	op Operator
}

func (t *transposed) Apply(x []float64) ([]float64, error)        { return t.op.ApplyAdjoint(x) }
func (t *transposed) ApplyAdjoint(y []float64) ([]float64, error) { return t.op.Apply(y) }
func (t *transposed) Rows() int                                   { return t.op.Cols() }
func (t *transposed) Cols() int                                   { return t.op.Rows() }
func (t *transposed) Name() string                                { return t.op.Name() + "'" }

// Transpose returns the adjoint view of op: Transpose(op).Apply(y) is
// exactly op.ApplyAdjoint(y), with no extra computation or copying.
// Transposing a transposed view unwraps it, so Transpose(Transpose(op))
// returns op itself.
// Complexity: O(1).
func Transpose(op Operator) Operator {
	if t, ok := op.(*transposed); ok {
		return t.op
	}

	return &transposed{op: op}
}

// Func is a closure-backed Operator: a pair of pure functions plus shape
// metadata. It exists for callers that build linear maps ad hoc (tests,
// compositions) without defining a named type.
type Func struct {
	name       string
	rows, cols int
	apply      func(x []float64) ([]float64, error)
	adjoint    func(y []float64) ([]float64, error)
}

// NewFunc wraps (apply, adjoint) as an Operator with the given name and
// shape. Returns ErrBadShape for non-positive dimensions and ErrNilOperator
// when either function is nil.
func NewFunc(name string, rows, cols int,
	apply, adjoint func([]float64) ([]float64, error)) (*Func, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if apply == nil || adjoint == nil {
		return nil, ErrNilOperator
	}

	return &Func{name: name, rows: rows, cols: cols, apply: apply, adjoint: adjoint}, nil
}

// Apply computes T·x via the wrapped closure.
func (f *Func) Apply(x []float64) ([]float64, error) { return f.apply(x) }

// ApplyAdjoint computes Tᵀ·y via the wrapped closure.
func (f *Func) ApplyAdjoint(y []float64) ([]float64, error) { return f.adjoint(y) }

// Rows returns the declared output dimension.
func (f *Func) Rows() int { return f.rows }

// Cols returns the declared input dimension.
func (f *Func) Cols() int { return f.cols }

// Name returns the identifying string passed to NewFunc.
func (f *Func) Name() string { return f.name }
