package view

import "github.com/arloliu/ragged/array"

// operandKind is the closed set of write-operand shapes accepted by masked
// bulk writes. Classification happens once per call; the write loops branch
// on the resolved kind instead of re-detecting the operand per position.
type operandKind uint8

const (
	// operandScalar is a bare value broadcast to every target position.
	operandScalar operandKind = iota + 1
	// operandMissing is the bare missing marker, or a length-1 wrapper
	// containing one.
	operandMissing
	// operandSingleton is a length-1 wrapper containing one real value.
	operandSingleton
	// operandNullSource is a source carrying its own validity mask, in
	// either polarity, already normalized.
	operandNullSource
	// operandSequence is a plain sequence mixing per-element missing
	// markers with real values.
	operandSequence
	// operandPlain is a markerless sequence of real values.
	operandPlain
)

// operand is a classified write operand. For the sequence-shaped kinds,
// values holds every element (nil at null positions) and null holds the
// normalized missing mask.
type operand struct {
	kind   operandKind
	value  any
	values []any
	null   []bool
}

func (o operand) len() int {
	return len(o.values)
}

// classifyOperand resolves what into one of the closed operand kinds.
//
// A source implementing array.NullSource keeps its own mask semantics: its
// Null predicate already normalizes either polarity of "true means valid"
// versus "true means null". Plain sequences are scanned for embedded missing
// markers; a sequence with none is markerless.
func classifyOperand(what any) (operand, error) {
	if array.IsMissing(what) {
		return operand{kind: operandMissing}, nil
	}

	if ns, ok := what.(array.NullSource); ok {
		if ns.Len() == 1 {
			return classifySingleton(ns)
		}

		return normalizeNullSource(ns)
	}

	arr, err := array.As(what)
	if err != nil {
		// Not array-like at all: a bare scalar to broadcast.
		return operand{kind: operandScalar, value: what}, nil
	}

	if arr.Len() == 1 {
		return classifySingleton(arr)
	}

	values := make([]any, arr.Len())
	null := make([]bool, arr.Len())
	mixed := false
	for i := range values {
		v, aerr := arr.At(i)
		if aerr != nil {
			return operand{}, aerr
		}
		if array.IsMissing(v) {
			null[i] = true
			mixed = true
		} else {
			values[i] = v
		}
	}

	if mixed {
		return operand{kind: operandSequence, values: values, null: null}, nil
	}

	return operand{kind: operandPlain, values: values}, nil
}

func classifySingleton(arr array.Array) (operand, error) {
	v, err := arr.At(0)
	if err != nil {
		return operand{}, err
	}
	if array.IsMissing(v) {
		return operand{kind: operandMissing}, nil
	}

	return operand{kind: operandSingleton, value: v}, nil
}

func normalizeNullSource(ns array.NullSource) (operand, error) {
	values := make([]any, ns.Len())
	null := make([]bool, ns.Len())
	for i := range values {
		if ns.Null(i) {
			null[i] = true
			continue
		}
		v, err := ns.At(i)
		if err != nil {
			return operand{}, err
		}
		values[i] = v
	}

	return operand{kind: operandNullSource, values: values, null: null}, nil
}
