package virtual

import (
	"errors"

	"github.com/arloliu/ragged/array"
)

// ObjectGenerator constructs one object from the content element at a
// logical position. It runs on every read; results are never cached.
type ObjectGenerator func(element any) (any, error)

// Object is a per-element lazy array: each read pulls the corresponding
// content element and passes it through the generator. It is permanently
// read-only and holds no cache of its own.
type Object struct {
	gen     ObjectGenerator
	content array.Array
}

var _ array.Array = (*Object)(nil)

// NewObject creates an object array over content. The content must be
// convertible via array.As.
func NewObject(gen ObjectGenerator, content any) (*Object, error) {
	if gen == nil {
		return nil, errors.New("virtual: generator must be a callable of one argument")
	}
	arr, err := array.As(content)
	if err != nil {
		return nil, err
	}

	return &Object{gen: gen, content: arr}, nil
}

// Content returns the backing content array.
func (o *Object) Content() array.Array { return o.content }

func (o *Object) Len() int { return o.content.Len() }

// At constructs the object for position i by invoking the generator on the
// corresponding content element.
func (o *Object) At(i int) (any, error) {
	elem, err := o.content.At(i)
	if err != nil {
		return nil, err
	}

	return o.gen(elem)
}

// Take constructs one object per selected position.
func (o *Object) Take(positions []int) ([]any, error) {
	out := make([]any, 0, len(positions))
	for _, p := range positions {
		obj, err := o.At(p)
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}

	return out, nil
}

// Set always fails: object arrays are permanently read-only.
func (o *Object) Set(int, any) error {
	return ErrReadOnly
}

// Writeable always reports false.
func (o *Object) Writeable() bool { return false }
