package array

import "fmt"

// MaskedSlice pairs a value array with a validity mask of either polarity.
//
// When maskedWhenTrue is true, mask[i] == true marks position i as missing;
// when false, mask[i] == true marks it as valid. Null normalizes the
// polarity, so consumers never need to know which convention the producer
// used.
type MaskedSlice struct {
	values         Array
	mask           []bool
	maskedWhenTrue bool
}

var _ NullSource = (*MaskedSlice)(nil)

// NewMaskedSlice wraps values and mask without copying. The mask must match
// the value length.
func NewMaskedSlice(values Array, mask []bool, maskedWhenTrue bool) (*MaskedSlice, error) {
	if values.Len() != len(mask) {
		return nil, fmt.Errorf("array: mask length %d does not match value length %d", len(mask), values.Len())
	}

	return &MaskedSlice{values: values, mask: mask, maskedWhenTrue: maskedWhenTrue}, nil
}

func (m *MaskedSlice) Len() int {
	return len(m.mask)
}

// Null reports whether position i is missing, regardless of mask polarity.
func (m *MaskedSlice) Null(i int) bool {
	return m.mask[i] == m.maskedWhenTrue
}

func (m *MaskedSlice) At(i int) (any, error) {
	if err := checkBounds(i, len(m.mask)); err != nil {
		return nil, err
	}
	if m.Null(i) {
		return Missing, nil
	}

	return m.values.At(i)
}

func (m *MaskedSlice) Set(i int, v any) error {
	if err := checkBounds(i, len(m.mask)); err != nil {
		return err
	}
	if IsMissing(v) {
		m.mask[i] = m.maskedWhenTrue
		return nil
	}
	m.mask[i] = !m.maskedWhenTrue

	return m.values.Set(i, v)
}
