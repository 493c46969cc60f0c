package array

import "fmt"

// Table is an ordered set of equal-length named columns.
//
// It satisfies both Array (a positional read yields a name->value row map)
// and Record (columns are projectable by name), which makes it usable as the
// content of any view that supports column projection.
type Table struct {
	names  []string
	cols   map[string]Array
	length int
}

var (
	_ Array  = (*Table)(nil)
	_ Record = (*Table)(nil)
)

// NewTable builds a table from columns in insertion order. All columns must
// have the same length; names must be unique.
func NewTable(names []string, cols []Array) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("array: %d column names for %d columns", len(names), len(cols))
	}

	t := &Table{cols: make(map[string]Array, len(cols))}
	for i, name := range names {
		if _, dup := t.cols[name]; dup {
			return nil, fmt.Errorf("array: duplicate column name %q", name)
		}
		if i == 0 {
			t.length = cols[i].Len()
		} else if cols[i].Len() != t.length {
			return nil, fmt.Errorf("array: column %q has length %d, want %d", name, cols[i].Len(), t.length)
		}
		t.names = append(t.names, name)
		t.cols[name] = cols[i]
	}

	return t, nil
}

func (t *Table) Len() int {
	return t.length
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	return t.names
}

// Field returns the column registered under name.
func (t *Table) Field(name string) (Array, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown column %q", ErrNotRecord, name)
	}

	return col, nil
}

// At returns row i as a name->value map.
func (t *Table) At(i int) (any, error) {
	if err := checkBounds(i, t.length); err != nil {
		return nil, err
	}

	row := make(map[string]any, len(t.names))
	for _, name := range t.names {
		v, err := t.cols[name].At(i)
		if err != nil {
			return nil, err
		}
		row[name] = v
	}

	return row, nil
}

// Set writes a name->value row map into row i. Columns absent from the map
// are left unchanged.
func (t *Table) Set(i int, v any) error {
	if err := checkBounds(i, t.length); err != nil {
		return err
	}

	row, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("array: cannot assign %T to a table row, want map[string]any", v)
	}
	for name, val := range row {
		col, exists := t.cols[name]
		if !exists {
			return fmt.Errorf("%w: unknown column %q", ErrNotRecord, name)
		}
		if err := col.Set(i, val); err != nil {
			return err
		}
	}

	return nil
}
