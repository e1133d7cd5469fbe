package sheetbind

// Resolve binds each schema field whose key names a column in columns.
// Fields without a column are left out of the bindings and listed in
// Unmatched; that is not an error.
func Resolve[T any](s Schema[T], columns ColumnMap) Resolution[T] {
	var res Resolution[T]
	for _, f := range s.Fields {
		col, ok := columns.Lookup(f.Key())
		if !ok {
			res.Unmatched = append(res.Unmatched, f.Name)
			continue
		}
		res.Bindings = append(res.Bindings, Binding[T]{Field: f, Column: col})
	}
	return res
}
