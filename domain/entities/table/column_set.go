package table

// ColumnSet set of column names known by a table schema
type ColumnSet map[string]bool

func NewColumnSet(columns ...string) ColumnSet {
	cs := make(ColumnSet, len(columns))
	for _, column := range columns {
		cs.Add(column)
	}
	return cs
}

func (cs ColumnSet) Add(column string) {
	cs[column] = true
}

func (cs ColumnSet) Contains(column string) bool {
	return cs[column]
}
