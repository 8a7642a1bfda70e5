package reader

// Table is a labeled column-ordered view over materialized rows. Field
// names are the selected column labels; rows are carried unchanged.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func NewTable(rows []Row, cols Columns) *Table {
	return &Table{
		Columns: cols.Labels(),
		Rows:    rows,
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
