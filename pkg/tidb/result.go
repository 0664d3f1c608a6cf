// Package tidb executes SQL statements against a TiDB instance through
// one of two interchangeable backends: the stateless Serverless HTTP
// gateway, or a persistent MySQL driver connection.
package tidb

// Column describes a result column: its name and declared type.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Result is the normalized outcome of a single SQL statement.
// Invariant: when Rows is non-empty, every row's length equals
// len(Columns).
type Result struct {
	Columns      []Column   `json:"columns"`
	Rows         [][]string `json:"rows"`
	RowsAffected *int64     `json:"rows_affected,omitempty"`
	LastInsertID string     `json:"last_insert_id,omitempty"`
}

// ToMaps projects rows into column-name-to-value records for display.
// Returns nil when there are no columns or no rows.
func (r *Result) ToMaps() []map[string]string {
	if len(r.Columns) == 0 || len(r.Rows) == 0 {
		return nil
	}
	records := make([]map[string]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		record := make(map[string]string, len(r.Columns))
		for i, col := range r.Columns {
			if i < len(row) {
				record[col.Name] = row[i]
			}
		}
		records = append(records, record)
	}
	return records
}

// ColumnNames returns the ordered column names.
func (r *Result) ColumnNames() []string {
	names := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		names[i] = col.Name
	}
	return names
}
