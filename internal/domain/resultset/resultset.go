package resultset

import "sort"

// Row is one flattened media entry: named fields with opaque values.
type Row map[string]any

// ResultSet is an ordered, immutable sequence of result rows with a
// deterministic column order.
type ResultSet struct {
	columns []string
	rows    []Row
}

// Empty returns a ResultSet with zero rows.
func Empty() ResultSet { return ResultSet{} }

// Columns returns the column names in materialization order.
func (rs ResultSet) Columns() []string {
	out := make([]string, len(rs.columns))
	copy(out, rs.columns)
	return out
}

// Rows returns the result rows.
func (rs ResultSet) Rows() []Row {
	out := make([]Row, len(rs.rows))
	copy(out, rs.rows)
	return out
}

// Len returns the number of rows.
func (rs ResultSet) Len() int { return len(rs.rows) }

// mediaItemsKey holds the media entry list inside an export document.
const mediaItemsKey = "media_items"

// metadataEntryType marks entries that carry no media row of their own.
const metadataEntryType = "metadata"

// FromExport flattens a completed job's export document into a ResultSet.
// Metadata-only entries are discarded; every remaining entry becomes one
// row. Column order is first-seen across entries; because Go randomizes
// map iteration, keys within a single entry are registered in sorted order.
func FromExport(doc map[string]any) ResultSet {
	items, ok := doc[mediaItemsKey].([]any)
	if !ok {
		return Empty()
	}

	var (
		columns []string
		seen    = map[string]bool{}
		rows    []Row
	)
	for _, it := range items {
		entry, ok := it.(map[string]any)
		if !ok {
			continue
		}
		if t, _ := entry["type"].(string); t == metadataEntryType {
			continue
		}

		row := Row{}
		flattenInto(row, "", entry)

		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
		rows = append(rows, row)
	}

	return ResultSet{columns: columns, rows: rows}
}

// flattenInto writes nested object fields under dotted keys. Lists and
// scalars are kept as-is.
func flattenInto(row Row, prefix string, obj map[string]any) {
	for k, v := range obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(row, key, nested)
			continue
		}
		row[key] = v
	}
}
