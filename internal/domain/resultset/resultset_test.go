package resultset

import (
	"reflect"
	"testing"
)

func TestFromExport_SkipsMetadataEntries(t *testing.T) {
	doc := map[string]any{
		"media_items": []any{
			map[string]any{"media_id": "m1", "file_name": "a.jpg"},
			map[string]any{"type": "metadata", "schema_version": "2"},
			map[string]any{"media_id": "m2", "file_name": "b.jpg"},
		},
	}

	rs := FromExport(doc)
	if rs.Len() != 2 {
		t.Fatalf("rows = %d, want 2", rs.Len())
	}
	rows := rs.Rows()
	if rows[0]["media_id"] != "m1" || rows[1]["media_id"] != "m2" {
		t.Errorf("row order lost: %v", rows)
	}
}

func TestFromExport_ColumnOrderFirstSeen(t *testing.T) {
	doc := map[string]any{
		"media_items": []any{
			map[string]any{"file_name": "a.jpg", "media_id": "m1"},
			map[string]any{"media_id": "m2", "width": 640},
		},
	}

	rs := FromExport(doc)
	// Keys of the first entry come first (sorted within the entry),
	// new keys from later entries are appended.
	want := []string{"file_name", "media_id", "width"}
	if got := rs.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
}

func TestFromExport_FlattensNestedObjects(t *testing.T) {
	doc := map[string]any{
		"media_items": []any{
			map[string]any{
				"media_id": "m1",
				"properties": map[string]any{
					"width":  640,
					"height": 480,
				},
			},
		},
	}

	rs := FromExport(doc)
	if rs.Len() != 1 {
		t.Fatalf("rows = %d, want 1", rs.Len())
	}
	row := rs.Rows()[0]
	if row["properties.width"] != 640 || row["properties.height"] != 480 {
		t.Errorf("nested fields not flattened: %v", row)
	}
	if _, ok := row["properties"]; ok {
		t.Error("unflattened nested object left in row")
	}
}

func TestFromExport_KeepsLists(t *testing.T) {
	doc := map[string]any{
		"media_items": []any{
			map[string]any{"media_id": "m1", "labels": []any{"cat", "dog"}},
		},
	}

	rs := FromExport(doc)
	labels, ok := rs.Rows()[0]["labels"].([]any)
	if !ok || len(labels) != 2 {
		t.Errorf("labels = %v, want list of 2", rs.Rows()[0]["labels"])
	}
}

func TestFromExport_MalformedDocument(t *testing.T) {
	for name, doc := range map[string]map[string]any{
		"nil":              nil,
		"no media items":   {"info": "only"},
		"wrong items type": {"media_items": "oops"},
	} {
		rs := FromExport(doc)
		if rs.Len() != 0 {
			t.Errorf("%s: rows = %d, want 0", name, rs.Len())
		}
	}
}

func TestEmpty(t *testing.T) {
	rs := Empty()
	if rs.Len() != 0 || len(rs.Columns()) != 0 || len(rs.Rows()) != 0 {
		t.Error("Empty() is not empty")
	}
}
