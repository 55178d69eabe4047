// Schema DDL for the annotation catalog database.
package catalog

const createAnnotations = `CREATE TABLE IF NOT EXISTS annotations (
    annotation_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    location TEXT NOT NULL,
    refid TEXT NOT NULL,
    start_pos INTEGER NOT NULL,
    end_pos INTEGER NOT NULL,
    strand TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

const idxAnnotationsSpan = `CREATE INDEX IF NOT EXISTS idx_annotations_span
    ON annotations(refid, start_pos, end_pos);`

// schemaDDL lists the statements run on every Open, in order.
var schemaDDL = []string{
	createAnnotations,
	idxAnnotationsSpan,
}
