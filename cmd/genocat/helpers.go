// Shared helpers for genocat CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mesh-intelligence/biotypes/internal/catalog"
)

// openCatalog resolves the data directory and opens the annotation
// catalog. The caller must defer cat.Close().
func openCatalog() (*catalog.Catalog, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cat, err := catalog.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return cat, nil
}

// annotationJSON is the JSON output shape of one annotation.
type annotationJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

func toJSON(a *catalog.Annotation) annotationJSON {
	return annotationJSON{
		ID:        a.ID,
		Name:      a.Name,
		Location:  a.Location.String(),
		CreatedAt: a.CreatedAt,
	}
}

// printAnnotation writes one annotation to stdout, honoring --json.
func printAnnotation(a *catalog.Annotation) error {
	if flagJSON {
		return printJSON(toJSON(a))
	}
	fmt.Printf("%s\t%s\t%s\n", a.ID, a.Name, a.Location.String())
	return nil
}

// printAnnotations writes a list of annotations to stdout, honoring --json.
func printAnnotations(annotations []*catalog.Annotation) error {
	if flagJSON {
		out := make([]annotationJSON, 0, len(annotations))
		for _, a := range annotations {
			out = append(out, toJSON(a))
		}
		return printJSON(out)
	}
	for _, a := range annotations {
		fmt.Printf("%s\t%s\t%s\n", a.ID, a.Name, a.Location.String())
	}
	return nil
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// fail prints an error to stderr and exits with the given code.
func fail(prefix string, err error, code int) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
	os.Exit(code)
}
