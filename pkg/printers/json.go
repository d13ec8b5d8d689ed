package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"tableflip.dev/album/pkg/app"
)

// JSON writes v indented to w.
func JSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// Persisted turns a save failure into a warning; the change stays in memory
// for the rest of the run. Other errors are returned unchanged.
func (pp *PrettyPrint) Persisted(err error) error {
	if err == nil {
		return nil
	}
	if app.IsPersistence(err) {
		pp.Warn("%v", err)
		return nil
	}
	return err
}
