package clippy

import (
	"fmt"
	"io"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Format is the representation the finalized polygon is written in.
type Format string

// The supported output formats.
const (
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSS, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format: %q", s)
}

// WriteResult writes the finalized path and the handle set it was built from.
func WriteResult(w io.Writer, f Format, path string, s HandleSet) error {
	switch f {
	case FormatJSON:
		doc, err := resultJSON(path, s)
		if err != nil {
			return err
		}
		_, err = w.Write(pretty.Pretty(doc))
		return err
	case FormatCSS, "":
		_, err := fmt.Fprintln(w, Declaration(path))
		return err
	}
	return fmt.Errorf("unsupported output format: %q", f)
}

func resultJSON(path string, s HandleSet) ([]byte, error) {
	doc, err := sjson.SetBytes([]byte(`{}`), "polygon", Polygon(path))
	if err != nil {
		return nil, err
	}
	if doc, err = sjson.SetBytes(doc, "declaration", Declaration(path)); err != nil {
		return nil, err
	}
	if doc, err = sjson.SetBytes(doc, "closed", s.Len() >= minClosedVertices); err != nil {
		return nil, err
	}
	if doc, err = sjson.SetRawBytes(doc, "vertices", []byte(`[]`)); err != nil {
		return nil, err
	}
	for _, h := range s.Handles() {
		v := []byte(`{}`)
		if v, err = sjson.SetBytes(v, "key", h.Key); err != nil {
			return nil, err
		}
		if v, err = sjson.SetBytes(v, "x", h.Vertex.XPercent()); err != nil {
			return nil, err
		}
		if v, err = sjson.SetBytes(v, "y", h.Vertex.YPercent()); err != nil {
			return nil, err
		}
		if doc, err = sjson.SetRawBytes(doc, "vertices.-1", v); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
