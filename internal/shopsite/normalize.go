package shopsite

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// shape records how a root node was serialized. ShopSite writes a single
// result as a bare record instead of a one-element list.
type shape int

const (
	shapeEmpty shape = iota
	shapeSingle
	shapeMany
)

func (s shape) String() string {
	switch s {
	case shapeSingle:
		return "single"
	case shapeMany:
		return "many"
	default:
		return "empty"
	}
}

// collection is the parsed form of a root node before normalization.
type collection[T any] struct {
	shape shape
	one   T
	many  []T
}

// records flattens the collection into a non-nil slice.
func (c collection[T]) records() []T {
	switch c.shape {
	case shapeSingle:
		return []T{c.one}
	case shapeMany:
		return c.many
	default:
		return []T{}
	}
}

type rawElement struct {
	XMLName xml.Name
	Inner   []byte `xml:",innerxml"`
}

type rawRoot struct {
	XMLName  xml.Name
	Inner    []byte       `xml:",innerxml"`
	Children []rawElement `xml:",any"`
}

// DecodeCollection reads an XML document and returns the records under the
// first element named root. Children named record are decoded one per
// element; a root with other children is itself decoded as one record. A
// missing or childless root yields an empty, non-nil slice.
func DecodeCollection[T any](r io.Reader, root, record string) ([]T, error) {
	c, err := parseCollection[T](r, root, record)
	if err != nil {
		return nil, err
	}
	return c.records(), nil
}

func parseCollection[T any](r io.Reader, root, record string) (collection[T], error) {
	var none collection[T]

	start, dec, err := findElement(r, root)
	if err != nil {
		return none, err
	}
	if start == nil {
		return none, nil
	}

	var node rawRoot
	if err := dec.DecodeElement(&node, start); err != nil {
		return none, fmt.Errorf("%w: decoding <%s>: %w", ErrMalformedResponse, root, err)
	}

	var many []T
	for i := range node.Children {
		child := &node.Children[i]
		if child.XMLName.Local != record {
			continue
		}
		var v T
		if err := decodeInner(record, child.Inner, &v); err != nil {
			return none, err
		}
		many = append(many, v)
	}
	if len(many) > 0 {
		return collection[T]{shape: shapeMany, many: many}, nil
	}

	if len(node.Children) == 0 {
		return none, nil
	}

	var one T
	if err := decodeInner(root, node.Inner, &one); err != nil {
		return none, err
	}
	return collection[T]{shape: shapeSingle, one: one}, nil
}

// findElement advances the decoder to the first start element named name.
// It returns a nil element when the document ends without one.
func findElement(r io.Reader, name string) (*xml.StartElement, *xml.Decoder, error) {
	dec := xml.NewDecoder(r)
	// ShopSite stores commonly declare ISO-8859-1.
	dec.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, dec, nil
		}
		if err != nil {
			return nil, dec, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == name {
			return &se, dec, nil
		}
	}
}

func decodeInner(name string, inner []byte, v any) error {
	var buf bytes.Buffer
	buf.Grow(len(inner) + 2*len(name) + 5)
	buf.WriteString("<" + name + ">")
	buf.Write(inner)
	buf.WriteString("</" + name + ">")

	if err := xml.Unmarshal(buf.Bytes(), v); err != nil {
		return fmt.Errorf("%w: decoding <%s>: %w", ErrMalformedResponse, name, err)
	}
	return nil
}
