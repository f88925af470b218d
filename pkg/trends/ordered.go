package trends

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is a single tabular record whose column order matters: the
// first row of a table defines the rendered column set, in the order
// the backend serialized it. encoding/json maps lose that order, so
// rows are decoded token-by-token. Numbers are kept as json.Number to
// stay distinguishable from strings downstream.
type Row struct {
	Keys   []string
	Values map[string]interface{}
}

func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("trends: row must be a JSON object, got %v", tok)
	}

	r.Keys = nil
	r.Values = make(map[string]interface{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if _, dup := r.Values[key]; !dup {
			r.Keys = append(r.Keys, key)
		}
		r.Values[key] = value
	}

	// consume the closing brace
	_, err = dec.Token()
	return err
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.Values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value for key and whether the key exists at all.
func (r Row) Get(key string) (interface{}, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// Node is one position in the arbitrarily nested fred_data / trends
// payload: either a leaf holding a time series, or a section holding
// named children. Primitive values are dropped during decoding, the
// renderer has no use for them.
type Node struct {
	Series   []Row
	Sections []Section
}

// Section is a named child of a Node, in serialized order.
type Section struct {
	Name string
	Node Node
}

// IsLeaf reports whether the node carries a time series.
func (n Node) IsLeaf() bool {
	return n.Series != nil
}

func (n *Node) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return err
		}
		n.Series = make([]Row, 0, len(elems))
		for _, elem := range elems {
			var row Row
			// Non-object array entries carry no date/value pair,
			// skip them the way the original renderer did.
			if err := json.Unmarshal(elem, &row); err != nil {
				continue
			}
			n.Series = append(n.Series, row)
		}
		return nil
	case '{':
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if _, err := dec.Token(); err != nil {
			return err
		}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key := keyTok.(string)

			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return err
			}
			rawTrimmed := bytes.TrimLeft(raw, " \t\r\n")
			if len(rawTrimmed) == 0 || (rawTrimmed[0] != '{' && rawTrimmed[0] != '[') {
				continue // primitive leaf, ignored
			}
			var child Node
			if err := json.Unmarshal(raw, &child); err != nil {
				return err
			}
			n.Sections = append(n.Sections, Section{Name: key, Node: child})
		}
		_, err := dec.Token()
		return err
	default:
		// primitive root, nothing renderable
		return nil
	}
}

// Tables is an ordered mapping of table name to rows, as found in
// industry_tables[].data.
type Tables struct {
	Entries []NamedRows
}

type NamedRows struct {
	Name string
	Rows []Row
}

func (t *Tables) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("trends: industry table set must be a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var rows []Row
		if err := dec.Decode(&rows); err != nil {
			return err
		}
		t.Entries = append(t.Entries, NamedRows{Name: key, Rows: rows})
	}

	_, err = dec.Token()
	return err
}
