package spfgraph

import (
	"encoding/json"

	"github.com/tinylib/msgp/msgp"
)

// NodeRecord is the serializable form of one node: its name and the names
// of its immediate children in discovery order.
type NodeRecord struct {
	Name     string   `json:"name"`
	Children []string `json:"children"`
}

// ToJSON returns the tree's node records as a JSON array.
func (t *Tree) ToJSON() ([]byte, error) {
	return json.Marshal(t.Records())
}

// EncodeMsg writes the record as a MessagePack map with name and children
// fields.
func (r NodeRecord) EncodeMsg(w *msgp.Writer) error {
	if err := w.WriteMapHeader(2); err != nil {
		return err
	}
	if err := w.WriteString("name"); err != nil {
		return err
	}
	if err := w.WriteString(r.Name); err != nil {
		return err
	}
	if err := w.WriteString("children"); err != nil {
		return err
	}
	if err := w.WriteArrayHeader(uint32(len(r.Children))); err != nil {
		return err
	}
	for _, child := range r.Children {
		if err := w.WriteString(child); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsg reads a record written by EncodeMsg. Unknown map keys are
// skipped.
func (r *NodeRecord) DecodeMsg(rd *msgp.Reader) error {
	fields, err := rd.ReadMapHeader()
	if err != nil {
		return err
	}
	for range fields {
		key, err := rd.ReadString()
		if err != nil {
			return err
		}
		switch key {
		case "name":
			if r.Name, err = rd.ReadString(); err != nil {
				return err
			}
		case "children":
			count, err := rd.ReadArrayHeader()
			if err != nil {
				return err
			}
			r.Children = make([]string, count)
			for i := range r.Children {
				if r.Children[i], err = rd.ReadString(); err != nil {
					return err
				}
			}
		default:
			if err := rd.Skip(); err != nil {
				return err
			}
		}
	}
	return nil
}

// EncodeMsg writes the tree as a MessagePack array of node records.
func (t *Tree) EncodeMsg(w *msgp.Writer) error {
	records := t.Records()
	if err := w.WriteArrayHeader(uint32(len(records))); err != nil {
		return err
	}
	for _, r := range records {
		if err := r.EncodeMsg(w); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRecords reads an array of node records written by Tree.EncodeMsg.
func DecodeRecords(rd *msgp.Reader) ([]NodeRecord, error) {
	count, err := rd.ReadArrayHeader()
	if err != nil {
		return nil, err
	}
	records := make([]NodeRecord, count)
	for i := range records {
		if err := records[i].DecodeMsg(rd); err != nil {
			return nil, err
		}
	}
	return records, nil
}
