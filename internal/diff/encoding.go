package diff

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/types"
)

// Errors returned when decoding diffs.
var (
	ErrMalformedRecord = errors.New("malformed operation record")
	ErrUnknownFormat   = errors.New("unknown diff format")
)

// Supported encodings for Marshal and Unmarshal.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// record is the exchange form of an Operation. Exactly one field is set;
// lengths are [lines, bytes].
type record struct {
	Retain []int       `json:"retain,omitempty" yaml:"retain,flow,omitempty"`
	Delete []int       `json:"delete,omitempty" yaml:"delete,flow,omitempty"`
	Insert *insertText `json:"insert,omitempty" yaml:"insert,omitempty"`
}

// insertText is always written as a double-quoted YAML scalar. Block
// scalars drop content from newline-only strings.
type insertText string

func (s insertText) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: string(s),
	}, nil
}

func toRecord(op Operation) record {
	switch op.Kind {
	case KindRetain:
		return record{Retain: []int{op.Length.Lines, op.Length.Bytes}}
	case KindDelete:
		return record{Delete: []int{op.Length.Lines, op.Length.Bytes}}
	default:
		s := insertText(op.Text.String())
		return record{Insert: &s}
	}
}

func (r record) operation() (Operation, error) {
	set := 0
	if r.Retain != nil {
		set++
	}
	if r.Delete != nil {
		set++
	}
	if r.Insert != nil {
		set++
	}
	if set != 1 {
		return Operation{}, fmt.Errorf("%w: want exactly one of retain, delete, insert", ErrMalformedRecord)
	}

	switch {
	case r.Insert != nil:
		return Insert(buffer.FromString(string(*r.Insert))), nil
	case r.Retain != nil:
		l, err := recordLength(r.Retain)
		return Retain(l), err
	default:
		l, err := recordLength(r.Delete)
		return Delete(l), err
	}
}

func recordLength(v []int) (types.Length, error) {
	if len(v) != 2 || v[0] < 0 || v[1] < 0 {
		return types.Length{}, fmt.Errorf("%w: length %v is not [lines, bytes]", ErrMalformedRecord, v)
	}
	return types.NewLength(v[0], v[1]), nil
}

func (d Diff) records() []record {
	recs := make([]record, 0, len(d.ops))
	for _, op := range d.ops {
		recs = append(recs, toRecord(op))
	}
	return recs
}

func fromRecords(recs []record) (Diff, error) {
	var b Builder
	for i, r := range recs {
		op, err := r.operation()
		if err != nil {
			return Diff{}, fmt.Errorf("record %d: %w", i, err)
		}
		emit(&b, op)
	}
	return b.Finish(), nil
}

// MarshalJSON encodes the diff as an array of operation records.
func (d Diff) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.records())
}

// UnmarshalJSON decodes operation records. The result is canonical.
func (d *Diff) UnmarshalJSON(data []byte) error {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return err
	}
	out, err := fromRecords(recs)
	if err != nil {
		return err
	}
	*d = out
	return nil
}

// MarshalYAML encodes the diff as a sequence of operation records.
func (d Diff) MarshalYAML() (interface{}, error) {
	return d.records(), nil
}

// UnmarshalYAML decodes operation records. The result is canonical.
func (d *Diff) UnmarshalYAML(value *yaml.Node) error {
	var recs []record
	if err := value.Decode(&recs); err != nil {
		return err
	}
	out, err := fromRecords(recs)
	if err != nil {
		return err
	}
	*d = out
	return nil
}

// Marshal encodes d in the named format.
func Marshal(d Diff, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatYAML:
		return yaml.Marshal(d)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Unmarshal decodes a diff in the named format.
func Unmarshal(data []byte, format string) (Diff, error) {
	var d Diff
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &d)
	case FormatYAML:
		err = yaml.Unmarshal(data, &d)
	default:
		return Diff{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Diff{}, fmt.Errorf("failed to decode %s diff: %w", format, err)
	}
	return d, nil
}
