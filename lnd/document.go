package lnd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var emptyObject = json.RawMessage("{}")

// Document is a decoded lnd response. Numbers are kept as json.Number so
// 64 bit amounts survive untouched.
type Document struct {
	raw    json.RawMessage
	fields map[string]interface{}
	status int
}

// decodeDocument applies the response contract: an empty, unparsable or
// falsy body means the node could not be reached.
func decodeDocument(raw json.RawMessage, status int) (*Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrHostUnreachable
	}
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, ErrHostUnreachable
	}
	if !truthy(v) {
		return nil, ErrHostUnreachable
	}
	fields, ok := v.(map[string]interface{})
	if !ok {
		return nil, ErrHostUnreachable
	}
	return &Document{raw: raw, fields: fields, status: status}, nil
}

func emptyDocument(status int) *Document {
	return &Document{raw: emptyObject, fields: map[string]interface{}{}, status: status}
}

func (d *Document) Map() map[string]interface{} {
	return d.fields
}

func (d *Document) Raw() json.RawMessage {
	return d.raw
}

func (d *Document) StatusCode() int {
	return d.status
}

func (d *Document) Get(key string) (interface{}, bool) {
	v, ok := d.fields[key]
	return v, ok
}

// String returns the field formatted as text, or "" when it is absent.
func (d *Document) String(key string) string {
	v, ok := d.fields[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (d *Document) Bool(key string) bool {
	return truthy(d.fields[key])
}

// Err returns the error embedded in the response, if any. lnd reports those
// either as a truthy "error" field or, behind newer gateways, as a non 2xx
// status with a "message".
func (d *Document) Err() error {
	if v, ok := d.fields["error"]; ok && truthy(v) {
		apiErr := &APIError{Code: codeOf(d.fields["code"]), StatusCode: d.status}
		switch e := v.(type) {
		case string:
			apiErr.Message = e
		case map[string]interface{}:
			if msg, ok := e["message"].(string); ok {
				apiErr.Message = msg
			}
			if code, ok := e["code"]; ok {
				apiErr.Code = codeOf(code)
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprint(v)
		}
		return apiErr
	}
	if d.status != 0 && (d.status < 200 || d.status > 299) {
		if msg, ok := d.fields["message"].(string); ok && msg != "" {
			return &APIError{Code: codeOf(d.fields["code"]), Message: msg, StatusCode: d.status}
		}
	}
	return nil
}

func (d *Document) Decode(v interface{}) error {
	return json.Unmarshal(d.raw, v)
}

// Unmarshal decodes the document into an lnrpc message the way the REST
// gateway encodes them. Fields unknown to the message are dropped.
func (d *Document) Unmarshal(m proto.Message) error {
	return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(d.raw, m)
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return d.raw, nil
}

func codeOf(v interface{}) codes.Code {
	n, ok := v.(json.Number)
	if !ok {
		return codes.Unknown
	}
	i, err := n.Int64()
	if err != nil || i < 0 {
		return codes.Unknown
	}
	return codes.Code(i)
}

// truthy mirrors how loosely typed callers of the REST api judge a value:
// null, false, zero, "", "0" and empty containers are all false.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		return err != nil || f != 0
	case float64:
		return t != 0
	case string:
		return t != "" && t != "0"
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return true
	}
}
