package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

// StringList is an ordered list of strings stored as a JSON array.
type StringList []string

// Value implements the driver.Valuer interface
func (a StringList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringList) Scan(value interface{}) error {
	if value == nil {
		*a = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}

	var out []string
	if err := json.Unmarshal(bytes, &out); err != nil {
		return err
	}
	if out == nil {
		out = []string{}
	}
	*a = out
	return nil
}

// MarshalJSON keeps an empty list as [] instead of null.
func (a StringList) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(a))
}

// JSONDocument is an opaque JSON value kept verbatim.
type JSONDocument []byte

const emptyDocument = "{}"

// Value implements the driver.Valuer interface
func (d JSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return emptyDocument, nil
	}
	if !json.Valid(d) {
		return nil, fmt.Errorf("invalid JSON document")
	}
	return string(d), nil
}

// Scan implements the sql.Scanner interface
func (d *JSONDocument) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = JSONDocument(emptyDocument)
	case []byte:
		*d = append((*d)[:0], v...)
	case string:
		*d = append((*d)[:0], v...)
	default:
		return fmt.Errorf("unsupported type %T for JSONDocument", value)
	}
	return nil
}

// MarshalJSON emits the stored document, or {} when unset.
func (d JSONDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte(emptyDocument), nil
	}
	return []byte(d), nil
}

// UnmarshalJSON stores a copy of the raw document.
func (d *JSONDocument) UnmarshalJSON(data []byte) error {
	*d = append((*d)[:0], data...)
	return nil
}
