package weather

import "fmt"

// MissingFieldError reports a path absent from an otherwise present snapshot.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s", e.Path)
}

// FieldTypeError reports a path whose value has an unexpected JSON type.
type FieldTypeError struct {
	Path string
	Want string
	Got  interface{}
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %s: expected %s, got %T", e.Path, e.Want, e.Got)
}
