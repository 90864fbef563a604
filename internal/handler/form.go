package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var errTrailingData = errors.New("unexpected data after JSON value")

// decodeUpload reads exactly one JSON value from r. Field keys are matched
// case-sensitively; an empty body yields an empty request.
func decodeUpload(r io.Reader) (uploadRequest, error) {
	var req uploadRequest

	dec := json.NewDecoder(r)
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return req, errTrailingData
	}

	for key, dst := range map[string]*formValue{
		"date":        &req.Date,
		"time":        &req.Time,
		"coupon_name": &req.CouponName,
		"number":      &req.Number,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return req, fmt.Errorf("field %s: %w", key, err)
		}
	}
	return req, nil
}

// formValue is an upload field. Strings, numbers and booleans are accepted
// and stored as text; null, "", 0 and false decode to "" and count as missing.
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = formValue(x)
	case bool:
		*v = ""
		if x {
			*v = "1"
		}
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return err
		}
		*v = ""
		if f != 0 {
			*v = formValue(strconv.FormatFloat(f, 'f', -1, 64))
		}
	default:
		return fmt.Errorf("unsupported field value %s", b)
	}
	return nil
}
