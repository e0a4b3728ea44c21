package validation

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Amount is the raw amount input of a notice draft. Forms may submit a number,
// a numeric-looking string, or garbage; only a JSON number counts as numeric.
type Amount struct {
	Value   float64
	Numeric bool
}

// NumericAmount builds an amount input that holds a number.
func NumericAmount(v float64) Amount {
	return Amount{Value: v, Numeric: true}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Numeric {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(a.Value, 'f', -1, 64)), nil
}

// UnmarshalJSON never fails: anything other than a JSON number decodes to a
// non-numeric amount, which validation then reports.
func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount{}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] == '"' || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return nil
	}
	v, err := n.Float64()
	if err != nil {
		return nil
	}
	*a = NumericAmount(v)
	return nil
}
