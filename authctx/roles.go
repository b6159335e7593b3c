package authctx

import (
	"bytes"
	"encoding/json"
)

// Roles holds either a list of role names or a numeric role bitmask,
// matching the two wire shapes the gateway emits. Bitwise reports which
// shape was decoded.
type Roles struct {
	Names   []string
	Mask    uint64
	Bitwise bool
}

// UnmarshalJSON accepts a JSON array of strings or a JSON number.
func (r *Roles) UnmarshalJSON(data []byte) error {
	d := bytes.TrimSpace(data)
	if bytes.Equal(d, []byte("null")) {
		*r = Roles{}
		return nil
	}
	if len(d) > 0 && d[0] == '[' {
		*r = Roles{}
		return json.Unmarshal(d, &r.Names)
	}
	*r = Roles{Bitwise: true}
	return json.Unmarshal(d, &r.Mask)
}

// MarshalJSON emits the shape the value was decoded from.
func (r Roles) MarshalJSON() ([]byte, error) {
	if r.Bitwise {
		return json.Marshal(r.Mask)
	}
	if r.Names == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Names)
}

// Has checks if the named role is present. Always false for bitwise roles.
func (r Roles) Has(name string) bool {
	for _, n := range r.Names {
		if n == name {
			return true
		}
	}
	return false
}

// HasBit checks if every bit in mask is set. Always false for string roles.
func (r Roles) HasBit(mask uint64) bool {
	if !r.Bitwise || mask == 0 {
		return false
	}
	return r.Mask&mask == mask
}

// Empty reports whether no roles are present in either shape.
func (r Roles) Empty() bool {
	if r.Bitwise {
		return r.Mask == 0
	}
	return len(r.Names) == 0
}
