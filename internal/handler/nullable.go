package handler

import "encoding/json"

// nullable is a partial-update field that tells an absent key apart
// from an explicit JSON null, which a plain pointer cannot. set is true
// whenever the key appeared in the payload; value is nil for a null,
// which maps to writing NULL to the column.
type nullable[T any] struct {
	set   bool
	value *T
}

func (n *nullable[T]) UnmarshalJSON(data []byte) error {
	n.set = true
	if string(data) == "null" {
		n.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.value = &v
	return nil
}
