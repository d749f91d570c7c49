package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CartItem is one line in the cart. A line is unique per
// (ProductID, SelectedColor, SelectedModel); adding the same combination
// again merges into the existing line instead of appending.
type CartItem struct {
	ProductID     int64   `json:"id"`
	Title         string  `json:"title"`
	Thumbnail     string  `json:"thumbnail"`
	UnitPrice     float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	SelectedColor string  `json:"selectedColor,omitempty"`
	SelectedModel string  `json:"selectedModel,omitempty"`
}

// SameLine reports whether other belongs to the same cart line, i.e. shares
// product id and variant selection.
func (ci CartItem) SameLine(other CartItem) bool {
	return ci.ProductID == other.ProductID &&
		ci.SelectedColor == other.SelectedColor &&
		ci.SelectedModel == other.SelectedModel
}

// UnmarshalJSON coerces quantity on read: snapshots written by older clients
// may carry it as a float or a quoted string. Anything non-numeric or below 1
// loads as 1.
func (ci *CartItem) UnmarshalJSON(data []byte) error {
	type alias CartItem
	aux := struct {
		Quantity json.RawMessage `json:"quantity"`
		*alias
	}{alias: (*alias)(ci)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	ci.Quantity = coerceQuantity(aux.Quantity)
	return nil
}

func coerceQuantity(raw json.RawMessage) int {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 1
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	q := int(f)
	if q < 1 {
		return 1
	}
	return q
}
