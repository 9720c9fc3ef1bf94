package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Number accepts both JSON numbers and numeric strings ("12.50"), since the
// storefront is not consistent about which one it sends.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		*n = 0
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", raw)
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}
