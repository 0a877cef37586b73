package types

import "strconv"

// FormatPrice renders a price with the shortest representation that round
// trips, so 12.5 prints as "12.5" and 10 as "10".
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
