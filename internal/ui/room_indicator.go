// internal/ui/room_indicator.go
package ui

import "strings"

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// RoomLabel формирует подпись комнаты: номер римскими цифрами и состояние.
func RoomLabel(depth int, id string, cleared, stairs bool) string {
	label := "Room " + toRoman(depth) + " (" + id + ")"
	switch {
	case stairs:
		label += " - stairs open"
	case cleared:
		label += " - cleared"
	default:
		label += " - sealed"
	}
	return label
}
