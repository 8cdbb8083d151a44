package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN  Position = "UNK"
	POS_SETTER   Position = "S"
	POS_OUTSIDE  Position = "OH"
	POS_MIDDLE   Position = "MB"
	POS_OPPOSITE Position = "RS"
	POS_LIBERO   Position = "L"
	POS_DEFENSE  Position = "DS"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(strings.TrimSpace(pos))
	switch pos {
	case "s", "setter":
		return POS_SETTER
	case "oh", "outside", "outside hitter":
		return POS_OUTSIDE
	case "mb", "middle", "middle blocker":
		return POS_MIDDLE
	case "rs", "opposite", "right side":
		return POS_OPPOSITE
	case "l", "libero":
		return POS_LIBERO
	case "ds", "defensive specialist":
		return POS_DEFENSE
	default:
		return POS_UNKNOWN
	}
}

func (p Position) Friendly() string {
	switch p {
	case POS_SETTER:
		return "Setter"
	case POS_OUTSIDE:
		return "Outside Hitter"
	case POS_MIDDLE:
		return "Middle Blocker"
	case POS_OPPOSITE:
		return "Right Side"
	case POS_LIBERO:
		return "Libero"
	case POS_DEFENSE:
		return "Defensive Specialist"
	default:
		return "Unknown"
	}
}
