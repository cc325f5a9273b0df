package rucksack

// Item is a single priority-bearing character.
type Item rune

// String returns the item as a one character string.
func (i Item) String() string {
	return string(rune(i))
}

// Priority maps a-z to 1-26 and A-Z to 27-52. Every other rune scores 0.
func Priority(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 27
	default:
		return 0
	}
}

// Priority returns the priority of the item.
func (i Item) Priority() int {
	return Priority(rune(i))
}
