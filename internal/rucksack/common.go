package rucksack

import "unicode/utf8"

// itemSet records which runes occur in a line. ASCII uses a fixed table.
type itemSet struct {
	ascii [utf8.RuneSelf]bool
	other map[rune]struct{}
}

func newItemSet(s string) *itemSet {
	set := &itemSet{}
	for _, r := range s {
		if r < utf8.RuneSelf {
			set.ascii[r] = true
			continue
		}
		if set.other == nil {
			set.other = make(map[rune]struct{})
		}
		set.other[r] = struct{}{}
	}
	return set
}

func (s *itemSet) has(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return s.ascii[r]
	}
	_, ok := s.other[r]
	return ok
}

// firstShared returns the first rune of first, in order, that every set contains.
func firstShared(first string, sets ...*itemSet) (Item, bool) {
next:
	for _, r := range first {
		for _, set := range sets {
			if !set.has(r) {
				continue next
			}
		}
		return Item(r), true
	}
	return 0, false
}

// FindCommon returns the first item of the group's first line that also
// occurs in the second and third lines. Only the membership tests use sets,
// so the scan order of the first line decides between several candidates.
func FindCommon(g Group) (Item, bool) {
	return firstShared(g.Lines[0], newItemSet(g.Lines[1]), newItemSet(g.Lines[2]))
}

// FindDuplicate splits a rucksack into two equal compartments and returns the
// first item of the first compartment that also occurs in the second.
func FindDuplicate(line string) (Item, bool) {
	runes := []rune(line)
	half := len(runes) / 2
	return firstShared(string(runes[:half]), newItemSet(string(runes[half:])))
}
