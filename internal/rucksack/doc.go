// Package rucksack finds the items that rucksacks have in common.
//
// Lines are grouped three at a time by an Accumulator. FindCommon returns the
// badge item carried by all three rucksacks of a group, and an Aggregator
// folds the priorities of those items into a single total. A trailing group
// with fewer than three lines is reported as an IncompleteGroupError and a
// group without a shared item as a NoCommonItemError; neither stops the fold.
package rucksack
