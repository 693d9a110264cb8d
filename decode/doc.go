// Package decode renders address line reports for memory and I/O maps.
//
// A report lists each map entry as the zero-padded binary form of its
// address followed by the set address lines, named A0 (least significant)
// upward. The select report folds entries that share a label into one
// match/mask equation, the form a PLD or GAL chip-select decoder
// implements directly.
//
// The displayed field width and the number of scanned address lines are
// independent: a board may display 20 binary columns while its decoder
// tests A0-A20.
package decode
