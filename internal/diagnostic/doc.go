// Package diagnostic provides structured errors, warnings, and notes
// produced while checking a layout mapping file.
//
// Key capabilities:
//   - Blank from/to symbol errors
//   - Duplicate from-key, chord fallback, and near key code warnings
//   - Notes on to-symbols that are typed as romaji sequences
package diagnostic
