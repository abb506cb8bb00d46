// Package match finds known key code names close to a misspelled one.
//
// Key functions:
//   - NormalizeKeyName: folds case and drops separators for comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks the known names near a token
package match
