// Package terminal provides the text interface for two local players.
//
// Terminal implements engine.PlayerIO on top of any io.Reader and io.Writer:
//   - the board is drawn with column letters (A, B, C, ...) on top and row
//     numbers (1, 2, 3, ...) on the right
//   - pieces are coloured with aurora when colour is enabled
//   - positions are typed as <Letter><Number>, e.g. "c3"
//   - directions are typed as a digit from 1 (Up) to 8 (UpLeft), clockwise
//
// Unparsable input is silently asked again. Only a closed input stream ends
// the prompting loops.
package terminal
