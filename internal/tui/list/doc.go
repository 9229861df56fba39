// Package listview provides a scrolling list component for Bubble Tea
// programs. Only the rows inside the viewport are rendered, so lists of any
// length stay responsive.
package listview
