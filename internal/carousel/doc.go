// Package carousel provides a horizontal card slider widget for Bubble Tea
// applications.
//
// The widget renders a strip of fixed-width cards and reveals one "slide" at
// a time. Key features:
//   - Virtualized rendering: only the cards intersecting the viewport (plus a
//     configurable overscan margin) are rendered, bounding per-frame work
//     regardless of collection size
//   - Responsive breakpoints: items-per-view resolved from the container
//     width, with optional peek of the adjacent card
//   - Animated offset transitions using a pseudo-spring easing curve
//   - Mouse drag with threshold-based slide commit, plus wheel and keyboard
//     navigation
//   - An imperative Handle (ScrollToItem, ScrollToIndex, Next, Previous,
//     CurrentIndex, Refresh) for driving the widget from outside the
//     Bubble Tea update loop
package carousel
