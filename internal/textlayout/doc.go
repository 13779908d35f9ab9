// Package textlayout breaks rules text into positioned lines for a fixed box.
//
// Layout is character-count driven: the length of the text (with every line
// break weighted as ten characters) picks a font tier, and each tier carries the
// line width in characters, the line spacing and a vertical offset that keeps
// short text visually centred. Text that still does not fit is allowed to run
// past the bottom of the box.
package textlayout
