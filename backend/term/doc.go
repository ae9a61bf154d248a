// Package term paints rendered figures as colored braille text for
// terminal UIs.
package term
