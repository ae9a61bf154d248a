// Package ebitenview draws figure models in an Ebitengine game loop.
package ebitenview
