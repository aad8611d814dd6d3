package main

import (
	"image"
)

type Point = image.Point
type Size = image.Point
type Rect = image.Rectangle

// Smp is a single mono audio sample, nominally in [-1,1].
type Smp = float64
