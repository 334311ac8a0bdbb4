package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Sim is the contract renderers drive: a cursor over successive generations
// of a fixed-size grid.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Generation() int
	Cells() []uint8
}
