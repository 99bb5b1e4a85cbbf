package custom

type Point struct {
	//fieldguard:Frozen
	X int // want X:"marked Frozen"
	Y int
}

func NewPoint() *Point {
	p := &Point{}
	p.X = 1 // want `RO004: field X marked with Frozen should never be assigned`
	p.Y = 2
	return p
}
