package lib

type Counter struct {
	//fieldguard:PackageSet
	Value int // want Value:"marked PackageSet"

	//fieldguard:NoManualSet
	ID string // want ID:"marked NoManualSet"
}

func NewCounter(id string) *Counter {
	c := &Counter{}
	c.ID = id
	return c
}

func (c *Counter) Reset() {
	c.Value = 0
}
