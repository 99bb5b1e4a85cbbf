package owner

type Counter struct {
	value int `fieldguard:"OwnerSet,PackageSet"` // want value:"marked OwnerSet,PackageSet"
}

func NewCounter() *Counter {
	c := &Counter{}
	c.value = 1
	return c
}

func (c *Counter) Inc() {
	c.value = c.value + 1
}

func reset(c *Counter) {
	c.value = 0 // want `RO002: field value marked with OwnerSet should be assigned by Counter constructors or methods only`
}
