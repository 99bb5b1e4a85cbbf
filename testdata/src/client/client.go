package client

import "lib"

func Touch(c *lib.Counter) {
	c.Value = 1 // want `RO003: field Value of Counter marked with PackageSet should not be assigned outside its package`
	c.ID = "x"  // want `RO001: field ID of Counter marked with NoManualSet should not be assigned manually`
}

func NewCounter() *lib.Counter {
	c := lib.NewCounter("a")
	c.ID = "b" // want `RO001: field ID of Counter`
	return c
}
