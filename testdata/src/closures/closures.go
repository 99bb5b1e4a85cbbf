package closures

type Examples struct {
	//fieldguard:NoManualSet
	blabla int // want blabla:"marked NoManualSet"
}

func NewExamples() *Examples {
	e := &Examples{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		e.blabla = 1
	}()
	<-done
	return e
}

func Mutate(e *Examples) {
	defer func() {
		e.blabla = 2 // want `RO001: field blabla of Examples`
	}()
}

var hook = func(e *Examples) {
	e.blabla = 3 // want `RO001: field blabla of Examples`
}
