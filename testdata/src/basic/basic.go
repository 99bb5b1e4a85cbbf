package basic

type Examples struct {
	//fieldguard:NoManualSet
	blabla int // want blabla:"marked NoManualSet"
	plain  int
}

func NewExamples() *Examples {
	e := &Examples{}
	e.blabla = 5
	return e
}

func (e *Examples) SetBlabla(value int) {
	e.blabla = value // want `RO001: field blabla of Examples marked with NoManualSet should not be assigned manually`
	e.plain = value
}

func (e *Examples) Swap(other *Examples) {
	e.blabla, other.plain = other.blabla, e.plain // want `RO001: field blabla`
	e.plain, other.blabla = 1, 2                  // want `RO001: field blabla`
}

//fieldguard:Frozen
var Global int // want Global:"marked Frozen"

func touch(m map[string]int, p *int) {
	Global = 1
	m["x"] = 2
	*p = 3
}
