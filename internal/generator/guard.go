package generator

const unsetClass = -1

// guard remembers the class ids of the last three positions, newest first.
type guard struct {
	history [3]int
}

func newGuard() *guard {
	return &guard{history: [3]int{unsetClass, unsetClass, unsetClass}}
}

// shouldReroll reports whether id already fills two of the last three slots.
func (g *guard) shouldReroll(id int) bool {
	matches := 0
	for _, prev := range g.history {
		if prev == id {
			matches++
		}
	}
	return matches >= 2
}

func (g *guard) record(id int) {
	g.history[2] = g.history[1]
	g.history[1] = g.history[0]
	g.history[0] = id
}
