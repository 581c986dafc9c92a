package patterns

// Byte-level Aho-Corasick automaton over the lowered phrases.
// Every node carries a dense 256-way transition table so the scan loop never touches a map

const noEdge = -1

type acNode struct {
	next [256]int
	fail int
	out  []int // phrase ids that end here, including those inherited via fail links
}

type automaton struct {
	nodes []acNode
	size  int // number of distinct phrase ids
}

func newNode() acNode {
	var n acNode
	for i := range n.next {
		n.next[i] = noEdge
	}
	return n
}

func newAutomaton() *automaton {
	return &automaton{nodes: []acNode{newNode()}}
}

// add inserts phrase under id; empty phrases are ignored
func (a *automaton) add(phrase []byte, id int) {
	if len(phrase) == 0 {
		return
	}
	state := 0
	for _, b := range phrase {
		nxt := a.nodes[state].next[b]
		if nxt == noEdge {
			nxt = len(a.nodes)
			a.nodes[state].next[b] = nxt
			a.nodes = append(a.nodes, newNode())
		}
		state = nxt
	}
	a.nodes[state].out = append(a.nodes[state].out, id)
	if id+1 > a.size {
		a.size = id + 1
	}
}

// build computes fail links breadth first and merges outputs along them
func (a *automaton) build() {
	queue := make([]int, 0, len(a.nodes))
	for b := range 256 {
		if s := a.nodes[0].next[b]; s != noEdge {
			a.nodes[s].fail = 0
			queue = append(queue, s)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for b := range 256 {
			s := a.nodes[r].next[b]
			if s == noEdge {
				continue
			}
			queue = append(queue, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].next[b] == noEdge {
				f = a.nodes[f].fail
			}
			if nxt := a.nodes[f].next[b]; nxt != noEdge && nxt != s {
				a.nodes[s].fail = nxt
			} else {
				a.nodes[s].fail = 0
			}
			a.nodes[s].out = append(a.nodes[s].out, a.nodes[a.nodes[s].fail].out...)
		}
	}
}

// present reports, per phrase id, whether the phrase occurs anywhere in text.
// Scanning stops as soon as every phrase has been seen
func (a *automaton) present(text []byte) []bool {
	found := make([]bool, a.size)
	remaining := a.size
	state := 0
	for _, b := range text {
		for state != 0 && a.nodes[state].next[b] == noEdge {
			state = a.nodes[state].fail
		}
		if nxt := a.nodes[state].next[b]; nxt != noEdge {
			state = nxt
		}
		for _, id := range a.nodes[state].out {
			if !found[id] {
				found[id] = true
				remaining--
			}
		}
		if remaining == 0 {
			break
		}
	}
	return found
}
