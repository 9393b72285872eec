package box2dlite

/// The live arbiters of a world, at most one per unordered body pair.
/// Callers check GetIndex before Add to keep pairs unique.
type B2ArbiterList struct {
	arbiters []*B2Arbiter
}

func MakeB2ArbiterList() B2ArbiterList {
	return B2ArbiterList{
		arbiters: make([]*B2Arbiter, 0),
	}
}

func NewB2ArbiterList() *B2ArbiterList {
	res := MakeB2ArbiterList()
	return &res
}

func (list *B2ArbiterList) Add(arbiter *B2Arbiter) {
	B2Assert(arbiter != nil)
	list.arbiters = append(list.arbiters, arbiter)
}

/// Remove the arbiter of the same body pair, keeping the order of the
/// others. Returns false if there is none.
func (list *B2ArbiterList) Remove(arbiter *B2Arbiter) bool {
	index, ok := list.GetIndex(arbiter)
	if !ok {
		return false
	}

	copy(list.arbiters[index:], list.arbiters[index+1:])
	list.arbiters[len(list.arbiters)-1] = nil
	list.arbiters = list.arbiters[:len(list.arbiters)-1]

	return true
}

/// Index of the arbiter holding the same body pair, in either order.
func (list B2ArbiterList) GetIndex(arbiter *B2Arbiter) (int, bool) {
	key := arbiter.GetKey()

	for i := len(list.arbiters) - 1; i >= 0; i-- {
		if list.arbiters[i].GetKey().Equals(key) {
			return i, true
		}
	}

	return -1, false
}

/// Returns nil if the index is out of range.
func (list B2ArbiterList) Get(index int) *B2Arbiter {
	if index < 0 || index >= len(list.arbiters) {
		return nil
	}

	return list.arbiters[index]
}

func (list B2ArbiterList) GetLength() int {
	return len(list.arbiters)
}

func (list *B2ArbiterList) Clear() {
	list.arbiters = make([]*B2Arbiter, 0)
}
