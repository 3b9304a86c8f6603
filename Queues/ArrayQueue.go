package Queues

type ringQ[T any] struct {
	sz, head uint
	content  []T
}

// MakeArrayQueue returns an empty ArrayQueue able to hold initCap items before
// growing.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &ringQ[T]{0, 0, make([]T, initCap)}
}

func (u *ringQ[T]) Empty() bool {
	return u.sz == 0
}

func (u *ringQ[T]) Size() uint {
	return u.sz
}

// resize moves the content to a new buffer of length newLen>=sz, starting from
// index 0.
func (u *ringQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if n := uint(copy(nc, u.content[u.head:])); n < u.sz {
		copy(nc[n:], u.content[:u.sz-n])
	}
	u.content, u.head = nc, 0
}

func (u *ringQ[T]) Shrink() {
	u.resize(u.sz)
}

func (u *ringQ[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

func (u *ringQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *ringQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *ringQ[T]) Peek() (item T) {
	if !u.Empty() {
		item = u.content[u.head]
	}
	return
}
