package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	//Push item to the back of the queue.
	Push(item T)
	//Pop the front item. Returns EmptyQueueError if there's nothing to pop.
	Pop() (T, error)
	//Peek the front item without removing it. The zero value if empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable ring buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the buffer to fit the current content.
	Shrink()
	//Clear the queue without releasing the buffer.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
