package queue

// Queue represents a basic queue.
// Implementations must be safe for use by one producer and one consumer
// running on different goroutines.
type Queue interface {
	Enqueue(item interface{}) error
	Dequeue() (interface{}, error)
	Size() int
	ReadAllMessages() ([]interface{}, error)
	ClearQueue()
}
