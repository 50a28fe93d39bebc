package ds

// ListError enumerates why a List operation could not complete.
//
//	TL;DR:
//	  errors.Is(err, ds.ErrListOutOfBounds)
type ListError string

// Error implement the error interface
func (err ListError) Error() string { return string(err) }

const (
	// ErrListOutOfBounds is returned when an index is outside the valid range of the requested operation.
	ErrListOutOfBounds ListError = "ErrListOutOfBounds"
	// ErrListImpossible is reserved for implementation detected invariant violations.
	ErrListImpossible ListError = "ErrListImpossible"
)

// PriorityQueueError enumerates why a PriorityQueue operation could not complete.
type PriorityQueueError string

// Error implement the error interface
func (err PriorityQueueError) Error() string { return string(err) }

// ErrPriorityQueueOutOfBounds is returned by Pop and Peek on an empty PriorityQueue.
const ErrPriorityQueueOutOfBounds PriorityQueueError = "ErrPriorityQueueOutOfBounds"
