package pairheap

import "fmt"

// ErrEmptyHeap is returned when a peek or extract is attempted on an empty heap
type ErrEmptyHeap struct {
	Op string
}

// ErrCapacityExceeded is returned when an insert is attempted on a heap that is full
type ErrCapacityExceeded struct {
	Capacity int
}

// ErrInvalidArgument is returned when bulk-construction input is malformed
type ErrInvalidArgument struct {
	Reason string
}

func (e ErrEmptyHeap) Error() string {
	return fmt.Sprintf("%s called on empty heap", e.Op)
}

func (e ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("heap is at capacity: %d", e.Capacity)
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}
