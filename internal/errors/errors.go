package errors

import (
	"sync"
)

// ItemError records the failure of one item in a batch operation.
type ItemError struct {
	Item string
	Err  error
}

// Error implements the error interface.
func (ie ItemError) Error() string {
	return ie.Item + ": " + ie.Err.Error()
}

// Unwrap returns the item's underlying error.
func (ie ItemError) Unwrap() error {
	return ie.Err
}

// ErrorCollector gathers per-item failures so a batch can continue past them
// and report them together at the end.
type ErrorCollector struct {
	items []ItemError
	mutex sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		items: make([]ItemError, 0),
	}
}

// Add records a failure for item. Nil errors are ignored.
func (ec *ErrorCollector) Add(item string, err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.items = append(ec.items, ItemError{Item: item, Err: err})
}

// Items returns a copy of the recorded failures in insertion order.
func (ec *ErrorCollector) Items() []ItemError {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]ItemError, len(ec.items))
	copy(result, ec.items)
	return result
}

// Count returns the number of recorded failures.
func (ec *ErrorCollector) Count() int {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.items)
}

// HasErrors returns true if there are any errors
func (ec *ErrorCollector) HasErrors() bool {
	return ec.Count() > 0
}
