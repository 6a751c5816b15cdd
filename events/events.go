package events

// ChangeEventArgs carries the current value of the element that raised an input or change event.
type ChangeEventArgs struct {
	Value string
}
