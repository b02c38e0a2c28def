package notify

// Notification is one leveled message shown to the user.
// Values are immutable once created; the Store assigns the ID.
type Notification struct {
	// ID is unique within a Store and strictly increasing in insertion
	// order. IDs are never reused.
	ID uint64

	// Level is the severity classification.
	Level Level

	// Message is an opaque text payload. Any string is valid.
	Message string
}
