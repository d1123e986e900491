package domain

// TransactionLog is the append-only, ordered history of one account.
// It has no locking of its own; the owning account serializes access.
type TransactionLog struct {
	entries []string
}

// Record appends a description to the end of the log.
func (l *TransactionLog) Record(description string) {
	l.entries = append(l.entries, description)
}

// Entries returns a copy of all recorded descriptions in insertion order.
func (l *TransactionLog) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded descriptions.
func (l *TransactionLog) Len() int {
	return len(l.entries)
}
