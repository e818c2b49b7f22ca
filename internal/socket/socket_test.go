package socket

// Compile-time assertions that both implementations satisfy Sender.
var (
	_ Sender = (*SimpleSender)(nil)
	_ Sender = (*BatchedSender)(nil)
)
