package constants

// NSQ topics
const (
	TopicCodeDispatch   = "otp.dispatch"
	TopicUserRegistered = "user.registered"
	TopicCartMerged     = "cart.merged"
)
