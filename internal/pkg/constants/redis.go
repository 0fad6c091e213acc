package constants

// Redis key formats
const (
	KeyChallenge         = "auth:challenge:%s"          // Format: auth:challenge:{ref}
	KeyChallengeDest     = "auth:challenge:dest:%s"     // Format: auth:challenge:dest:{destination}
	KeyChallengeUsed     = "auth:challenge:used:%s"     // Format: auth:challenge:used:{ref}
	KeyChallengeAttempts = "auth:challenge:attempts:%s" // Format: auth:challenge:attempts:{ref}
	KeyOTPCooldown       = "auth:cooldown:%s"           // Format: auth:cooldown:{destination}

	KeyGuestCart = "cart:guest:%s" // Format: cart:guest:{session_id}

	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
