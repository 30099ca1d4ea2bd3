package download

import "strings"

// blockSignatures are fragments of upstream error text that mark a
// bot/login/rate-limit/availability block. Matched case-insensitively.
// Blocks are the only failures worth retrying with an escalated attempt
// spec; everything else aborts the sequence.
var blockSignatures = []string{
	"bot",
	"login",
	"sign in",
	"cookies",
	"rate-limit",
	"rate limit",
	"not available",
}

// restrictedBlockMessage replaces raw engine errors when a heavily
// automated-traffic-restricted platform blocks us. The raw message would
// only confuse callers; full detail still lands in the server logs.
const restrictedBlockMessage = "This platform is currently blocking automated downloads. " +
	"Please try again later, or use a link from Twitter/X, Instagram, or TikTok."

// looksLikeBlock reports whether msg carries a known block signature.
func looksLikeBlock(msg string) bool {
	lowered := strings.ToLower(msg)
	for _, signature := range blockSignatures {
		if strings.Contains(lowered, signature) {
			return true
		}
	}
	return false
}
