package bot

import (
	"github.com/diamondburned/arikawa/v3/discord"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSeenMessageCacheSize is used when the configured cache size is not positive.
const DefaultSeenMessageCacheSize = 256

// SeenMessages holds the LRU cache of message IDs that were already answered.
// The gateway may deliver the same MESSAGE_CREATE again after a resume.
type SeenMessages struct {
	cache *lru.Cache[discord.MessageID, struct{}]
}

// NewSeenMessages creates a new SeenMessages with the given size.
// The size parameter determines the maximum number of items the cache can hold.
func NewSeenMessages(size int) *SeenMessages {
	lruCache, err := lru.New[discord.MessageID, struct{}](size)
	if err != nil {
		// Only a non-positive size fails, which is a programming error.
		panic(err)
	}

	return &SeenMessages{cache: lruCache}
}

// MarkSeen records the message ID and reports whether it had been recorded before.
func (sm *SeenMessages) MarkSeen(id discord.MessageID) (alreadySeen bool) {
	alreadySeen, _ = sm.cache.ContainsOrAdd(id, struct{}{})

	return alreadySeen
}
