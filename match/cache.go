package match

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
)

// profileCacheSize bounds the number of distinct template profiles retained
// across calls. Replaces the teacher's unbounded map+RWMutex cache
// (domain/capture/ncc.go's tmplCacheByDim) with a size-bounded LRU so a
// long-running caller matching many distinct templates cannot leak memory.
const profileCacheSize = 64

var profileCache = mustNewLRU(profileCacheSize)

func mustNewLRU(size int) *lru.Cache[string, *templateProfile] {
	c, err := lru.New[string, *templateProfile](size)
	if err != nil {
		// size is a positive compile-time constant; New only fails for size<=0.
		panic(err)
	}
	return c
}

// profileKey derives a cache key from a template's content and dimensions.
// Two distinct templates of different content never collide in practice;
// the dimensions are folded in defensively anyway.
func profileKey(img Image) string {
	sum := sha256.Sum256(img.Pixels)
	return hex.EncodeToString(sum[:]) + ":" + strconv.Itoa(img.Width) + "x" + strconv.Itoa(img.Height)
}

// cachedTemplateProfile returns a cached profile for img, building and
// inserting one on a cache miss.
func cachedTemplateProfile(img Image) *templateProfile {
	key := profileKey(img)
	if p, ok := profileCache.Get(key); ok {
		return p
	}
	p := buildTemplateProfile(newGrayBuffer(img))
	profileCache.Add(key, p)
	return p
}
