package artwork

import (
	"container/heap"
	"context"
	"image"
	"sync"
	"time"
)

const (
	defaultMinSize   = 8
	defaultMaxSize   = 64
	defaultMemoryTTL = 10 * time.Minute

	// DefaultEvictionInterval is how often Init evicts expired items
	DefaultEvictionInterval = time.Minute
)

type cacheItem struct {
	val image.Image
	ttl time.Duration

	// unix time
	expiresAt    int64
	lastAccessed int64
}

// ImageCache is an in-memory cache of decoded artwork with the following eviction strategy:
//  1. If there are fewer than MinSize items in the cache, none will be evicted
//  2. If a new addition would make the cache exceed MaxSize, an item will be immediately evicted
//     2a. in this case, evict the LRU expired item or if none expired, the LRU item
//  3. If the size of the cache is between MaxSize and MinSize, expired items will be periodically evicted
//     3a. in this case, again the least recently used expired items will be evicted first
type ImageCache struct {
	MinSize    int
	MaxSize    int
	DefaultTTL time.Duration

	mu    sync.Mutex
	cache map[string]*cacheItem
}

// NewImageCache creates a cache with the default sizes
func NewImageCache() *ImageCache {
	return &ImageCache{
		MinSize:    defaultMinSize,
		MaxSize:    defaultMaxSize,
		DefaultTTL: defaultMemoryTTL,
		cache:      make(map[string]*cacheItem),
	}
}

// Init starts periodic eviction of expired items until ctx is done
func (i *ImageCache) Init(ctx context.Context, evictionInterval time.Duration) {
	go i.periodicallyEvict(ctx, evictionInterval)
}

// holds the lock for O(i.MaxSize) worst case
func (i *ImageCache) SetWithTTL(key string, val image.Image, ttl time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := time.Now()
	if v, ok := i.cache[key]; ok {
		v.val = val
		v.ttl = ttl
		v.expiresAt = now.Add(ttl).Unix()
		v.lastAccessed = now.Unix()
		return
	}
	if len(i.cache) >= i.MaxSize {
		i.evictOne()
	}
	i.cache[key] = &cacheItem{
		val:          val,
		ttl:          ttl,
		expiresAt:    now.Add(ttl).Unix(),
		lastAccessed: now.Unix(),
	}
}

func (i *ImageCache) Set(key string, val image.Image) {
	i.SetWithTTL(key, val, i.DefaultTTL)
}

func (i *ImageCache) Has(key string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	_, ok := i.cache[key]
	return ok
}

// Get returns the image for key and resets its TTL
func (i *ImageCache) Get(key string) (image.Image, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.cache[key]; ok {
		now := time.Now()
		v.lastAccessed = now.Unix()
		v.expiresAt = now.Add(v.ttl).Unix()
		return v.val, nil
	}
	return nil, ErrNotFound
}

func (i *ImageCache) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.cache)
}

// must be called with the lock held
func (i *ImageCache) evictOne() {
	now := time.Now().Unix()
	var lruKey string
	lruTime := now + 1
	var lruExpiredKey string
	lruExpiredTime := now + 1
	for k, v := range i.cache {
		if v.expiresAt < now && v.lastAccessed < lruExpiredTime {
			lruExpiredTime = v.lastAccessed
			lruExpiredKey = k
		}
		if v.lastAccessed < lruTime {
			lruTime = v.lastAccessed
			lruKey = k
		}
	}
	if lruExpiredKey != "" {
		delete(i.cache, lruExpiredKey)
	} else {
		delete(i.cache, lruKey)
	}
}

func (i *ImageCache) periodicallyEvict(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			i.EvictExpired()
		}
	}
}

type expiredItem struct {
	key          string
	lastAccessed int64
}

type expiredHeap []expiredItem

func (h expiredHeap) Len() int           { return len(h) }
func (h expiredHeap) Less(i, j int) bool { return h[i].lastAccessed < h[j].lastAccessed }
func (h expiredHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *expiredHeap) Push(x any) {
	*h = append(*h, x.(expiredItem))
}

func (h *expiredHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// EvictExpired evicts least recently used expired items from the cache
// until there are no more expired items or the cache contains MinSize elements
func (i *ImageCache) EvictExpired() {
	i.mu.Lock()
	defer i.mu.Unlock()

	count := len(i.cache)
	if count <= i.MinSize {
		return
	}

	now := time.Now().Unix()
	expired := make(expiredHeap, 0, count-i.MinSize)
	for k, v := range i.cache {
		if v.expiresAt < now {
			expired = append(expired, expiredItem{key: k, lastAccessed: v.lastAccessed})
		}
	}

	heap.Init(&expired)
	for count > i.MinSize && expired.Len() > 0 {
		delete(i.cache, heap.Pop(&expired).(expiredItem).key)
		count--
	}
}
