package flagkit

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"sort"
	"sync"
)

var ErrClosed = errors.New("cache closed")

// CacheOptions represents the options that can be set when creating a Cache.
type CacheOptions struct {
	// InitialSize is a capacity hint, rounded up to a power of two.
	InitialSize int `yaml:"-"`

	// Compression applied to stored values when it saves space.
	Compression CompressAlgorithm `yaml:"compression"`

	// Comparator orders Keys(). Defaults to StringComparator.
	Comparator Comparator `yaml:"-"`
}

var DefaultCacheOptions = &CacheOptions{
	InitialSize: 16,
	Compression: CompSnappy,
}

// Cache is an unbounded string key/value store with no expiry.
// The caller owns its lifetime: create it with NewCache and drop it with Close.
type Cache struct {
	lock   sync.RWMutex
	items  map[string][]byte
	closed bool

	capacity     int
	compression  CompressAlgorithm
	compressor   Compressor
	decompressor DeCompressor
	cmp          Comparator
}

func NewCache(options *CacheOptions) (*Cache, error) {
	if options == nil {
		options = DefaultCacheOptions
	}
	capacity, err := AdjustCacheSize(options.InitialSize)
	if err != nil {
		return nil, errors.Wrap(err, "new cache")
	}
	compressor, decompressor, err := options.Compression.codec()
	if err != nil {
		return nil, errors.Wrap(err, "new cache")
	}
	c := &Cache{
		items:        make(map[string][]byte, capacity),
		capacity:     capacity,
		compression:  options.Compression,
		compressor:   compressor,
		decompressor: decompressor,
		cmp:          options.Comparator,
	}
	if c.cmp == nil {
		c.cmp = StringComparator
	}
	log.WithFields(log.Fields{
		"requested":   options.InitialSize,
		"capacity":    capacity,
		"compression": c.compression,
	}).Debug("cache created")
	return c, nil
}

// Capacity returns the rounded capacity hint the cache was created with.
func (c *Cache) Capacity() int { return c.capacity }

// Put stores value under key, replacing any previous value.
func (c *Cache) Put(key, value string) error {
	data, err := encodeEntry([]byte(value), c.compressor)
	if err != nil {
		return errors.Wrapf(err, "put %q", key)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.items[key] = data
	return nil
}

// Get returns the value stored under key.
func (c *Cache) Get(key string) (string, bool) {
	c.lock.RLock()
	data, ok := c.items[key]
	c.lock.RUnlock()
	if !ok {
		return "", false
	}
	value, err := decodeEntry(data, c.decompressor)
	if err != nil {
		log.Warnf("cache: dropping unreadable entry %q: %s", key, err)
		c.lock.Lock()
		// a concurrent Put may have replaced it already
		if cur, ok := c.items[key]; ok && &cur[0] == &data[0] {
			delete(c.items, key)
		}
		c.lock.Unlock()
		return "", false
	}
	return string(value), true
}

func (c *Cache) Delete(key string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	_, ok := c.items[key]
	delete(c.items, key)
	return ok
}

func (c *Cache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.items)
}

// Keys returns all keys ordered by the cache comparator.
func (c *Cache) Keys() []string {
	c.lock.RLock()
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	c.lock.RUnlock()
	sort.Slice(keys, func(i, j int) bool { return c.cmp(keys[i], keys[j]) < 0 })
	return keys
}

// Close drops every entry. Later Puts fail with ErrClosed.
func (c *Cache) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.items = nil
	return nil
}
