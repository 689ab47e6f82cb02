package cache

import (
	"sync"
	"time"
)

// TTLCache 是一个单值的 get-or-fetch 缓存。
// 老版前端把店铺设置在浏览器里按固定 TTL 记忆，这里移到服务端，
// 时钟可注入，测试不用真等过期。
type TTLCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	value   interface{}
	expires time.Time
}

func New(ttl time.Duration) *TTLCache {
	return &TTLCache{ttl: ttl, now: time.Now}
}

// SetClock 注入时钟 (测试用)
func (c *TTLCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Get 返回缓存值；过期或为空时调用 fetch 重新取。
// fetch 出错不缓存，下次继续尝试。
func (c *TTLCache) Get(fetch func() (interface{}, error)) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.value != nil && c.now().Before(c.expires) {
		return c.value, nil
	}

	v, err := fetch()
	if err != nil {
		return nil, err
	}
	c.value = v
	c.expires = c.now().Add(c.ttl)
	return v, nil
}

// Invalidate 使缓存立即失效 (写入设置后调用)
func (c *TTLCache) Invalidate() {
	c.mu.Lock()
	c.value = nil
	c.mu.Unlock()
}
