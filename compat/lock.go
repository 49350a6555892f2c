package compat

import "sync"

// tinylog loggers are single-goroutine, while gnet event loops and fasthttp
// workers log concurrently. Adapters serialize their calls through a Locker,
// shared by every adapter a Builder creates.

// lockable is embedded by adapters accepting a shared lock
type lockable struct {
	lock sync.Locker
}

func (l *lockable) do(fn func()) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fn()
}
