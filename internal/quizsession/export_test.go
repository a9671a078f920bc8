package quizsession

import "time"

func NewMemoryStoreWithClock(ttl time.Duration, now func() time.Time) Store {
	return newMemoryStore(ttl, now)
}
