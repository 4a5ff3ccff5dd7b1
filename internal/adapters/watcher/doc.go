// Package watcher feeds filesystem activity under a base directory into an
// access tracker. Create and write events are debounced and flushed as
// one MarkAccessed batch, so a burst of writes inside a unit touches it once.
// A directory that appears already populated has its contents queued too.
package watcher
