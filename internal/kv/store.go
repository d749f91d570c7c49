package kv

import "context"

// Store is the durable key/value contract the snapshot repositories persist
// through. A missing key is a normal state (first run), so Get signals absence
// with ok=false rather than an error; errors are reserved for backend I/O
// failures. Values are opaque bytes — decoding problems belong to the caller.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
