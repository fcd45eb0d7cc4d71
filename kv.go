package nutrigo

// Storage keys. One logical record per key; every store does a whole-value
// read-modify-write, so keys never need cross-key atomicity.
const (
	KeyUsers        = "nutrigo_users"
	KeyCurrentUser  = "nutrigo_current_user"
	KeyTasks        = "nutrigo_tasks"
	KeySleepLogs    = "nutrigo_sleep_logs"
	KeyTestimonials = "nutrigo_testimonials"
	KeyStreak       = "nutrigo_streak"
)

// KeyValueStore is the persistence contract the stores are built on.
// Get reports absence as (nil, nil); a non-nil error means the backend
// itself failed, which consumers treat the same as absence (the store
// fails open to empty rather than crashing a user action).
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Close() error
}
