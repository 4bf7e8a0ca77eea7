package book

import "context"

/* Small interfaces: persistence is split into reading and writing
 * Every implementation stores the whole library as one snapshot.
 */

// Reader loads a library snapshot
type Reader interface {
	/* Load never fails: a missing, corrupt or unreachable store
	 * yields an empty library. Implementations log what they absorbed.
	 */
	Load(ctx context.Context) *Library
}

// Writer replaces the stored snapshot
type Writer interface {
	Save(ctx context.Context, library *Library) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
