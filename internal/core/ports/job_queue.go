package ports

import "context"

// JobQueue enqueues background jobs for asynchronous processing. Jobs are
// durable: Enqueue persists the job and a worker picks it up later, so a
// mail outage never fails the business operation that produced the job.
type JobQueue interface {
	// Enqueue stores a job under the given name with an opaque payload.
	Enqueue(ctx context.Context, jobName string, payload []byte) error
}
