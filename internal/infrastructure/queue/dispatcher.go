package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/api/metrics"
	"github.com/galeria/admin-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	jobTimeout     = 30 * time.Second
)

// Dispatcher removes stored photo files in the background. Jobs are routed
// to a fixed set of workers by gallery id, so files of one gallery are
// removed by the same worker in enqueue order.
type Dispatcher struct {
	workers []chan ports.CleanupJob
	storage ports.PhotoStorage
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, storage ports.PhotoStorage, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.CleanupJob, numWorkers),
		storage: storage,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.CleanupJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue schedules a file removal. It never blocks: when the worker's buffer
// is full the job is dropped and logged, leaving an orphaned file behind.
func (d *Dispatcher) Enqueue(job ports.CleanupJob) {
	if job.Location == "" {
		return
	}
	idx := d.shardIndex(job.GalleryID)
	select {
	case d.workers[idx] <- job:
		metrics.CleanupQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.CleanupJobsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("gallery_id", job.GalleryID).
			Str("location", job.Location).
			Msg("cleanup queue full, dropping job")
	}
}

// EnqueueBatch enqueues jobs in order. Jobs of one gallery land on the same
// worker, so they are processed in the order given.
func (d *Dispatcher) EnqueueBatch(jobs []ports.CleanupJob) {
	for _, j := range jobs {
		d.Enqueue(j)
	}
}

// shardIndex maps a gallery id deterministically to a worker index.
func (d *Dispatcher) shardIndex(galleryID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(galleryID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.CleanupJob) {
	defer d.wg.Done()
	depth := metrics.CleanupQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			d.process(ctx, id, job)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, id int, job ports.CleanupJob) {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	if err := d.storage.Delete(ctx, job.Location); err != nil {
		metrics.CleanupJobsTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).
			Str("gallery_id", job.GalleryID).
			Str("location", job.Location).
			Int("worker_id", id).
			Msg("stored file cleanup failed")
		return
	}
	metrics.CleanupJobsTotal.WithLabelValues("ok").Inc()
	d.log.Debug().Str("location", job.Location).Int("worker_id", id).Msg("stored file removed")
}
