package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// SalesFacade exposes the subset of application functionality required by the watcher.
type SalesFacade interface {
	LowStockLevels(ctx context.Context, threshold float64, limit int) ([]model.StockLevel, error)
}

// StockWatcher periodically scans aggregate stock levels and reports items
// running low. It only observes; replenishment stays a human decision.
type StockWatcher struct {
	facade       SalesFacade
	pollInterval time.Duration
	threshold    float64
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.StockLevel
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStockWatcher constructs the low-stock watcher worker pool.
func NewStockWatcher(facade SalesFacade, pollInterval time.Duration, threshold float64, batchSize, workers int, logger *slog.Logger) *StockWatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &StockWatcher{
		facade:       facade,
		pollInterval: pollInterval,
		threshold:    threshold,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.StockLevel, batchSize*workers),
	}
}

// Start launches background scanning.
func (w *StockWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker(runCtx)
	}

	w.wg.Add(1)
	go w.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (w *StockWatcher) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *StockWatcher) dispatch(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.jobs)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.fetchAndDispatch(ctx)
		}
	}
}

func (w *StockWatcher) fetchAndDispatch(ctx context.Context) {
	levels, err := w.facade.LowStockLevels(ctx, w.threshold, w.batchSize)
	if err != nil {
		w.logger.Error("low stock scan failed", slog.String("error", err.Error()))
		return
	}
	for _, level := range levels {
		select {
		case <-ctx.Done():
			return
		case w.jobs <- level:
		}
	}
}

func (w *StockWatcher) worker(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case level, ok := <-w.jobs:
			if !ok {
				return
			}
			w.handleLevel(level)
		}
	}
}

func (w *StockWatcher) handleLevel(level model.StockLevel) {
	w.logger.Warn("stock running low",
		slog.Int64("item_id", level.ItemID),
		slog.Float64("available", level.Available()),
		slog.Float64("threshold", w.threshold),
	)
}
