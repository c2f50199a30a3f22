package watch

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"safespace/client/internal/api"
	"safespace/client/internal/listings"
	"safespace/client/internal/models"
)

// Inputs is the user-controlled state a watch run derives against. It is
// fixed per watcher; changing a control means starting a new watcher with
// fresh inputs, mirroring the recompute-on-change model of the UI.
type Inputs struct {
	Filters     models.FilterParams
	SearchQuery string
	SortMode    models.SortMode
}

// Handler receives each freshly derived view.
type Handler func(listings.View)

// Watcher periodically refetches the API and re-derives the view, pushing
// the result to every subscribed handler. Derivation itself stays pure; the
// watcher only owns the fetch cadence.
type Watcher struct {
	client   *api.Client
	pipeline listings.Pipeline
	inputs   Inputs
	interval time.Duration
	logger   *logrus.Logger

	stopChan chan struct{}
	wg       sync.WaitGroup

	mu       sync.Mutex
	handlers []Handler
}

// NewWatcher creates a watcher polling at the given interval.
func NewWatcher(client *api.Client, pipeline listings.Pipeline, inputs Inputs, interval time.Duration, logger *logrus.Logger) *Watcher {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Watcher{
		client:   client,
		pipeline: pipeline,
		inputs:   inputs,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Subscribe adds a handler called with every derived view.
func (w *Watcher) Subscribe(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins polling. The first refresh runs immediately.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.run()
}

// Stop gracefully stops polling and waits for the loop to exit.
func (w *Watcher) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	w.refresh()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

// refresh fetches both collections and re-derives the view. A failed fetch
// skips the cycle; the previous view stays on screen.
func (w *Watcher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	properties, err := w.client.GetProperties(ctx)
	if err != nil {
		w.logger.WithError(err).Error("Refresh failed to fetch properties")
		return
	}

	neighborhoods, err := w.client.GetNeighborhoods(ctx)
	if err != nil {
		w.logger.WithError(err).Error("Refresh failed to fetch neighborhoods")
		return
	}

	view := w.pipeline.Derive(properties, neighborhoods, w.inputs.Filters, w.inputs.SearchQuery, w.inputs.SortMode)

	w.logger.WithFields(logrus.Fields{
		"properties": len(properties),
		"matched":    len(view.List),
		"pins":       len(view.MapLocations),
	}).Info("Derived fresh view")

	w.mu.Lock()
	handlers := w.handlers
	w.mu.Unlock()

	for _, handler := range handlers {
		handler(view)
	}
}
