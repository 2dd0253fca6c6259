// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/YellowCow9/nba-sim/internal/adapters/dataset"
	"github.com/YellowCow9/nba-sim/internal/adapters/repository"
	"github.com/YellowCow9/nba-sim/internal/domain/aggregate"
	"github.com/YellowCow9/nba-sim/internal/domain/colorscale"
	"github.com/YellowCow9/nba-sim/internal/domain/geometry"
	"github.com/YellowCow9/nba-sim/internal/domain/model"
	"github.com/YellowCow9/nba-sim/internal/domain/types"
	"github.com/YellowCow9/nba-sim/internal/domain/valuation"
	"github.com/YellowCow9/nba-sim/pkg/logger"
	"github.com/YellowCow9/nba-sim/pkg/metrics"
)

// Service runs the classify -> value -> aggregate pipeline over the loaded
// dataset and memoizes results per arc distance.
//
// The dataset is immutable after Start, so concurrent simulations at
// different arc distances share it without locking; the LRU cache is the
// only synchronized state.
type Service struct {
	mu sync.RWMutex

	// Core components
	shots   []model.ShotRecord
	results repository.Cache
	scale   *colorscale.Scale

	// Baseline aggregation at the reference arc distance
	baselineArcFt float64
	baseline      map[model.Zone]aggregate.Stats

	// Configuration
	dataPath  string
	cacheSize int
	maxShots  int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataPath sets the CSV dataset path loaded on Start.
func WithDataPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataPath = path
		}
	}
}

// WithBaselineArc sets the reference arc distance for delta reporting.
func WithBaselineArc(arcFt float64) Option {
	return func(s *Service) {
		if arcFt > 0 {
			s.baselineArcFt = arcFt
		}
	}
}

// WithCacheSize bounds the per-arc-distance result cache.
func WithCacheSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// WithMaxShots caps the number of dataset rows loaded.
func WithMaxShots(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxShots = n
		}
	}
}

// WithColorRange sets the PPS bounds of the efficiency color scale.
func WithColorRange(vmin, vmax float64) Option {
	return func(s *Service) {
		s.scale = colorscale.New(colorscale.WithRange(vmin, vmax))
	}
}

// WithShots injects an in-memory dataset, bypassing the CSV loader.
func WithShots(shots []model.ShotRecord) Option {
	return func(s *Service) {
		s.shots = shots
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataPath:      "league_shots.csv",
		baselineArcFt: geometry.BaselineArcFt,
		cacheSize:     64,
		scale:         colorscale.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset (unless injected) and computes the baseline
// aggregation. A missing or unreadable dataset is fatal here; the service
// never retries.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.shots == nil {
		loader := dataset.NewLoader(
			dataset.WithMaxRows(s.maxShots),
			dataset.WithLogger(s.logger),
		)
		shots, err := loader.Load(ctx, s.dataPath)
		if err != nil {
			return err
		}
		s.shots = shots
	}

	s.results = repository.NewLRUCache(repository.WithMaxEntries(s.cacheSize))

	// Baseline run: same pipeline, fixed reference arc.
	valuedBaseline := s.classifyAll(ctx, s.baselineArcFt)
	s.baseline = aggregate.Aggregate(valuedBaseline)
	metrics.UpdateBaselineArc(s.baselineArcFt)
	metrics.UpdateDatasetShots(len(s.shots))

	s.started = true
	s.logger.Info(ctx, "simulator service started",
		logger.Int("shots", len(s.shots)),
		logger.Float64("baselineArcFt", s.baselineArcFt),
		logger.Int("cacheSize", s.cacheSize),
	)
	return nil
}

// Stop marks the service stopped. There is no background state to tear down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "simulator service stopped")
}

// Simulate returns the ranked per-zone report for arcFt, computing it if
// no cached result exists.
func (s *Service) Simulate(ctx context.Context, arcFt float64) (types.Report, error) {
	res, err := s.result(ctx, arcFt)
	if err != nil {
		return types.Report{}, err
	}
	return res.Report, nil
}

// LabeledShots returns the full labeled record set for arcFt, for spatial
// rendering. It shares the cache entry with Simulate.
func (s *Service) LabeledShots(ctx context.Context, arcFt float64) ([]types.LabeledShot, error) {
	res, err := s.result(ctx, arcFt)
	if err != nil {
		return nil, err
	}
	return res.Shots, nil
}

// BaselineArcFt returns the reference arc distance.
func (s *Service) BaselineArcFt() float64 {
	return s.baselineArcFt
}

// result returns the memoized simulation for arcFt, running the pipeline
// on a cache miss.
func (s *Service) result(ctx context.Context, arcFt float64) (repository.Result, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return repository.Result{}, ErrNotStarted
	}

	if res, ok := s.results.Get(ctx, arcFt); ok {
		return res, nil
	}

	start := time.Now()
	res := s.compute(ctx, arcFt)
	metrics.RecordSimulation(float64(time.Since(start).Milliseconds()))

	s.results.Put(ctx, arcFt, res)
	return res, nil
}

// compute runs the full pipeline for one arc distance.
func (s *Service) compute(ctx context.Context, arcFt float64) repository.Result {
	valued := s.classifyAll(ctx, arcFt)
	stats := aggregate.Aggregate(valued)

	labeled := make([]types.LabeledShot, len(valued))
	for i, v := range valued {
		labeled[i] = types.LabeledShot{
			LocX:   v.Shot.LocX,
			LocY:   v.Shot.LocY,
			Zone:   v.Zone,
			Made:   v.Shot.Made,
			Points: v.Points,
		}
	}

	return repository.Result{
		Report: s.buildReport(arcFt, len(valued), stats),
		Shots:  labeled,
	}
}

// classifyAll labels and values every record under arcFt. Records the
// classifier rejects are skipped with a warning; the rest of the batch
// continues (documented skip-and-continue policy).
func (s *Service) classifyAll(ctx context.Context, arcFt float64) []model.ValuedShot {
	valued := make([]model.ValuedShot, 0, len(s.shots))
	for _, rec := range s.shots {
		zone, err := geometry.Classify(rec, arcFt)
		if err != nil {
			metrics.RecordRecordSkipped()
			s.logger.Warn(ctx, "skipping unclassifiable record", logger.Error(err))
			continue
		}
		valued = append(valued, valuation.Value(rec, zone))
	}
	return valued
}

// buildReport turns raw stats into the ranked, colored report shape.
func (s *Service) buildReport(arcFt float64, total int, stats map[model.Zone]aggregate.Stats) types.Report {
	report := types.Report{
		ArcDistanceFt: arcFt,
		TotalAttempts: total,
		Zones:         make([]types.ZoneSummary, 0, len(model.CanonicalOrder())),
	}

	for rank, zone := range aggregate.Rank(stats) {
		summary := types.ZoneSummary{
			Rank: rank + 1,
			Zone: zone,
		}
		if st, ok := stats[zone]; ok {
			summary.Active = true
			summary.PPS = st.MeanPPS
			summary.Attempts = st.Attempts
			summary.VolumeShare = st.VolumeShare
			summary.Color = s.scale.HSL(st.MeanPPS)
			summary.ColorHex = s.scale.Hex(st.MeanPPS)
			if delta, ok := aggregate.DeltaPPS(stats, s.baseline, zone); ok {
				d := delta
				summary.Delta = &d
			}
			metrics.UpdateZoneStats(string(zone), st.Attempts, st.MeanPPS)
		} else {
			metrics.ClearZoneStats(string(zone))
		}
		report.Zones = append(report.Zones, summary)
	}

	_, cornerActive := stats[model.ZoneCornerThree]
	report.CornerActive = cornerActive
	return report
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":       s.started,
		"datasetShots":  len(s.shots),
		"baselineArcFt": s.baselineArcFt,
		"cacheSize":     s.cacheSize,
	}
	if s.started {
		entries := s.results.Len(context.Background())
		stats["cacheEntries"] = entries
		metrics.UpdateCacheEntries(entries)
	}
	return stats
}
