package drift

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	channerics "github.com/niceyeti/channerics/channels"

	"github.com/LALITH0110/vArI-oceans-four/field"
	"github.com/LALITH0110/vArI-oceans-four/geo"
)

// particleSeedStride decorrelates per-particle RNG streams.
const particleSeedStride int64 = 0x9E3779B9

// spawnAttempts bounds rejection sampling per particle before falling back
// to the nearest water cell.
const spawnAttempts = 100

// span is one worker task: step particles [lo, hi) at time tDays.
type span struct {
	lo, hi int
	step   int
	tDays  float64
}

// report is one worker's outcome for a span.
type report struct {
	lo      int
	invalid int
	hits    []int // particle indices observed Afloat on land
}

// Run executes a full simulation: spawn, step loop, metrics. It is a pure
// function of (cfg, cfg.Seed): identical inputs produce identical
// trajectories, metrics, and diagnostics, regardless of Workers.
//
// Cancellation is cooperative between steps. A cancelled run returns the
// partial RunResult — valid through the last finished step — together with
// ctx.Err().
func Run(ctx context.Context, cfg Config) (*RunResult, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	band, err := cfg.Grid.CoastalBand(cfg.Beaching.BandWidthCells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	f, err := field.New(cfg.Field, field.WithMask(cfg.Grid))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	machine := NewBeachingMachine(cfg.Grid, band, cfg.Beaching)
	it := NewIntegrator(f, cfg.Grid, machine, cfg.DtSeconds, cfg.RecordHistory)

	particles, err := spawn(cfg)
	if err != nil {
		return nil, err
	}

	// One deterministic RNG stream per particle: the worker partition can
	// never reorder draws within a stream.
	rngs := make([]*rand.Rand, cfg.Particles)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewSource(cfg.Seed + int64(i+1)*particleSeedStride))
	}

	res := &RunResult{Particles: particles}
	dtDays := cfg.DtSeconds / secondsPerDay

	workers := cfg.Workers
	if workers < 2 || cfg.Particles < 2 {
		workers = 1
	}

	stepRange := func(s span) report {
		rep := report{lo: s.lo}
		for i := s.lo; i < s.hi; i++ {
			p := &particles[i]
			wasAfloat := p.State == Afloat
			if it.Step(p, rngs[i], s.tDays) {
				rep.hits = append(rep.hits, i)
			}
			if wasAfloat && p.State == Invalid {
				rep.invalid++
			}
		}
		return rep
	}

	collect := func(step int, reps []report) {
		sort.Slice(reps, func(i, j int) bool { return reps[i].lo < reps[j].lo })
		for _, rep := range reps {
			res.Diagnostics.Invalid += rep.invalid
			for _, idx := range rep.hits {
				res.Diagnostics.LandHits = append(res.Diagnostics.LandHits, LandHit{Step: step, Particle: idx})
			}
		}
	}

	if workers == 1 {
		for step := 0; step < cfg.Steps; step++ {
			if err := ctx.Err(); err != nil {
				res.Metrics = computeMetrics(particles)
				return res, err
			}
			rep := stepRange(span{lo: 0, hi: cfg.Particles, step: step, tDays: float64(step) * dtDays})
			collect(step, []report{rep})
			res.StepsRun++
		}
		res.Metrics = computeMetrics(particles)
		return res, nil
	}

	// Parallel path: persistent workers pull spans and fan reports into a
	// single merged channel (tabular's agent/estimator coordination shape).
	done := make(chan struct{})
	defer close(done)

	tasks := make(chan span)
	outs := make([]<-chan report, workers)
	for w := 0; w < workers; w++ {
		out := make(chan report)
		outs[w] = out
		go func() {
			defer close(out)
			for {
				select {
				case <-done:
					return
				case s, ok := <-tasks:
					if !ok {
						return
					}
					select {
					case out <- stepRange(s):
					case <-done:
						return
					}
				}
			}
		}()
	}
	reports := channerics.Merge(done, outs...)

	chunk := (cfg.Particles + workers - 1) / workers
	for step := 0; step < cfg.Steps; step++ {
		if err := ctx.Err(); err != nil {
			res.Metrics = computeMetrics(particles)
			return res, err
		}

		tDays := float64(step) * dtDays
		sent := 0
		for lo := 0; lo < cfg.Particles; lo += chunk {
			hi := lo + chunk
			if hi > cfg.Particles {
				hi = cfg.Particles
			}
			tasks <- span{lo: lo, hi: hi, step: step, tDays: tDays}
			sent++
		}

		// Barrier: a step completes only when every span has reported.
		reps := make([]report, 0, sent)
		for i := 0; i < sent; i++ {
			reps = append(reps, <-reports)
		}
		collect(step, reps)
		res.StepsRun++
	}

	res.Metrics = computeMetrics(particles)
	return res, nil
}

// validate rejects configurations that cannot run.
func validate(cfg Config) error {
	if cfg.Grid == nil {
		return ErrNilGrid
	}
	switch {
	case cfg.Particles <= 0:
		return fmt.Errorf("%w: particle count must be positive, got %d", ErrBadConfig, cfg.Particles)
	case cfg.Steps < 0:
		return fmt.Errorf("%w: steps must be non-negative, got %d", ErrBadConfig, cfg.Steps)
	case cfg.DtSeconds <= 0:
		return fmt.Errorf("%w: dt must be positive, got %v", ErrBadConfig, cfg.DtSeconds)
	case cfg.Beaching.Probability < 0 || cfg.Beaching.Probability > 1:
		return fmt.Errorf("%w: beaching probability must lie in [0,1], got %v", ErrBadConfig, cfg.Beaching.Probability)
	case cfg.Beaching.MinAgeSteps < 0:
		return fmt.Errorf("%w: minimum beaching age must be non-negative, got %d", ErrBadConfig, cfg.Beaching.MinAgeSteps)
	case cfg.Beaching.BandWidthCells <= 0:
		return fmt.Errorf("%w: coastal band width must be positive, got %d", ErrBadConfig, cfg.Beaching.BandWidthCells)
	case cfg.Release.RadiusKm < 0:
		return fmt.Errorf("%w: release radius must be non-negative, got %v", ErrBadConfig, cfg.Release.RadiusKm)
	}
	return nil
}

// spawn places cfg.Particles tracers uniformly over the release disc,
// rejection-sampling positions that land on a land cell. A particle that
// exhausts its attempts falls back to the water cell nearest the release
// point; if none exists within reach, the run fails with ErrNoOceanSpawn.
//
// Spawning draws from a dedicated stream seeded by cfg.Seed, separate from
// the per-particle stepping streams.
func spawn(cfg Config) ([]Particle, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	radiusDeg := cfg.Release.RadiusKm / geo.KmPerDegree
	cosLat := math.Cos(cfg.Release.Lat * geo.DegToRad)
	if math.Abs(cosLat) < 1e-10 {
		cosLat = 1e-10
	}

	particles := make([]Particle, cfg.Particles)
	for i := range particles {
		lat, lon, ok := cfg.Release.Lat, cfg.Release.Lon, false
		for attempt := 0; attempt < spawnAttempts; attempt++ {
			angle := rng.Float64() * 2 * math.Pi
			r := rng.Float64() * radiusDeg
			candLat := cfg.Release.Lat + r*math.Cos(angle)
			candLon := cfg.Release.Lon + r*math.Sin(angle)/cosLat
			if cfg.Grid.IsOcean(candLat, candLon) {
				lat, lon, ok = candLat, candLon, true
				break
			}
		}
		if !ok {
			var err error
			lat, lon, err = cfg.Grid.NearestOcean(cfg.Release.Lat, cfg.Release.Lon, 5)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrNoOceanSpawn, err)
			}
		}
		particles[i] = Particle{Lat: lat, Lon: geo.WrapLon(lon), State: Afloat}
		if cfg.RecordHistory {
			particles[i].Trajectory = []Fix{{Lat: particles[i].Lat, Lon: particles[i].Lon}}
		}
	}
	return particles, nil
}
