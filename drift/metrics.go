package drift

import "sort"

// computeMetrics summarizes the particle set: terminal-state fractions and
// the distance-traveled distribution. Invalid particles count toward
// neither fraction but keep their distance contribution — they traveled
// before failing.
func computeMetrics(particles []Particle) Metrics {
	n := len(particles)
	if n == 0 {
		return Metrics{}
	}

	beached, afloat := 0, 0
	distances := make([]float64, n)
	var sum float64
	for i := range particles {
		switch particles[i].State {
		case Beached:
			beached++
		case Afloat:
			afloat++
		}
		distances[i] = particles[i].DistanceKm
		sum += particles[i].DistanceKm
	}
	sort.Float64s(distances)

	median := distances[n/2]
	if n%2 == 0 {
		median = (distances[n/2-1] + distances[n/2]) / 2
	}

	return Metrics{
		BeachedFraction: float64(beached) / float64(n),
		AfloatFraction:  float64(afloat) / float64(n),
		MedianKm:        median,
		MeanKm:          sum / float64(n),
		MaxKm:           distances[n-1],
	}
}
