package normalize

import "time"

// chooseBest picks between the offset-respecting candidate a and the
// wall-clock candidate b. When exactly one lands in business hours it
// wins outright; otherwise plausibility is uninformative and the one
// closer to local noon is taken, with ties going to a.
func (n *Normalizer) chooseBest(a, b time.Time) time.Time {
	aOK := n.inBusinessHours(a)
	bOK := n.inBusinessHours(b)

	if aOK && !bOK {
		return a
	}
	if bOK && !aOK {
		return b
	}
	return closerToNoon(a, b)
}

// inBusinessHours reports whether t's hour falls in the half-open
// configured window.
func (n *Normalizer) inBusinessHours(t time.Time) bool {
	return n.bstart <= t.Hour() && t.Hour() < n.bend
}

func closerToNoon(a, b time.Time) time.Time {
	if noonDistance(a) <= noonDistance(b) {
		return a
	}
	return b
}

// noonDistance measures how far t sits from 12:00 on its own date.
func noonDistance(t time.Time) time.Duration {
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
	d := t.Sub(noon)
	if d < 0 {
		d = -d
	}
	return d
}
