package media

// ResolvePercentage returns the played percentage for d.
// Servers omit the percentage near the start and end of playback, so an
// absent value falls back to the played flag: 100 when played, otherwise 0.
func ResolvePercentage(d *Detail) float64 {
	if d == nil {
		return 0
	}
	if d.Percentage != nil {
		return *d.Percentage
	}
	if d.Played {
		return 100
	}
	return 0
}

// Resolve stores the resolved percentage on d and returns it.
func (d *Detail) Resolve() float64 {
	if d == nil {
		return 0
	}
	pct := ResolvePercentage(d)
	d.Percentage = &pct
	return pct
}
