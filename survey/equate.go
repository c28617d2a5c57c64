package survey

// DetectEquates compares every pair of stations and reports the ones closer
// than tolerance once calibrated. Pairs come out in enumeration order: i
// ascending, then j ascending, with i < j.
//
// This is O(n^2) in the number of stations. Large drawings should be split
// into several runs, for instance one per layer.
//
// The result is a plain pairwise relation. If A is near B and B is near C,
// A and C are not equated unless they are also within tolerance themselves.
// Survex doesn't mind redundant equates, so no equivalence classes are built.
func DetectEquates(stations []Station, tolerance, scaleFactor float64) []EquatePair {
	var pairs []EquatePair
	for i := 0; i < len(stations)-1; i++ {
		for j := i + 1; j < len(stations); j++ {
			sepn := scaleFactor * Separation(stations[i].Position, stations[j].Position)
			if sepn < tolerance {
				pairs = append(pairs, EquatePair{
					A:          stations[i].ID(),
					B:          stations[j].ID(),
					Separation: sepn,
				})
			}
		}
	}
	return pairs
}
