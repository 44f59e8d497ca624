package rrdb

// aggregate folds a run of k points from a finer archive into one value for
// the coarser archive's bucket, per the aggregation method carried in the
// file header. The input includes empty slots (interval == 0)
// unchanged; each method decides how to treat them.
func aggregate(method aggregationMethod, points []point) float64 {
	switch method {
	case aggSum:
		return aggregateSum(points)
	case aggLast:
		return aggregateLast(points)
	case aggMax:
		return aggregateMax(points)
	case aggMin:
		return aggregateMin(points)
	case aggAverage, aggUnset:
		fallthrough
	default:
		return aggregateAverage(points)
	}
}

func aggregateSum(points []point) float64 {
	var sum float64
	for _, p := range points {
		sum += p.value
	}
	return sum
}

func aggregateAverage(points []point) float64 {
	if len(points) == 0 {
		return 0
	}
	return aggregateSum(points) / float64(len(points))
}

// aggregateLast returns the value of the slot whose decoded interval is
// greatest, ties going to the earliest index (DESIGN.md O3).
func aggregateLast(points []point) float64 {
	if len(points) == 0 {
		return 0
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.interval > best.interval {
			best = p
		}
	}
	return best.value
}

func aggregateMax(points []point) float64 {
	if len(points) == 0 {
		return 0
	}
	max := points[0].value
	for _, p := range points[1:] {
		if p.value > max {
			max = p.value
		}
	}
	return max
}

func aggregateMin(points []point) float64 {
	if len(points) == 0 {
		return 0
	}
	min := points[0].value
	for _, p := range points[1:] {
		if p.value < min {
			min = p.value
		}
	}
	return min
}

// nonEmptyCount returns how many slots in the window are occupied
// (interval != 0), used to enforce x_files_factor (DESIGN.md O2).
func nonEmptyCount(points []point) int {
	n := 0
	for _, p := range points {
		if !p.empty() {
			n++
		}
	}
	return n
}

// meetsXFilesFactor reports whether enough of a k-slot window is non-empty
// to allow propagation, per ceil(k * xff / 100).
func meetsXFilesFactor(points []point, xFilesFactor uint8) bool {
	if xFilesFactor == 0 {
		return true
	}
	k := len(points)
	required := (k*int(xFilesFactor) + 99) / 100
	return nonEmptyCount(points) >= required
}
