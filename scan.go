package hgt2png

import (
	"runtime"
	"sync"
)

// rangeInit holds the guaranteed-out-of-range starting bounds: any real
// sample updates at least one side, except when the whole raster is voids.
var rangeInit = Range{Min: 32768, Max: -32768}

// parallelScanRows is the row count below which the scan stays serial;
// goroutine overhead dominates on small rasters.
const parallelScanRows = 512

// ScanRange walks all samples once, tracking the minimum and maximum
// observed elevation and counting void samples. Void samples never
// update the minimum. The reduction is exact integer comparison, so
// partitioning it across workers is safe; workers <= 0 uses one worker
// per available CPU.
func (r *Raster) ScanRange(workers int) (Range, error) {
	if err := r.requireStage(StageSigned); err != nil {
		return Range{}, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > r.height {
		workers = r.height
	}
	if workers <= 1 || r.height < parallelScanRows {
		return r.scanRows(0, r.height), nil
	}

	results := make([]Range, workers)
	rowsPer := r.height / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * rowsPer
		hi := lo + rowsPer
		if w == workers-1 {
			hi = r.height
		}
		wg.Add(1)
		go func(slot, lo, hi int) {
			defer wg.Done()
			results[slot] = r.scanRows(lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()

	merged := rangeInit
	for _, rg := range results {
		merged = mergeRange(merged, rg)
	}
	return merged, nil
}

// scanRows reduces the half-open row interval [lo, hi).
func (r *Raster) scanRows(lo, hi int) Range {
	rg := rangeInit
	for i := lo * r.width; i < hi*r.width; i++ {
		v := int(r.sample(i))
		if v < rg.Min {
			if v != Void {
				rg.Min = v
			} else {
				rg.Voids++
			}
		} else if v > rg.Max {
			rg.Max = v
		}
	}
	return rg
}

// mergeRange combines two partial reductions.
func mergeRange(a, b Range) Range {
	if b.Min < a.Min {
		a.Min = b.Min
	}
	if b.Max > a.Max {
		a.Max = b.Max
	}
	a.Voids += b.Voids
	return a
}
