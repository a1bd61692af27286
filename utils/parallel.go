package utils

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
}

// Range is the half-open interval [From, To) of work items handed to one group.
type Range struct {
	From int
	To   int
}

// Len returns the number of work items in the range.
func (r Range) Len() int {
	return r.To - r.From
}

// PartitionRanges splits [0, totalSize) into at most numGroups contiguous ranges. Every range but
// the last holds ceil(totalSize/numGroups) items and the last one absorbs whatever remains. Ranges
// that would be empty are not returned, so the result never has gaps or overlaps.
func PartitionRanges(totalSize, numGroups int) []Range {
	if totalSize <= 0 {
		return nil
	}
	if numGroups <= 1 {
		return []Range{{0, totalSize}}
	}
	groupSize := (totalSize-1)/numGroups + 1

	ranges := make([]Range, 0, numGroups)
	from := 0
	for groupNum := 0; groupNum < numGroups-1 && from < totalSize; groupNum++ {
		to := MinInt(from+groupSize, totalSize)
		ranges = append(ranges, Range{from, to})
		from = to
	}
	if from < totalSize {
		ranges = append(ranges, Range{from, totalSize})
	}
	return ranges
}

// GroupWorkFunc does the work of one group over the items in [from, to).
type GroupWorkFunc func(groupNum, from, to int) error

// GroupWorkParallel partitions totalSize work items into numGroups contiguous ranges with
// PartitionRanges and runs one goroutine per range, returning once all of them are done. With a
// single range the work runs on the calling goroutine. A panic inside a group is recovered and
// returned as an error; errors from several groups are combined.
func GroupWorkParallel(totalSize, numGroups int, groupWork GroupWorkFunc) error {
	ranges := PartitionRanges(totalSize, numGroups)
	switch len(ranges) {
	case 0:
		return nil
	case 1:
		return runGroup(0, ranges[0], groupWork)
	}

	var wait sync.WaitGroup
	var bigError error
	var bigErrorMutex sync.Mutex

	wait.Add(len(ranges))
	for groupNum, r := range ranges {
		go func(groupNum int, r Range) {
			defer wait.Done()
			if err := runGroup(groupNum, r, groupWork); err != nil {
				bigErrorMutex.Lock()
				bigError = multierr.Combine(bigError, err)
				bigErrorMutex.Unlock()
			}
		}(groupNum, r)
	}
	wait.Wait()
	return bigError
}

func runGroup(groupNum int, r Range, groupWork GroupWorkFunc) (err error) {
	defer func() {
		if thePanic := recover(); thePanic != nil {
			err = errors.Errorf("got panic in work group %d [%d, %d): %v", groupNum, r.From, r.To, thePanic)
		}
	}()
	return groupWork(groupNum, r.From, r.To)
}
