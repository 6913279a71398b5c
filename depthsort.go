package trirast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSortMethod is returned by ParseSortMethod for unrecognized names.
var ErrUnknownSortMethod = errors.New("trirast: unknown sort method")

// SortMethod names a depth sorting algorithm.
type SortMethod uint8

const (
	// QuickSort is the default: in-place, O(n log n) on average.
	QuickSort SortMethod = iota
	MergeSort
	BubbleSort
)

var sortMethodNames = [...]string{
	QuickSort:  "quick",
	MergeSort:  "merge",
	BubbleSort: "bubble",
}

func (m SortMethod) String() string {
	if int(m) < len(sortMethodNames) {
		return sortMethodNames[m]
	}
	return fmt.Sprintf("SortMethod(%d)", m)
}

// ParseSortMethod returns the sort method with the given name.
// "quicksort", "mergesort" and "bubblesort" are accepted as well.
func ParseSortMethod(name string) (SortMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quick", "quicksort":
		return QuickSort, nil
	case "merge", "mergesort":
		return MergeSort, nil
	case "bubble", "bubblesort":
		return BubbleSort, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSortMethod, name)
}

// SortByDepth orders tris back to front (descending AvgDepth) in place
// using the given method. Unknown methods use QuickSort.
func SortByDepth(tris []Triangle, m SortMethod) {
	switch m {
	case MergeSort:
		SortMerge(tris)
	case BubbleSort:
		SortBubble(tris)
	default:
		SortQuick(tris)
	}
}

// SortBubble orders tris by descending AvgDepth. It stops early once a pass
// makes no swap, so already sorted input costs a single pass.
func SortBubble(tris []Triangle) {
	for n := len(tris); n > 1; n-- {
		swapped := false
		for j := 0; j < n-1; j++ {
			if tris[j].AvgDepth < tris[j+1].AvgDepth {
				tris[j], tris[j+1] = tris[j+1], tris[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// SortMerge orders tris by descending AvgDepth. It is stable: equal depths
// keep their input order.
func SortMerge(tris []Triangle) {
	if len(tris) < 2 {
		return
	}
	tmp := make([]Triangle, len(tris))
	mergeSort(tris, tmp)
}

func mergeSort(a, tmp []Triangle) {
	if len(a) < 2 {
		return
	}
	mid := len(a) / 2
	mergeSort(a[:mid], tmp[:mid])
	mergeSort(a[mid:], tmp[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if a[i].AvgDepth >= a[j].AvgDepth {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			j++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid])
	copy(tmp[k:], a[j:])
	copy(a, tmp[:len(a)])
}

// SortQuick orders tris by descending AvgDepth with a Lomuto partition
// around the last element. It is not stable.
func SortQuick(tris []Triangle) {
	for len(tris) > 1 {
		p := partition(tris)
		// Recurse into the smaller side to bound stack depth.
		if p < len(tris)-p-1 {
			SortQuick(tris[:p])
			tris = tris[p+1:]
		} else {
			SortQuick(tris[p+1:])
			tris = tris[:p]
		}
	}
}

func partition(a []Triangle) int {
	hi := len(a) - 1
	pivot := a[hi].AvgDepth
	i := 0
	for j := 0; j < hi; j++ {
		if a[j].AvgDepth >= pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}
