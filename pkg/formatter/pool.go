package formatter

import (
	"sort"
	"sync"
)

// DefaultThreads is the worker pool size used when the caller passes a
// non-positive thread count.
const DefaultThreads = 4

// ProcessPaths fans the rewrite pipeline out over a bounded pool of
// worker goroutines. Each path is scheduled exactly once even when it
// appears multiple times in the input, and one file's failure never
// aborts the others. The returned results are sorted by path so output
// does not depend on scheduling order.
func (f *formatter) ProcessPaths(paths []string, threads int) []Result {
	if threads < 1 {
		threads = DefaultThreads
	}

	seen := make(map[string]bool, len(paths))
	unique := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		unique = append(unique, p)
	}

	jobs := make(chan string)
	results := make(chan Result, len(unique))

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- f.ProcessFile(path)
			}
		}()
	}

	for _, path := range unique {
		jobs <- path
	}
	close(jobs)
	wg.Wait()
	close(results)

	collected := make([]Result, 0, len(unique))
	for res := range results {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Path < collected[j].Path
	})

	return collected
}
