package model

// BuildTrace collapses per-atom records into one entry per residue.
//
// A record starts a new residue when its (chain, residue number) pair is
// different from the record before it; the confidence of the residue is
// the one of its first atom. When the chain changes as well, the index of
// the previous residue is recorded as a chain break.
func BuildTrace(records []ResidueRecord) Trace {
	var trace Trace
	var prev ResidueRecord
	counter := 0

	for i, rec := range records {
		if i > 0 && rec.Chain == prev.Chain && rec.ResSeq == prev.ResSeq {
			continue
		}

		counter++
		trace.Residues = append(trace.Residues, counter)
		trace.Plddt = append(trace.Plddt, rec.Value)

		if i > 0 && rec.Chain != prev.Chain {
			trace.Breaks = append(trace.Breaks, counter-1)
		}
		prev = rec
	}

	return trace
}

// BoundariesFromCounts returns the cumulative residue count at the end of
// every chain but the last. An empty chain between two others would repeat
// the previous boundary; the repeat is dropped so the result is strictly
// increasing.
func BoundariesFromCounts(counts []ChainCount) []int {
	if len(counts) < 2 {
		return []int{}
	}

	boundaries := make([]int, 0, len(counts)-1)
	sum := 0
	for i, c := range counts[:len(counts)-1] {
		sum += c.Residues
		if i > 0 && sum == boundaries[len(boundaries)-1] {
			continue
		}
		boundaries = append(boundaries, sum)
	}
	return boundaries
}
