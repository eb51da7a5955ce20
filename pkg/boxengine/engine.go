package boxengine

// nearZero is the threshold below which leftover space is not worth
// distributing further.
const nearZero = 0.01

// Calc assigns a Size to every sizer for the given amount of space.
//
// Each assigned size lies within the sizer's [MinSize, MaxSize]. When the
// space does not cover the aggregate minimum, every sizer is pinned at its
// minimum and the (negative) remainder is returned; when the space exceeds
// the aggregate maximum, every sizer is pinned at its maximum and the
// (positive) remainder is returned. Otherwise surplus or deficit relative
// to the clamped hints is distributed weighted by stretch, saturating
// sizers at their bounds, and any residue is then spread evenly over the
// unsaturated sizers. The return value is the space left over after
// distribution, which is zero in the weighted case.
func Calc(sizers []*Sizer, space float64) float64 {
	if len(sizers) == 0 {
		return space
	}

	// Phase 1: reset state and gather totals.
	var totalMin, totalMax, totalSize, totalStretch float64
	stretchCount := 0
	for _, s := range sizers {
		s.done = false
		totalMin += s.MinSize
		totalMax += s.MaxSize
		s.Size = clampSize(s.SizeHint, s.MinSize, s.MaxSize)
		totalSize += s.Size
		if s.Stretch > 0 {
			totalStretch += s.Stretch
			stretchCount++
		}
	}

	// Fast paths: hints already fit, or the bounds decide everything.
	if space == totalSize {
		return 0
	}
	if space <= totalMin {
		for _, s := range sizers {
			s.Size = s.MinSize
		}
		return space - totalMin
	}
	if space >= totalMax {
		for _, s := range sizers {
			s.Size = s.MaxSize
		}
		return space - totalMax
	}

	if space < totalSize {
		shrink(sizers, totalSize-space, totalStretch, stretchCount)
	} else {
		grow(sizers, space-totalSize, totalStretch, stretchCount)
	}
	return 0
}

// shrink removes freeSpace from the sizers, stretch-weighted first, then
// evenly across whatever is not yet pinned at its minimum.
func shrink(sizers []*Sizer, freeSpace, totalStretch float64, stretchCount int) {
	count := len(sizers)

	// Stretch-weighted pass: each iteration re-divides the remaining
	// deficit over the still-active stretch weights, pinning sizers that
	// reach their minimum.
	for stretchCount > 0 && freeSpace > nearZero {
		distSpace := freeSpace
		distStretch := totalStretch
		for _, s := range sizers {
			if s.done || s.Stretch == 0 {
				continue
			}
			amt := s.Stretch * distSpace / distStretch
			if s.Size-amt <= s.MinSize {
				freeSpace -= s.Size - s.MinSize
				totalStretch -= s.Stretch
				stretchCount--
				count--
				s.done = true
				s.Size = s.MinSize
			} else {
				freeSpace -= amt
				s.Size -= amt
			}
		}
	}

	// Even pass over everything not yet pinned.
	for count > 0 && freeSpace > nearZero {
		amt := freeSpace / float64(count)
		for _, s := range sizers {
			if s.done {
				continue
			}
			if s.Size-amt <= s.MinSize {
				freeSpace -= s.Size - s.MinSize
				count--
				s.done = true
				s.Size = s.MinSize
			} else {
				freeSpace -= amt
				s.Size -= amt
			}
		}
	}
}

// grow hands growSpace to the sizers, stretch-weighted first, then evenly
// across whatever is not yet pinned at its maximum.
func grow(sizers []*Sizer, growSpace, totalStretch float64, stretchCount int) {
	count := len(sizers)

	for stretchCount > 0 && growSpace > nearZero {
		distSpace := growSpace
		distStretch := totalStretch
		for _, s := range sizers {
			if s.done || s.Stretch == 0 {
				continue
			}
			amt := s.Stretch * distSpace / distStretch
			if s.Size+amt >= s.MaxSize {
				growSpace -= s.MaxSize - s.Size
				totalStretch -= s.Stretch
				stretchCount--
				count--
				s.done = true
				s.Size = s.MaxSize
			} else {
				growSpace -= amt
				s.Size += amt
			}
		}
	}

	for count > 0 && growSpace > nearZero {
		amt := growSpace / float64(count)
		for _, s := range sizers {
			if s.done {
				continue
			}
			if s.Size+amt >= s.MaxSize {
				growSpace -= s.MaxSize - s.Size
				count--
				s.done = true
				s.Size = s.MaxSize
			} else {
				growSpace -= amt
				s.Size += amt
			}
		}
	}
}

// clampSize restricts v to [minVal, maxVal], minimum winning on conflict.
func clampSize(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
