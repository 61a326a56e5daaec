package systems

// FrameDelta converts a wall-clock frame duration into a scene delta, where
// 1.0 is one frame at referenceFPS. Long frames are clamped to maxDelta so
// a stall never teleports the overlay; negative durations count as zero.
func FrameDelta(frameSeconds, referenceFPS, maxDelta float32) float32 {
	if frameSeconds <= 0 || referenceFPS <= 0 {
		return 0
	}
	d := frameSeconds * referenceFPS
	if maxDelta > 0 && d > maxDelta {
		d = maxDelta
	}
	return d
}
