package squares

// Range and vector helpers for game code. Vector components are uniform
// in [-1, 1), handy for random directions, offsets and jitter.

// Float32Range returns a value uniformly distributed in [min, max).
func (s *Stream) Float32Range(min, max float32) float32 {
	return min + (max-min)*s.Float32()
}

// Float64Range returns a value uniformly distributed in [min, max).
func (s *Stream) Float64Range(min, max float64) float64 {
	return min + (max-min)*s.Float64()
}

// Vec2f32 returns two components in [-1, 1).
func (s *Stream) Vec2f32() (x, y float32) {
	return s.Float32Range(-1, 1), s.Float32Range(-1, 1)
}

// Vec3f32 returns three components in [-1, 1).
func (s *Stream) Vec3f32() (x, y, z float32) {
	return s.Float32Range(-1, 1), s.Float32Range(-1, 1), s.Float32Range(-1, 1)
}

// Vec4f32 returns four components in [-1, 1).
func (s *Stream) Vec4f32() (x, y, z, w float32) {
	return s.Float32Range(-1, 1), s.Float32Range(-1, 1), s.Float32Range(-1, 1), s.Float32Range(-1, 1)
}

// Vec2f64 returns two components in [-1, 1).
func (s *Stream) Vec2f64() (x, y float64) {
	return s.Float64Range(-1, 1), s.Float64Range(-1, 1)
}

// Vec3f64 returns three components in [-1, 1).
func (s *Stream) Vec3f64() (x, y, z float64) {
	return s.Float64Range(-1, 1), s.Float64Range(-1, 1), s.Float64Range(-1, 1)
}

// Vec4f64 returns four components in [-1, 1).
func (s *Stream) Vec4f64() (x, y, z, w float64) {
	return s.Float64Range(-1, 1), s.Float64Range(-1, 1), s.Float64Range(-1, 1), s.Float64Range(-1, 1)
}
