package orbit

// SystemOption configures a System at construction.
type SystemOption func(*system)

// WithWorkers updates controllers on a worker pool of n goroutines. n <= 1 updates sequentially.
func WithWorkers(n int) SystemOption {
	return func(s *system) {
		s.workers = n
	}
}

// WithVerbose logs active-camera changes.
func WithVerbose(verbose bool) SystemOption {
	return func(s *system) {
		s.verbose = verbose
	}
}

// WithActiveCamera seeds the active-camera record.
func WithActiveCamera(rec ActiveCameraData) SystemOption {
	return func(s *system) {
		s.active = rec
	}
}
