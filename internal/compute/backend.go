package compute

// Backend splits index ranges across workers.
type Backend interface {
	Name() string
	Workers() int
	// ParallelFor calls fn over disjoint [start, end) chunks covering [0, n)
	// and returns once every chunk is done.
	ParallelFor(n, minChunk int, fn func(start, end int))
}

var activeBackend Backend = NewCPUBackend()

func SetBackend(b Backend) {
	if b == nil {
		b = NewCPUBackend()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}

// Serial runs everything on the calling goroutine.
type Serial struct{}

func (Serial) Name() string { return "serial" }
func (Serial) Workers() int { return 1 }

func (Serial) ParallelFor(n, _ int, fn func(start, end int)) {
	if n > 0 {
		fn(0, n)
	}
}
