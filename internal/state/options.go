package state

// SimplifyOptions controls how captured sub-paths are reduced and quantized.
type SimplifyOptions struct {
	SimplifyPaths       bool    `json:"simplify_paths" toml:"simplify_paths"`
	SimplifyCurrentPath bool    `json:"simplify_current_path" toml:"simplify_current_path"`
	Amount              float64 `json:"amount" toml:"amount"`
	RoundPoints         bool    `json:"round_points" toml:"round_points"`
}

// DefaultSimplifyOptions are the options used when the caller overrides nothing.
var DefaultSimplifyOptions = SimplifyOptions{
	SimplifyPaths:       true,
	SimplifyCurrentPath: false,
	Amount:              15,
	RoundPoints:         true,
}

// SimplifyOverrides is a partial SimplifyOptions. Nil fields keep the default.
type SimplifyOverrides struct {
	SimplifyPaths       *bool    `json:"simplify_paths,omitempty" toml:"simplify_paths"`
	SimplifyCurrentPath *bool    `json:"simplify_current_path,omitempty" toml:"simplify_current_path"`
	Amount              *float64 `json:"amount,omitempty" toml:"amount"`
	RoundPoints         *bool    `json:"round_points,omitempty" toml:"round_points"`
}

// Merge applies the set fields of o over opts.
func (opts SimplifyOptions) Merge(o SimplifyOverrides) SimplifyOptions {
	if o.SimplifyPaths != nil {
		opts.SimplifyPaths = *o.SimplifyPaths
	}
	if o.SimplifyCurrentPath != nil {
		opts.SimplifyCurrentPath = *o.SimplifyCurrentPath
	}
	if o.Amount != nil {
		opts.Amount = *o.Amount
	}
	if o.RoundPoints != nil {
		opts.RoundPoints = *o.RoundPoints
	}
	return opts
}

// Tolerance is the simplification tolerance applied when a sub-path is committed.
func (opts SimplifyOptions) Tolerance() float64 {
	if !opts.SimplifyPaths || opts.Amount < 0 {
		return 0
	}
	return opts.Amount
}

// CurrentTolerance is the tolerance used for the live in-progress path.
func (opts SimplifyOptions) CurrentTolerance() float64 {
	if !opts.SimplifyCurrentPath || opts.Amount < 0 {
		return 0
	}
	return opts.Amount
}
