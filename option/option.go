package option

import "log/slog"

// Option for DynamicArray.
type Option struct {
	// InitialCapacity is the number of slots allocated on construction.
	InitialCapacity int

	// Logger receives growth events at debug level.
	Logger *slog.Logger
}

// DefaultOption
var DefaultOption = &Option{
	InitialCapacity: 10,
}

// Normalize fills unset fields from DefaultOption.
func (o *Option) Normalize() *Option {
	opt := *DefaultOption
	if o == nil {
		opt.Logger = slog.Default()
		return &opt
	}
	if o.InitialCapacity > 0 {
		opt.InitialCapacity = o.InitialCapacity
	}
	opt.Logger = o.Logger
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	return &opt
}
