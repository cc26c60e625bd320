package ident

func makeOptions(opts ...Option) options {
	opt := options{}
	for _, o := range opts {
		o(&opt)
	}
	return opt
}

type options struct {
	maxLength int
}

// Option is a functional option for identifier validation.
type Option func(*options)

// WithMaxLength sets an upper bound on the raw name length in bytes. Zero,
// the default, means no bound. The naming rules themselves impose no limit,
// but database engines commonly do, such as 63 bytes in PostgreSQL or 64
// characters in MySQL.
func WithMaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}
