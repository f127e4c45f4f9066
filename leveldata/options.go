package leveldata

type decodeConfig struct {
	lenient bool
	warn    func(error)
}

// DecodeOption configures FromLParse and LoadFiles.
type DecodeOption func(*decodeConfig)

// WithLenient makes decoding substitute safe defaults for corrupted values
// (unknown object ids, out-of-range table indices, bad enum tags) instead of
// failing. Missing entries and wrong entry types still fail.
func WithLenient(v bool) DecodeOption {
	return func(c *decodeConfig) { c.lenient = v }
}

// WithWarningHandler receives every substitution made in lenient mode. Each
// warning wraps ErrCorrupted.
func WithWarningHandler(fn func(error)) DecodeOption {
	return func(c *decodeConfig) { c.warn = fn }
}

// recover returns err unchanged in strict mode. In lenient mode it reports err
// and returns nil so the caller substitutes its default.
func (c *decodeConfig) recover(err error) error {
	if !c.lenient {
		return err
	}
	if c.warn != nil {
		c.warn(err)
	}
	return nil
}
