package quill

// Option configures a Logger during construction. Options that validate
// their input return an error, aborting New.
type Option func(*Logger) error

// WithVerbosity sets the filtering threshold.
func WithVerbosity(v Verbosity) Option {
	return func(l *Logger) error {
		l.verbosity = v
		return nil
	}
}

// WithFiltering toggles verbosity filtering.
func WithFiltering(enabled bool) Option {
	return func(l *Logger) error {
		l.filtering = enabled
		return nil
	}
}

// WithLogFormat sets the log line template. Fails when the mandatory %m
// placeholder is missing.
func WithLogFormat(tpl string) Option {
	return func(l *Logger) error {
		return l.formatter.SetLogFormat(tpl)
	}
}

// WithDatetimeFormat sets the strftime-style datetime template.
func WithDatetimeFormat(tpl string) Option {
	return func(l *Logger) error {
		l.formatter.SetDatetimeFormat(tpl)
		return nil
	}
}

// WithHeaderColor toggles colored severity headers.
func WithHeaderColor(enabled bool) Option {
	return func(l *Logger) error {
		l.formatter.SetColorEnabled(enabled)
		return nil
	}
}

// WithLogFile sets the log file path and enables the file stream. Fails
// when the path is not writable.
func WithLogFile(path string) Option {
	return func(l *Logger) error {
		if err := l.output.File().SetPath(path); err != nil {
			return err
		}
		return l.output.File().Enable()
	}
}

// WithMaxLogBufferSize sets the file stream auto-flush threshold. Sizes of
// zero or less disable auto-flushing.
func WithMaxLogBufferSize(n int) Option {
	return func(l *Logger) error {
		l.output.File().SetMaxBufferSize(n)
		return nil
	}
}

// WithOnDropPolicy sets the file stream's on-drop policy.
func WithOnDropPolicy(p OnDropPolicy) Option {
	return func(l *Logger) error {
		l.output.File().SetOnDropPolicy(p)
		return nil
	}
}

// WithStderr toggles the stderr stream, which is enabled by default.
func WithStderr(enabled bool) Option {
	return func(l *Logger) error {
		if enabled {
			return l.output.Stderr().Enable()
		}
		l.output.Stderr().Disable()
		return nil
	}
}

// WithBufferLog toggles the raw-event buffer stream, disabled by default.
func WithBufferLog(enabled bool) Option {
	return func(l *Logger) error {
		if enabled {
			return l.output.Buffer().Enable()
		}
		l.output.Buffer().Disable()
		return nil
	}
}
