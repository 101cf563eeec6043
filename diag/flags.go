// Package diag carries the diagnostic toggles and helpers shared by the
// cursor and tokenizer packages.
//
// Flags are passed in explicitly; there is no process-wide state. With every
// flag off, no diagnostic strings are built.
package diag

// Flags gates optional diagnostic work.
//
// The level fields cascade in the order Fatal, Error, Warn, Info, Debug,
// Debug0..Debug3: DefaultFlags enables a level only if the one before it is
// enabled. All forces every level on whenever Loggers is set.
type Flags struct {
	Assert  bool
	Verbose bool
	Loggers bool
	Log     bool
	All     bool

	Fatal  bool
	Error  bool
	Warn   bool
	Info   bool
	Debug  bool
	Debug0 bool
	Debug1 bool
	Debug2 bool
	Debug3 bool
}

// DefaultFlags returns the development defaults: everything enabled.
func DefaultFlags() Flags {
	f := Flags{
		Assert:  true,
		Verbose: true,
		Loggers: true,
		Log:     true,
	}
	return f.Cascade(true)
}

// Off returns flags with every toggle disabled.
func Off() Flags { return Flags{} }

// Cascade recomputes the level fields from top, following the level order.
// A level is on if All and Loggers are both set, or if the previous level is
// on and top is true.
func (f Flags) Cascade(top bool) Flags {
	forced := f.Loggers && f.All
	f.Fatal = forced || top
	f.Error = forced || f.Fatal
	f.Warn = forced || f.Error
	f.Info = forced || f.Warn
	f.Debug = forced || f.Info
	f.Debug0 = forced || f.Debug
	f.Debug1 = forced || f.Debug0
	f.Debug2 = forced || f.Debug1
	f.Debug3 = forced || f.Debug2
	return f
}

// Tracing reports whether step traces should be built for a component whose
// own debug switch is on.
func (f Flags) Tracing(debug bool) bool {
	return debug && f.Info
}
