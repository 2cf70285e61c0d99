package courier

// UnknownPolicy controls how keys not declared by a record are handled.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Ignore unknown keys (default).
	UnknownStrict                           // Reject unknown keys with an error.
	UnknownPassthrough                      // Keep unknown keys in a side map and re-emit them on dump.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrict:
		return "strict"
	case UnknownPassthrough:
		return "passthrough"
	default:
		return "strip"
	}
}

// Severity expresses the severity level for input-level findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate JSON keys.
type Strictness struct {
	OnDuplicateKey Severity
}

// DecodeOpt bundles options for the JSON boundary helpers.
type DecodeOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 disables the check.
	MaxBytes   int64 // 0 disables the check.
	FailFast   bool
	// OnWarn receives non-fatal findings such as duplicate keys under Warn.
	OnWarn func(Issue)
}

func lastOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) == 0 {
		return DecodeOpt{}
	}
	return opts[len(opts)-1]
}
