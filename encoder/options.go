package encoder

// SlackMode selects how ordinary (non-terminal, non-via) nodes are
// constrained.
type SlackMode int

const (
	// NoSlack requires exactly two incident edges on every ordinary
	// node: every cell must be filled by some net.
	NoSlack SlackMode = iota
	// SlackWithUVar permits zero or two incident edges, reified through
	// a per-node "used" variable (see Encoder.UVar).
	SlackWithUVar
	// SlackWithoutUVar permits zero or two incident edges directly,
	// without a reified "used" variable.
	SlackWithoutUVar
)

// Options configures one encoding attempt. A Plan (see the pipeline
// package) is a named Options value.
type Options struct {
	// BinaryEncoding selects a ⌈log2(K+1)⌉-wide binary label vector
	// instead of the default K-wide one-hot vector.
	BinaryEncoding bool

	Slack SlackMode

	// UShape/WShape/W2Shape/LShape/YShape gate the optional shape-ban
	// constraint families.
	UShape  bool
	WShape  bool
	W2Shape bool
	LShape  bool
	YShape  bool
}

// needsUVars reports whether this Options value requires per-node "used"
// variables (SlackWithUVar, or YShape's interior-unused escape clause).
func (o Options) needsUVars() bool {
	return o.Slack == SlackWithUVar || o.YShape
}
