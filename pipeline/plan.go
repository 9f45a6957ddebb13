package pipeline

import (
	"github.com/katalvlaran/nlsat/encoder"
	"github.com/katalvlaran/nlsat/problem"
)

// Plan names one encoding attempt: a label and the Options it runs with.
// The five plans below are listed in the order a solver tries them;
// BinaryEncoding is applied uniformly across whatever list a caller
// selects, since it is a CLI-level choice independent of the plan's
// constraint family.
type Plan struct {
	Name    string
	Options encoder.Options
}

// planA is the no-slack plan: every ordinary node is filled by exactly
// one net, and no shape-ban families beyond U/W run. It is the cheapest
// plan and, being the most constrained, the first one tried.
var planA = Plan{Name: "A", Options: encoder.Options{Slack: encoder.NoSlack, UShape: true, WShape: true}}

// planB11 relaxes to slack-without-u-var and adds both the L-shape and
// Y-shape bans.
var planB11 = Plan{Name: "B11", Options: encoder.Options{Slack: encoder.SlackWithoutUVar, LShape: true, YShape: true, UShape: true, WShape: true}}

// planB10 is B11 without the Y-shape ban.
var planB10 = Plan{Name: "B10", Options: encoder.Options{Slack: encoder.SlackWithoutUVar, LShape: true, UShape: true, WShape: true}}

// planB01 is B11 without the L-shape ban.
var planB01 = Plan{Name: "B01", Options: encoder.Options{Slack: encoder.SlackWithoutUVar, YShape: true, UShape: true, WShape: true}}

// planC is slack-without-u-var with no shape bans beyond U/W, the last
// and least constrained fallback.
var planC = Plan{Name: "C", Options: encoder.Options{Slack: encoder.SlackWithoutUVar, UShape: true, WShape: true}}

// DefaultPlans returns the cascade this format runs by default: the full
// five-plan sequence for adc2015/adc2016, and just plan C for adc2017,
// whose full 6-connectivity graph makes the cheaper shape-ban families
// both less effective and far more expensive to encode.
func DefaultPlans(format problem.Format) []Plan {
	if format == problem.FormatADC2017 {
		return []Plan{planC}
	}

	return []Plan{planA, planB11, planB10, planB01, planC}
}

// withBinaryEncoding returns plans with BinaryEncoding forced to b,
// leaving every other Options field untouched.
func withBinaryEncoding(plans []Plan, b bool) []Plan {
	out := make([]Plan, len(plans))
	for i, p := range plans {
		opts := p.Options
		opts.BinaryEncoding = b
		out[i] = Plan{Name: p.Name, Options: opts}
	}

	return out
}
