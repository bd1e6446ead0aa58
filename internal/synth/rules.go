package synth

import (
	"github.com/hazicy/override-rules/internal/catalog"
	"github.com/hazicy/override-rules/internal/model"
)

// quicBlockRule drops QUIC handshakes so TLS traffic falls back to TCP,
// where the sniffer and the rule engine can see it.
var quicBlockRule = model.Rule{
	Matcher: "AND,((NETWORK,UDP),(DST-PORT,443))",
	Target:  model.PolicyReject,
}

// BuildRules returns a copy of the catalog's base rule list. Unless QUIC is
// explicitly enabled, a rule rejecting UDP/443 is prefixed before everything
// else. The base list always ends with the single MATCH terminal.
func BuildRules(cat catalog.Catalog, quic bool) []model.Rule {
	out := make([]model.Rule, 0, len(cat.BaseRules)+1)
	if !quic {
		out = append(out, quicBlockRule)
	}
	out = append(out, cat.BaseRules...)
	return out
}
