package model

// Rule is one entry of the ordered decision list. Matcher is everything up
// to the target policy, e.g. "RULE-SET,telegram" or
// "AND,((NETWORK,UDP),(DST-PORT,443))"; Target is a group name, DIRECT or
// REJECT. The terminal catch-all uses Matcher "MATCH".
type Rule struct {
	Matcher string
	Target  string
}

func (r Rule) String() string {
	return r.Matcher + "," + r.Target
}

// IsMatch reports whether this is the catch-all terminal entry.
func (r Rule) IsMatch() bool { return r.Matcher == "MATCH" }
