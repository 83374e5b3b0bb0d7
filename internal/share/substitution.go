package share

import "strings"

// substitution is a reversible pair of string replacers built from ordered
// long/short pattern pairs.
type substitution struct {
	shorten *strings.Replacer
	restore *strings.Replacer
}

func newSubstitution(pairs [][2]string) substitution {
	forward := make([]string, 0, len(pairs)*2)
	backward := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		forward = append(forward, p[0], p[1])
		backward = append(backward, p[1], p[0])
	}
	return substitution{
		shorten: strings.NewReplacer(forward...),
		restore: strings.NewReplacer(backward...),
	}
}

func (s substitution) apply(in string) string {
	return s.shorten.Replace(in)
}

func (s substitution) revert(in string) string {
	return s.restore.Replace(in)
}
