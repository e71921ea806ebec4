package goarr

// IssueAt creates an Issue at the given path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

// RebaseIssues returns a copy of iss with every path prefixed by base.
func RebaseIssues(base PathRef, iss Issues) Issues {
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		it.Path = base.Rebase(it.Path)
		out = append(out, it)
	}
	return out
}
