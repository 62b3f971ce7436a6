package protein

var LabelLine = labelLine

// Set is only for tests. Real code changes symbols through commands.
func (s *Sequence) Set(pos int, c byte) bool { return s.set(pos, c) }
