package emit

// raw interpolates a literal string as-is.
func (s *state) raw(text string) string {
	if text == "" {
		s.errorf("raw content is empty")
		return ""
	}
	return s.interp(text)
}
