package language

// WrittenAmount turns a head count into the word used in front of a plural
// noun: one, two, some (3-5) or a lot of (6+).
func WrittenAmount(n int) string {
	switch {
	case n <= 0:
		return "no"
	case n == 1:
		return "one"
	case n == 2:
		return "two"
	case n < 6:
		return "some"
	default:
		return "a lot of"
	}
}

// Counted renders "<amount> <plural>", e.g. "two guards" or "a lot of men".
// A single entity keeps its singular form with an article.
func Counted(n int, singular, plural string) string {
	if n == 1 {
		return WithArticle(singular)
	}
	if plural == "" {
		plural = Plural(singular)
	}
	return WrittenAmount(n) + " " + plural
}
