package exppager

const (
	MaxEntriesPerPage     = 100
	DefaultEntriesPerPage = 10
)

func IsNormalizedEntriesPerPageMax(perPage int, maxPerPage int) (int, bool) {
	if perPage <= 0 {
		return DefaultEntriesPerPage, false
	} else if perPage > maxPerPage {
		return maxPerPage, false
	}

	return perPage, true
}

func NormalizeEntriesPerPageMax(perPage int, maxPerPage int) int {
	ret, _ := IsNormalizedEntriesPerPageMax(perPage, maxPerPage)
	return ret
}

func NormalizeEntriesPerPage(perPage int) int {
	return NormalizeEntriesPerPageMax(perPage, MaxEntriesPerPage)
}
