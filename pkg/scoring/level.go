package scoring

type Level string

const (
	Fresher      Level = "Fresher"
	Intermediate Level = "Intermediate"
	Experienced  Level = "Experienced"
)

func (l Level) Valid() bool {
	switch l {
	case Fresher, Intermediate, Experienced:
		return true
	}
	return false
}

// LevelForPages estimates seniority from résumé length.
func LevelForPages(pages int) Level {
	switch {
	case pages <= 1:
		return Fresher
	case pages == 2:
		return Intermediate
	default:
		return Experienced
	}
}
