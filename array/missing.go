package array

type missingValue struct{}

func (missingValue) String() string { return "missing" }

// Missing is the canonical "no value here" marker. Nullable views return it
// for masked positions, and writing it through a nullable view masks the
// target position.
var Missing = missingValue{}

// IsMissing reports whether v is the Missing marker.
func IsMissing(v any) bool {
	_, ok := v.(missingValue)
	return ok
}
