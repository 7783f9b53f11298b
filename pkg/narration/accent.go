package narration

type Accent string

const (
	AccentAmerican Accent = "american"
	AccentBritish  Accent = "british"
	AccentIndian   Accent = "indian"
	AccentNigerian Accent = "nigerian"
)

var Accents = []Accent{
	AccentAmerican,
	AccentBritish,
	AccentIndian,
	AccentNigerian,
}

func (a Accent) Valid() bool {
	for _, accent := range Accents {
		if a == accent {
			return true
		}
	}

	return false
}

// Voice maps the accent onto a backend voice identifier.
func (a Accent) Voice() string {
	switch a {
	case AccentBritish:
		return "Puck"

	case AccentIndian:
		return "Charon"

	case AccentNigerian:
		return "Fenrir"

	default:
		return "Kore"
	}
}

// Instruction is the accent line embedded ahead of the narration text.
func (a Accent) Instruction() string {
	switch a {
	case AccentBritish:
		return "Read the following in a warm, friendly British English accent:"

	case AccentIndian:
		return "Read the following in a warm, friendly Indian English accent:"

	case AccentNigerian:
		return "Read the following in a warm, friendly Nigerian English accent:"

	default:
		return "Read the following in a warm, friendly American English accent:"
	}
}
