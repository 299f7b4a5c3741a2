package domain

// legacyUnassigned is the value older clients send for a booking without a pitch.
const legacyUnassigned = "-1"

// Pitch is either unassigned (the zero value) or assigned to a pitch number.
type Pitch struct {
	number string
}

// Unassigned returns a Pitch with no physical location.
func Unassigned() Pitch { return Pitch{} }

// AssignedTo returns a Pitch for the given number. Empty and "-1" numbers
// yield an unassigned Pitch.
func AssignedTo(number string) Pitch {
	return ParsePitch(number)
}

// ParsePitch converts a raw pitchNo value into a Pitch.
func ParsePitch(raw string) Pitch {
	if raw == "" || raw == legacyUnassigned {
		return Pitch{}
	}
	return Pitch{number: raw}
}

// Assigned reports whether the booking holds a physical pitch.
func (p Pitch) Assigned() bool { return p.number != "" }

// Number returns the pitch number, or "" when unassigned.
func (p Pitch) Number() string { return p.number }

func (p Pitch) String() string {
	if !p.Assigned() {
		return "unassigned"
	}
	return p.number
}

// Booking is a vendor's stall registration for the carnival.
type Booking struct {
	ID        string
	Name      string
	Business  string
	Email     string
	Telephone string
	Type      string
	Comments  string
	Status    string
	Pitch     Pitch
	UserID    string
}

// CountAssigned returns how many bookings hold a pitch.
func CountAssigned(bookings []*Booking) int {
	n := 0
	for _, b := range bookings {
		if b != nil && b.Pitch.Assigned() {
			n++
		}
	}
	return n
}

// PitchNumbers lists the assigned pitch numbers in booking order.
func PitchNumbers(bookings []*Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if b != nil && b.Pitch.Assigned() {
			out = append(out, b.Pitch.Number())
		}
	}
	return out
}

// Proportions counts bookings per stall type.
func Proportions(bookings []*Booking) map[string]int {
	out := make(map[string]int)
	for _, b := range bookings {
		if b == nil {
			continue
		}
		out[b.Type]++
	}
	return out
}
