package content

import "strings"

// Icon is one of the pictograms content rows can reference by name.
type Icon int

const (
	Stethoscope Icon = iota
	Baby
	Bone
	Brain
	Eye
	Ear
	TestTube
	Activity
	Pill
	Ambulance
	Heart
	Building
	Award
	Users
	Shield
	Microscope
	Clock
	Truck
	CheckCircle
	ShoppingCart
)

var iconNames = [...]string{
	Stethoscope:  "stethoscope",
	Baby:         "baby",
	Bone:         "bone",
	Brain:        "brain",
	Eye:          "eye",
	Ear:          "ear",
	TestTube:     "test-tube",
	Activity:     "activity",
	Pill:         "pill",
	Ambulance:    "ambulance",
	Heart:        "heart",
	Building:     "building2",
	Award:        "award",
	Users:        "users",
	Shield:       "shield",
	Microscope:   "microscope",
	Clock:        "clock",
	Truck:        "truck",
	CheckCircle:  "check-circle",
	ShoppingCart: "shopping-cart",
}

var iconLabels = [...]string{
	Stethoscope:  "Stethoscope",
	Baby:         "Baby",
	Bone:         "Bone",
	Brain:        "Brain",
	Eye:          "Eye",
	Ear:          "Ear",
	TestTube:     "Test tube",
	Activity:     "Activity",
	Pill:         "Pill",
	Ambulance:    "Ambulance",
	Heart:        "Heart",
	Building:     "Building",
	Award:        "Award",
	Users:        "Users",
	Shield:       "Shield",
	Microscope:   "Microscope",
	Clock:        "Clock",
	Truck:        "Truck",
	CheckCircle:  "Check circle",
	ShoppingCart: "Shopping cart",
}

var iconGlyphs = [...]string{
	Stethoscope:  "🩺",
	Baby:         "👶",
	Bone:         "🦴",
	Brain:        "🧠",
	Eye:          "👁",
	Ear:          "👂",
	TestTube:     "🧪",
	Activity:     "📈",
	Pill:         "💊",
	Ambulance:    "🚑",
	Heart:        "❤",
	Building:     "🏥",
	Award:        "🏅",
	Users:        "👥",
	Shield:       "🛡",
	Microscope:   "🔬",
	Clock:        "🕒",
	Truck:        "🚚",
	CheckCircle:  "✅",
	ShoppingCart: "🛒",
}

// FallbackIcon is rendered for names that match no icon.
const FallbackIcon = Stethoscope

// ParseIcon maps a stored icon name to its Icon. Matching ignores case and
// surrounding space; anything unknown yields FallbackIcon.
func ParseIcon(name string) Icon {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range iconNames {
		if n == key {
			return Icon(i)
		}
	}
	return FallbackIcon
}

// String returns the stored name of the icon.
func (i Icon) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return iconNames[FallbackIcon]
	}
	return iconNames[i]
}

// Label returns a human readable name for admin pickers.
func (i Icon) Label() string {
	if i < 0 || int(i) >= len(iconLabels) {
		return iconLabels[FallbackIcon]
	}
	return iconLabels[i]
}

// Glyph returns the character the templates draw for the icon.
func (i Icon) Glyph() string {
	if i < 0 || int(i) >= len(iconGlyphs) {
		return iconGlyphs[FallbackIcon]
	}
	return iconGlyphs[i]
}

// Icon sets offered by each admin form.
var (
	ServiceIcons        = []Icon{Stethoscope, Baby, Bone, Brain, Eye, Ear, TestTube, Activity, Pill, Ambulance, Heart, Building}
	HomeFeatureIcons    = []Icon{Award, Users, Shield, Heart}
	SpecializationIcons = []Icon{Stethoscope, Building, Microscope, Ambulance}
	PharmacyIcons       = []Icon{Clock, Shield, Truck, CheckCircle, Pill, ShoppingCart}
)
