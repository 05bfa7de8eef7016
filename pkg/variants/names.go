package variants

// Canonical names of the built-in variants.
const (
	NameRing      = "ring"
	NameDualRing  = "dual_ring"
	NameEllipsis  = "ellipsis"
	NameRipple    = "ripple"
	NameRoller    = "roller"
	NameSpinner   = "spinner"
	NameGrid      = "grid"
	NameFacebook  = "facebook"
	NameHeart     = "heart"
	NameHourglass = "hourglass"
)
